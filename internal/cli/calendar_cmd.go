package cli

import (
	"context"
	"fmt"

	"github.com/shiftboard-app/shiftboard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "calendar ID",
		Short: "Show a store's time-off calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			storeID, err := resolveStoreID(ctx, app, args[0])
			if err != nil {
				return err
			}
			doc, err := app.Ingest.GetCalendar(ctx, storeID)
			if err != nil {
				return err
			}

			if date != "" {
				day, ok := doc[date]
				if !ok {
					fmt.Printf("No time-off entries on %s.\n", date)
					return nil
				}
				fmt.Printf("%s\n", formatter.FormatDay(date, day))
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatCalendar(doc))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Show one day's details (YYYY-MM-DD)")

	return cmd
}
