package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var storeRef, key, deptStr, file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a pasted time-off report for one department",
		Long: `Import a copy-pasted time-off report. The paste must include the
scheduling system's "Date and Time / Type" header row; everything
above it is ignored. Only the chosen department's calendar entries are
replaced; the other department's stored entries are preserved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			storeID, err := resolveStoreID(ctx, app, storeRef)
			if err != nil {
				return err
			}
			dept, err := parseDept(deptStr)
			if err != nil {
				return err
			}
			text, err := readInput(file)
			if err != nil {
				return err
			}

			result, err := app.Ingest.ImportTimeOff(ctx, storeID, key, dept, text)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d records into %s (%d days on calendar)\n",
				result.Stats.Added, dept, len(result.Doc))
			if dropped := result.Stats.DroppedStatus + result.Stats.DroppedNoDates; dropped > 0 {
				fmt.Printf("Skipped %d records (%d unrecognized status, %d no parseable dates)\n",
					dropped, result.Stats.DroppedStatus, result.Stats.DroppedNoDates)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&storeRef, "store", "", "Store ID")
	cmd.Flags().StringVar(&key, "key", "", "Management key")
	cmd.Flags().StringVar(&deptStr, "dept", "", "Department (boh or foh)")
	cmd.Flags().StringVar(&file, "file", "", "Read paste from file instead of stdin")
	_ = cmd.MarkFlagRequired("store")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("dept")

	return cmd
}
