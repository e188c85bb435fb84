package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/shiftboard-app/shiftboard/internal/cli/formatter"
	"github.com/shiftboard-app/shiftboard/internal/staffing"
	"github.com/spf13/cobra"
)

func newStaffingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staffing",
		Short: "Compute and inspect the hour-by-hour staffing gap analysis",
	}

	cmd.AddCommand(
		newStaffingComputeCmd(app),
		newStaffingShowCmd(app),
		newStaffingExportCmd(app),
	)

	return cmd
}

func newStaffingComputeCmd(app *App) *cobra.Command {
	var storeRef, key, deptStr, availFile, timeOffFile string

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute a department's staffing gaps from pasted exports",
		Long: `Compute the gap analysis for one department: parse a weekly
availability export, weight each available employee by tier, deduct
hours covered by approved or pending time off, and compare against
the configured staffing needs.`,
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
			availText, err := readInput(availFile)
			if err != nil {
				return err
			}
			var timeOffText string
			if timeOffFile != "" {
				timeOffText, err = readInput(timeOffFile)
				if err != nil {
					return err
				}
			}

			result, err := app.Staffing.Compute(ctx, storeID, key, dept, availText, timeOffText)
			if err != nil {
				return err
			}

			fmt.Printf("Computed %s staffing for week of %s (%d employees, %d time-off records)\n\n",
				dept, result.Doc.WeekStart, result.EmployeeCount, result.TimeOffRecords)
			fmt.Printf("%s\n", formatter.FormatStaffingGrid(result.Doc))
			return nil
		},
	}

	cmd.Flags().StringVar(&storeRef, "store", "", "Store ID")
	cmd.Flags().StringVar(&key, "key", "", "Management key")
	cmd.Flags().StringVar(&deptStr, "dept", "", "Department (boh or foh)")
	cmd.Flags().StringVar(&availFile, "availability", "", "Availability export file (default stdin)")
	cmd.Flags().StringVar(&timeOffFile, "timeoff", "", "Time-off paste file (optional)")
	_ = cmd.MarkFlagRequired("store")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("dept")

	return cmd
}

func newStaffingShowCmd(app *App) *cobra.Command {
	var deptStr, hour string

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show the stored staffing analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			storeID, err := resolveStoreID(ctx, app, args[0])
			if err != nil {
				return err
			}
			dept, err := parseDept(deptStr)
			if err != nil {
				return err
			}
			doc, err := app.Staffing.Get(ctx, storeID, dept)
			if err != nil {
				return err
			}

			if hour != "" {
				fmt.Printf("%s\n", formatter.FormatGapDetail(doc, hour))
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatStaffingGrid(doc))
			return nil
		},
	}

	cmd.Flags().StringVar(&deptStr, "dept", "", "Department (boh or foh)")
	cmd.Flags().StringVar(&hour, "hour", "", "Show one hour's detail (e.g. 12PM)")
	_ = cmd.MarkFlagRequired("dept")

	return cmd
}

func newStaffingExportCmd(app *App) *cobra.Command {
	var deptStr, out string

	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Export the stored gap grid as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			storeID, err := resolveStoreID(ctx, app, args[0])
			if err != nil {
				return err
			}
			dept, err := parseDept(deptStr)
			if err != nil {
				return err
			}
			doc, err := app.Staffing.Get(ctx, storeID, dept)
			if err != nil {
				return err
			}

			csv := staffing.GapToCSV(doc.Cells, doc.WeekDates)
			if out == "" {
				fmt.Println(csv)
				return nil
			}
			if err := os.WriteFile(out, []byte(csv+"\n"), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Printf("Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&deptStr, "dept", "", "Department (boh or foh)")
	cmd.Flags().StringVar(&out, "out", "", "Write CSV to file instead of stdout")
	_ = cmd.MarkFlagRequired("dept")

	return cmd
}
