package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shiftboard-app/shiftboard/internal/cli/formatter"
	"github.com/shiftboard-app/shiftboard/internal/domain"
	"github.com/shiftboard-app/shiftboard/internal/parse"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and edit tier rates and staffing needs",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetRateCmd(app),
		newSettingsSetNeedCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a store's settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			storeID, err := resolveStoreID(ctx, app, args[0])
			if err != nil {
				return err
			}
			settings, err := app.Stores.GetSettings(ctx, storeID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.Header("Tier rates"))
			fmt.Printf("full     %.2f\npart     %.2f\nlimited  %.2f\n\n",
				settings.TierRates.Full, settings.TierRates.Part, settings.TierRates.Limited)

			fmt.Printf("%s\n", formatter.Header("Staffing needs"))
			rows := make([][]string, 0, len(parse.Hours))
			for _, h := range parse.Hours {
				label := parse.HourLabel(h)
				rows = append(rows, []string{
					label,
					strconv.Itoa(settings.NeedsFor(domain.DeptBOH)[label]),
					strconv.Itoa(settings.NeedsFor(domain.DeptFOH)[label]),
				})
			}
			fmt.Printf("%s\n", formatter.RenderTable([]string{"Hour", "BOH", "FOH"}, rows, true))
			return nil
		},
	}
}

func newSettingsSetRateCmd(app *App) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "set-rate ID TIER RATE",
		Short: "Set one tier's effectiveness rate",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			storeID, err := resolveStoreID(ctx, app, args[0])
			if err != nil {
				return err
			}
			tier := strings.ToLower(args[1])
			if !domain.ValidTiers[tier] {
				return fmt.Errorf("invalid tier %q (expected full, part, or limited)", args[1])
			}
			rate, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid rate %q: %w", args[2], err)
			}

			settings, err := app.Stores.GetSettings(ctx, storeID)
			if err != nil {
				return err
			}
			switch domain.Tier(tier) {
			case domain.TierFull:
				settings.TierRates.Full = rate
			case domain.TierPart:
				settings.TierRates.Part = rate
			case domain.TierLimited:
				settings.TierRates.Limited = rate
			}

			if err := app.Stores.SaveSettings(ctx, storeID, key, settings); err != nil {
				return err
			}
			fmt.Printf("Set %s rate to %.2f\n", tier, rate)
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Management key")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func newSettingsSetNeedCmd(app *App) *cobra.Command {
	var key, deptStr string

	cmd := &cobra.Command{
		Use:   "set-need ID HOUR COUNT",
		Short: "Set one hour's required headcount for a department",
		Args:  cobra.ExactArgs(3),
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

			label := strings.ToUpper(args[1])
			if !validHourLabel(label) {
				return fmt.Errorf("invalid hour %q (expected a label between 5AM and 11PM)", args[1])
			}
			count, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid count %q: %w", args[2], err)
			}

			settings, err := app.Stores.GetSettings(ctx, storeID)
			if err != nil {
				return err
			}
			if settings.StaffingNeeds == nil {
				settings.StaffingNeeds = map[domain.Department]map[string]int{}
			}
			if settings.StaffingNeeds[dept] == nil {
				// Start from the effective table so one edit does not
				// zero every other hour.
				needs := make(map[string]int)
				for l, n := range settings.NeedsFor(dept) {
					needs[l] = n
				}
				settings.StaffingNeeds[dept] = needs
			}
			settings.StaffingNeeds[dept][label] = count

			if err := app.Stores.SaveSettings(ctx, storeID, key, settings); err != nil {
				return err
			}
			fmt.Printf("Set %s need at %s to %d\n", dept, label, count)
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Management key")
	cmd.Flags().StringVar(&deptStr, "dept", "", "Department (boh or foh)")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("dept")

	return cmd
}

func validHourLabel(label string) bool {
	idx := sort.SearchInts(parse.Hours, parse.LabelToHour(label))
	return idx < len(parse.Hours) && parse.HourLabel(parse.Hours[idx]) == label
}
