package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shiftboard-app/shiftboard/internal/cli/formatter"
	"github.com/shiftboard-app/shiftboard/internal/domain"
	"github.com/spf13/cobra"
)

func newTiersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "Manage employee tier assignments",
	}

	cmd.AddCommand(
		newTiersListCmd(app),
		newTiersSetCmd(app),
		newTiersEditCmd(app),
	)

	return cmd
}

func newTiersListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list ID",
		Short: "List employee tier assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			storeID, err := resolveStoreID(ctx, app, args[0])
			if err != nil {
				return err
			}
			tiers, err := app.Stores.GetTiers(ctx, storeID)
			if err != nil {
				return err
			}
			if len(tiers) == 0 {
				fmt.Println("No tier assignments; everyone counts as part-time.")
				return nil
			}

			names := make([]string, 0, len(tiers))
			for name := range tiers {
				names = append(names, name)
			}
			sort.Strings(names)

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				rows = append(rows, []string{name, string(tiers[name])})
			}
			fmt.Printf("%s\n", formatter.RenderTable([]string{"Employee", "Tier"}, rows, false))
			return nil
		},
	}
}

func newTiersSetCmd(app *App) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "set ID NAME TIER",
		Short: "Assign one employee's tier",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			storeID, err := resolveStoreID(ctx, app, args[0])
			if err != nil {
				return err
			}
			name := strings.TrimSpace(args[1])
			tier := strings.ToLower(args[2])
			if !domain.ValidTiers[tier] {
				return fmt.Errorf("invalid tier %q (expected full, part, or limited)", args[2])
			}

			tiers, err := app.Stores.GetTiers(ctx, storeID)
			if err != nil {
				return err
			}
			tiers[name] = domain.Tier(tier)

			if err := app.Stores.SaveTiers(ctx, storeID, key, tiers); err != nil {
				return err
			}
			fmt.Printf("Set %s to %s\n", name, tier)
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Management key")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func newTiersEditCmd(app *App) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit all tier assignments interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("tiers edit needs an interactive terminal (use tiers set instead)")
			}

			ctx := context.Background()
			storeID, err := resolveStoreID(ctx, app, args[0])
			if err != nil {
				return err
			}
			tiers, err := app.Stores.GetTiers(ctx, storeID)
			if err != nil {
				return err
			}
			if len(tiers) == 0 {
				return fmt.Errorf("no employees to edit yet (use tiers set NAME TIER to add one)")
			}

			names := make([]string, 0, len(tiers))
			for name := range tiers {
				names = append(names, name)
			}
			sort.Strings(names)

			values := make([]string, len(names))
			fields := make([]huh.Field, 0, len(names))
			for i, name := range names {
				values[i] = string(tiers[name])
				fields = append(fields, huh.NewSelect[string]().
					Title(name).
					Options(
						huh.NewOption("Full time", string(domain.TierFull)),
						huh.NewOption("Part time", string(domain.TierPart)),
						huh.NewOption("Limited", string(domain.TierLimited)),
					).
					Value(&values[i]))
			}

			if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
				return err
			}

			for i, name := range names {
				tiers[name] = domain.Tier(values[i])
			}
			if err := app.Stores.SaveTiers(ctx, storeID, key, tiers); err != nil {
				return err
			}
			fmt.Printf("Updated %d tier assignments\n", len(names))
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Management key")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
