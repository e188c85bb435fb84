package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/shiftboard-app/shiftboard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStoreCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage stores",
	}

	cmd.AddCommand(
		newStoreCreateCmd(app),
		newStoreListCmd(app),
		newStoreInspectCmd(app),
		newStoreRemoveCmd(app),
	)

	return cmd
}

func newStoreCreateCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("store name is required (use --name)")
				}
				form := huh.NewForm(huh.NewGroup(
					huh.NewInput().
						Title("Store name").
						Placeholder("CFA Gateway").
						Value(&name),
				))
				if err := form.Run(); err != nil {
					return err
				}
			}

			store, err := app.Stores.Create(context.Background(), name)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStoreCreated(store))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Store name")

	return cmd
}

func newStoreListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stores",
		RunE: func(cmd *cobra.Command, args []string) error {
			stores, err := app.Stores.List(context.Background())
			if err != nil {
				return err
			}
			if len(stores) == 0 {
				fmt.Println("No stores found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatStoreList(stores))
			return nil
		},
	}
}

func newStoreInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show store details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			storeID, err := resolveStoreID(ctx, app, args[0])
			if err != nil {
				return err
			}
			s, err := app.Stores.GetByID(ctx, storeID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.Header(s.Name))
			fmt.Printf("ID:           %s\n", s.ID)
			fmt.Printf("Created:      %s\n", s.CreatedAt.Format("2006-01-02 15:04"))
			fmt.Printf("Last updated: %s\n", s.LastUpdated.Format("2006-01-02 15:04"))
			return nil
		},
	}
}

func newStoreRemoveCmd(app *App) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a store and all its documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			storeID, err := resolveStoreID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Stores.Delete(ctx, storeID, key); err != nil {
				return err
			}
			fmt.Printf("Removed store %s\n", storeID)
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Management key")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
