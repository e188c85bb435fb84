package cli

import (
	"github.com/shiftboard-app/shiftboard/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Stores   service.StoreService
	Ingest   service.IngestService
	Staffing service.StaffingService

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms are only offered when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "shiftboard" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "shiftboard",
		Short: "Time-off calendar and staffing gap analysis from scheduling-system pastes",
	}

	root.AddCommand(
		newStoreCmd(app),
		newImportCmd(app),
		newCalendarCmd(app),
		newStaffingCmd(app),
		newSettingsCmd(app),
		newTiersCmd(app),
	)

	return root
}
