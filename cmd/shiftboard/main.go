package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/shiftboard-app/shiftboard/internal/cli"
	"github.com/shiftboard-app/shiftboard/internal/db"
	"github.com/shiftboard-app/shiftboard/internal/repository"
	"github.com/shiftboard-app/shiftboard/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dbPath, err := db.DefaultPath()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	storeRepo := repository.NewSQLiteStoreRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Stores:   service.NewStoreService(storeRepo),
		Ingest:   service.NewIngestService(storeRepo, uow),
		Staffing: service.NewStaffingService(storeRepo, uow),
	}

	// Interactive forms only make sense on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
