package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"dashkeep/config"
	logs "dashkeep/internal/infra/log"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - migrate:             apply, roll back or list PostgreSQL migrations
// - backfill-dashboards: create the default dashboard for accounts without one
// - list-accounts:       print every account with its profile

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	backfillCmd := flag.NewFlagSet("backfill-dashboards", flag.ExitOnError)
	listCmd := flag.NewFlagSet("list-accounts", flag.ExitOnError)

	migrateTo := migrateCmd.Int64("to", 0, "Target version for down (0 rolls back one migration)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flags := maintenanceFlags{
		Migrate:  migrateFlags{cmd: migrateCmd, to: migrateTo},
		Backfill: backfillCmd,
		List:     listCmd,
	}

	if err := runSubcommand(ctx, cfg, logger, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type maintenanceFlags struct {
	Migrate  migrateFlags
	Backfill *flag.FlagSet
	List     *flag.FlagSet
}

type migrateFlags struct {
	cmd *flag.FlagSet
	to  *int64
}

func runSubcommand(ctx context.Context, cfg *config.Config, logger *slog.Logger, flags *maintenanceFlags) error {
	switch os.Args[1] {
	case "migrate":
		if err := flags.Migrate.cmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse migrate flags")
		}

		return runMigrate(ctx, cfg, logger, flags.Migrate.cmd.Arg(0), *flags.Migrate.to)
	case "backfill-dashboards":
		if err := flags.Backfill.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse backfill flags")
		}

		return withMaintenance(ctx, cfg, logger, func(svc maintenance) error {
			return runBackfill(ctx, svc, os.Stdout)
		})
	case "list-accounts":
		if err := flags.List.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse list flags")
		}

		return withMaintenance(ctx, cfg, logger, func(svc maintenance) error {
			return runList(ctx, svc, os.Stdout)
		})
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func printUsage() {
	fmt.Println("Usage: maintenance <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  migrate up|down|status   Manage PostgreSQL schema migrations")
	fmt.Println("    -to <version>          With down, roll back to this version")
	fmt.Println("  backfill-dashboards      Create the default dashboard for accounts without one")
	fmt.Println("  list-accounts            Print every account with its profile")
	fmt.Println()
	fmt.Println("Configuration is read from config.yaml and environment overrides.")
}
