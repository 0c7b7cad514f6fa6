// Command motorctl runs sweeps and schema migrations from the command line,
// for hosts that trigger sweeps from an external scheduler.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"motor/internal/application/dto"
	"motor/internal/bootstrap"
	"motor/internal/infrastructure/database/sqlite"
	"motor/internal/pkg/config"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "motorctl",
		Short:         "Operate the motor reminder service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newSweepCmd(), newMigrateCmd())
	return root
}

func newSweepCmd() *cobra.Command {
	var notifyOps bool

	sweep := &cobra.Command{
		Use:   "sweep",
		Short: "Run a notification sweep once",
	}
	sweep.PersistentFlags().BoolVar(&notifyOps, "notify-ops", false, "push the report to the LINE admin when the ops bot is configured")

	run := func(kind string) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			app, err := bootstrap.New(cfg, bootstrap.NewLogger(cfg))
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			var report dto.SweepReport
			if kind == "due" {
				report = app.Dispatch.RunDueSweep(ctx)
			} else {
				report = app.Dispatch.RunMileageSweep(ctx)
			}

			if notifyOps && app.Line != nil {
				if err := app.Line.NotifySweep(ctx, report); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "ops notification failed: %v\n", err)
				}
			}
			return writeReport(cmd, report)
		}
	}

	sweep.AddCommand(
		&cobra.Command{
			Use:   "due",
			Short: "Notify owners about reminders due tomorrow and within the coming week",
			Args:  cobra.NoArgs,
			RunE:  run("due"),
		},
		&cobra.Command{
			Use:   "mileage",
			Short: "Ask owners to update their odometer reading",
			Args:  cobra.NoArgs,
			RunE:  run("mileage"),
		},
	)
	return sweep
}

func writeReport(cmd *cobra.Command, report dto.SweepReport) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}
	if report.Overlapped {
		return fmt.Errorf("sweep %s overlapped a running sweep", report.Kind)
	}
	return nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := bootstrap.NewLogger(cfg)
			db, err := sqlite.Open(sqlite.Options{Path: cfg.DBPath, SQLDebug: cfg.SQLDebug}, log)
			if err != nil {
				return err
			}
			defer sqlite.Close(db)
			fmt.Fprintf(cmd.OutOrStdout(), "schema migrated at %s\n", cfg.DBPath)
			return nil
		},
	}
}
