package main

import (
	"github.com/spf13/cobra"

	"github.com/JaimeStill/file-flow/internal/config"
	"github.com/JaimeStill/file-flow/internal/migrations"
	"github.com/JaimeStill/file-flow/pkg/logging"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRunner(func(r *migrations.Runner) error {
				if err := r.Up(); err != nil {
					return err
				}
				return printVersion(cmd, r)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRunner(func(r *migrations.Runner) error {
				if err := r.Down(); err != nil {
					return err
				}
				return printVersion(cmd, r)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRunner(func(r *migrations.Runner) error {
				return printVersion(cmd, r)
			})
		},
	})

	return cmd
}

func withRunner(fn func(*migrations.Runner) error) error {
	cfg, err := config.LoadFrom(configDir)
	if err != nil {
		return err
	}

	runner, err := migrations.New(cfg.Database.URL(migrations.Scheme), logging.New(&cfg.Logging))
	if err != nil {
		return err
	}
	defer runner.Close()

	return fn(runner)
}

func printVersion(cmd *cobra.Command, r *migrations.Runner) error {
	version, dirty, err := r.Version()
	if err != nil {
		return err
	}
	if dirty {
		cmd.Printf("schema version %d (dirty)\n", version)
		return nil
	}
	cmd.Printf("schema version %d\n", version)
	return nil
}
