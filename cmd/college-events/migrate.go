package main

import (
	"fmt"

	"collegeEvents/internal/config"
	"collegeEvents/internal/storage/postgres"

	"github.com/spf13/cobra"
)

var migrateSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(config.ResolvePath(configPath))
		if err != nil {
			return err
		}

		if err = postgres.MigrateUp(cfg.Database.URL()); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the given number of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(config.ResolvePath(configPath))
		if err != nil {
			return err
		}

		if err = postgres.MigrateDown(cfg.Database.URL(), migrateSteps); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d migration(s)\n", migrateSteps)
		return nil
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&migrateSteps, "steps", 1, "number of migrations to roll back")

	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}
