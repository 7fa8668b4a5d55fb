package main

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/gbvars988/SoilFullStack/config"
	"github.com/gbvars988/SoilFullStack/database/seeders"
	"github.com/gbvars988/SoilFullStack/pkg/database"
	"github.com/gbvars988/SoilFullStack/pkg/migration"
)

func withDB(fn func(db *gorm.DB) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		db, err := database.Connect()
		if err != nil {
			return err
		}

		return fn(db)
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending migrations",
		RunE: withDB(func(db *gorm.DB) error {
			return migration.New(db).Run()
		}),
	}
}

func migrateRollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:rollback",
		Short: "Roll back the last migration batch",
		RunE: withDB(func(db *gorm.DB) error {
			return migration.New(db).Rollback()
		}),
	}
}

func migrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:status",
		Short: "Show which migrations have run",
		RunE: withDB(func(db *gorm.DB) error {
			return migration.New(db).Status()
		}),
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample data",
		RunE: withDB(func(db *gorm.DB) error {
			return seeders.Run(db)
		}),
	}
}
