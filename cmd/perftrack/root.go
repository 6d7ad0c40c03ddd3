package main

import (
	"context"
	"fmt"

	"performance-tracker-backend/internal/config"
	"performance-tracker-backend/internal/database"
	"performance-tracker-backend/internal/logger"
	"performance-tracker-backend/internal/repository"
	"performance-tracker-backend/internal/snapshot"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// app carries what the subcommands share. Config is loaded before any subcommand
// runs; the database is opened on first use.
type app struct {
	cfg *config.Config
	db  *gorm.DB
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "perftrack",
		Short:         "Team performance tracker operator tool",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Setup(cfg.LogLevel)
			a.cfg = cfg
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	root.AddCommand(newSeedCmd(a))
	root.AddCommand(newLeaderboardCmd(a))
	root.AddCommand(newExportCmd(a))
	return root
}

func (a *app) database() (*gorm.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := database.Initialize(a.cfg.DatabaseURL, &database.Options{
		LogLevel:      database.ParseLogLevel(a.cfg.DatabaseLogLevel),
		NotifyChannel: a.cfg.NotifyChannel,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	a.db = db
	return db, nil
}

// snapshot loads a fresh statistics snapshot store from the database
func (a *app) snapshot(ctx context.Context) (*snapshot.Store, error) {
	db, err := a.database()
	if err != nil {
		return nil, err
	}
	store := snapshot.NewStore(
		repository.NewMemberRepository(db),
		repository.NewTaskRepository(db),
		repository.NewRatingRepository(db),
	)
	if err := store.Refresh(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
