package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"quizmaster/internal/config"
	"quizmaster/internal/question"
	"quizmaster/internal/user"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the starter questions and the default admin user",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Init()

			db, err := config.Connect(cmd.Context(), os.Getenv("DATABASE_DSN"))
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			if err := runMigrations(cmd.Context(), db); err != nil {
				return err
			}
			return runSeed(cmd.Context(), db)
		},
	}
}

func runSeed(ctx context.Context, db *gorm.DB) error {
	if err := question.Seed(ctx, question.NewRepository(db)); err != nil {
		return err
	}
	return user.SeedAdmin(ctx, user.NewRepository(db))
}
