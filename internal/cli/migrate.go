package cli

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"quizmaster/internal/config"
	"quizmaster/internal/leaderboard"
	"quizmaster/internal/question"
	"quizmaster/internal/result"
	"quizmaster/internal/user"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
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

			return runMigrations(cmd.Context(), db)
		},
	}
}

func runMigrations(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	if err := db.WithContext(ctx).AutoMigrate(
		&user.User{},
		&question.Question{},
		&result.QuizResult{},
		&leaderboard.Row{},
	); err != nil {
		return err
	}

	logrus.Info("migrations applied")
	return nil
}
