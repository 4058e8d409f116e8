package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"quizmaster/internal/auth"
	"quizmaster/internal/config"
	"quizmaster/internal/container"
	"quizmaster/internal/router"
)

func newServeCmd(port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the quiz API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *port)
		},
	}
}

func runServer(ctx context.Context, port string) error {
	config.Init()
	auth.Init()

	db, err := config.Connect(ctx, os.Getenv("DATABASE_DSN"))
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := runMigrations(ctx, db); err != nil {
		return err
	}
	if err := runSeed(ctx, db); err != nil {
		return err
	}

	c := container.New(db)
	handler := router.New(router.RouterConfig{
		UserHandler:        c.UserContainer.Handler,
		QuestionHandler:    c.QuestionContainer.Handler,
		ResultHandler:      c.ResultContainer.Handler,
		LeaderboardHandler: c.LeaderboardContainer.Handler,
	})

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logrus.Infof("quiz server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("failed to start server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logrus.Info("shutting down server...")
	case <-ctx.Done():
		logrus.Info("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
