package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var port string

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envPort := os.Getenv("PORT")
	if envPort == "" {
		envPort = "3000"
	}

	cmd := &cobra.Command{
		Use:   "quizmaster",
		Short: "Quiz-taking web application backend",
	}

	cmd.PersistentFlags().StringVar(&port, "port", envPort, "port to listen on")
	cmd.AddCommand(newServeCmd(&port))
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newSeedCmd())
	return cmd
}
