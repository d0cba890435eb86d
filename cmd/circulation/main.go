package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/library-circulation/circulation/app"
	"github.com/Astemirdum/library-circulation/circulation/config"
)

// @title Library Circulation API
// @version 1.0
// @description Issue and return of books, fines and hold requests.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Println("load envs from .env ", err)
	}

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newConfig() *config.Config {
	return config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "circulation",
		Short: "library circulation service: loans, fines and hold requests",
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "run the HTTP API",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				app.Run(newConfig())
			},
		},
		&cobra.Command{
			Use:       "migrate [up|down|status|redo|version]",
			Short:     "apply database migrations",
			Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
			ValidArgs: []string{"up", "down", "status", "redo", "version"},
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Migrate(newConfig(), args[0])
			},
		},
	)
	return root
}
