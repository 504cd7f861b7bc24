// Package cmd holds the apiCitas command line: one subcommand per service
// plus the schema migration.
package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kelydev/apiCitas/config"
	"github.com/kelydev/apiCitas/logger"
)

var rootCmd = &cobra.Command{
	Use:           "apiCitas",
	Short:         "Servicios de citas y usuarios",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command selected by os.Args.
func Execute() error {
	return rootCmd.Execute()
}

// bootstrap loads the configuration and builds the logger every subcommand uses.
func bootstrap() (config.Config, zerolog.Logger, error) {
	cfg := config.Load()
	l := logger.New(cfg.Env)
	if err := cfg.Validate(); err != nil {
		return cfg, l, err
	}
	return cfg, l, nil
}
