// Package root contains the root command for the application.
package root

import (
	"akhmetov/rassrochka-crm/internal/config"
	"akhmetov/rassrochka-crm/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration, set in PersistentPreRun.
	Cfg *config.Config

	// SharedFlags holds the common flag values.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "rassrochka",
		Short: "A CLI tool to import installment-sales clients and roll up capital analytics.",
		Long: `rassrochka imports heterogeneous client spreadsheets into normalized
installment records, generates payment schedules, classifies scheduled
payments against a reference date and aggregates per-capital analytics.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to rassrochka-crm!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)
		},
	}
)

// Init initializes the root command and its persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// GetLogger returns the configured logger behind the logging abstraction.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
