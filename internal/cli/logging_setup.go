package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvickers/renderlab/internal/config"
)

// setupLogging configures the global logger from the config file, then applies
// CLI flag overrides.
func setupLogging(cmd *cobra.Command) error {
	level := config.GetGlobalConfig().Logging.Level

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		level = "debug"
	}

	logToFile, _ := cmd.Flags().GetBool("log-file")
	if err := config.InitLogger(level, logToFile); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	logger = config.GetLogger().With().Str("component", "cli").Logger()
	logger.Debug().Str("command", cmd.Name()).Msg("command started")
	return nil
}

// cleanupLogging closes the log file handle, if any.
func cleanupLogging(cmd *cobra.Command) {
	logger.Debug().Str("command", cmd.Name()).Msg("command finished")
	config.CloseLogFile()
}
