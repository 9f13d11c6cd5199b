// Package cli wires the renderlab commands together with configuration
// loading and logging setup.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rvickers/renderlab/internal/config"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the renderlab CLI.
// It wires up configuration loading, logging, and the demo, bench, and
// config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:     "renderlab",
		Short:   "Windowed list rendering playground",
		Long:    "Renderlab: explore windowed rendering, throttled input streams, and batched view updates in the terminal",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(configPath); err != nil {
				return err
			}
			return setupLogging(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			cleanupLogging(cmd)
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().Bool("log-file", false, "also write logs to the configured log file")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.renderlab/config.yaml)")
	cmd.AddCommand(NewDemoCmd(), NewBenchCmd(), newConfigCmd())

	return cmd
}

// loadConfig loads the configuration from path, or from the default location
// when path is empty, and installs it as the global config.
func loadConfig(path string) error {
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			// No resolvable home directory. Run on defaults.
			config.SetGlobalConfig(config.New())
			return nil
		}
		path = defaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	config.SetGlobalConfig(cfg)
	return nil
}

const rootCmdExample = `  # Run the interactive windowed list demo
  renderlab demo

  # Demo with a million rows and a larger overscan buffer
  renderlab demo --items 1000000 --buffer 8

  # Replay a synthetic scroll trace and print the report
  renderlab bench

  # Benchmark with JSON output and per-render records
  renderlab bench --output json --records

  # Show the slowest renders of a benchmark run
  renderlab bench --records --sort elapsed:desc --limit 10

  # Initialize configuration
  renderlab config init

  # Validate configuration
  renderlab config validate`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd(), NewConfigListCmd())
	return cmd
}
