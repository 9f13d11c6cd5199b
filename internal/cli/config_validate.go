package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvickers/renderlab/internal/config"
)

// NewConfigValidateCmd creates the config validate command.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the loaded configuration for syntax and semantic correctness,
including list geometry bounds and cache sizing.`,
		Example: `  # Validate current configuration
  renderlab config validate

  # Validate and show the effective values
  renderlab config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			cmd.Println("Configuration is valid")
			if verbose {
				printConfig(cmd, cfg)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show the effective configuration values")

	return cmd
}

// printConfig writes the effective configuration values.
func printConfig(cmd *cobra.Command, cfg *config.Config) {
	cmd.Printf("  list.item_height: %d\n", cfg.List.ItemHeight)
	cmd.Printf("  list.buffer: %d\n", cfg.List.Buffer)
	cmd.Printf("  list.items: %d\n", cfg.List.Items)
	cmd.Printf("  demo.cache_capacity: %d\n", cfg.Demo.CacheCapacity)
	cmd.Printf("  demo.lazy_load: %t\n", cfg.Demo.LazyLoad)
	cmd.Printf("  logging.level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  logging.file: %s\n", cfg.Logging.File)
	}
}
