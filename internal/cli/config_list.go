package cli

import (
	"github.com/spf13/cobra"

	"github.com/rvickers/renderlab/internal/config"
)

// NewConfigListCmd creates the config list command showing effective values.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List effective configuration values",
		Long: `Prints the effective configuration after the config file and flag
overrides have been applied.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printConfig(cmd, config.GetGlobalConfig())
			return nil
		},
	}
}
