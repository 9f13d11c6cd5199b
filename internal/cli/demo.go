package cli

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rvickers/renderlab/internal/config"
	"github.com/rvickers/renderlab/internal/items"
	"github.com/rvickers/renderlab/internal/tui"
)

// ErrNotATerminal is returned when the demo is started without an
// interactive terminal attached.
var ErrNotATerminal = errors.New("demo requires an interactive terminal")

// NewDemoCmd creates the demo command running the interactive windowed list.
func NewDemoCmd() *cobra.Command {
	var (
		itemCount  int
		itemHeight int
		buffer     int
		seed       int64
		noLazy     bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive windowed list demo",
		Long: `Runs a full-screen list over a generated dataset, rendering only the
visible window of rows. Scrolling, filtering, and mutations go through the
same windowed renderer the bench command measures.`,
		Example: `  # Default demo with 10,000 rows
  renderlab demo

  # A million rows, eight rows of overscan
  renderlab demo --items 1000000 --buffer 8

  # Disable deferred description loading
  renderlab demo --no-lazy`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if tui.DetectOutputMode(false, false, false) != tui.OutputModeInteractive {
				return ErrNotATerminal
			}

			cfg := config.GetGlobalConfig()
			if cmd.Flags().Changed("items") {
				cfg.List.Items = itemCount
			}
			if cmd.Flags().Changed("item-height") {
				cfg.List.ItemHeight = itemHeight
			}
			if cmd.Flags().Changed("buffer") {
				cfg.List.Buffer = buffer
			}
			if noLazy {
				cfg.Demo.LazyLoad = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger.Info().
				Int("items", cfg.List.Items).
				Int("buffer", cfg.List.Buffer).
				Bool("lazy", cfg.Demo.LazyLoad).
				Msg("starting demo")

			data := items.Generate(cfg.List.Items, seed, time.Now())
			model, err := tui.NewDemoModel(cfg, data)
			if err != nil {
				return err
			}

			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("demo failed: %w", err)
			}
			return model.Err()
		},
	}

	cmd.Flags().IntVar(&itemCount, "items", config.DefaultItemCount, "number of rows to generate")
	cmd.Flags().IntVar(&itemHeight, "item-height", config.DefaultItemHeight, "per-item height in pixels")
	cmd.Flags().IntVar(&buffer, "buffer", config.DefaultBuffer, "overscan rows rendered past the visible range")
	cmd.Flags().Int64Var(&seed, "seed", 42, "dataset generation seed")
	cmd.Flags().BoolVar(&noLazy, "no-lazy", false, "disable deferred description loading")

	return cmd
}
