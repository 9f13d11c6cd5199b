package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rvickers/renderlab/internal/bench"
	"github.com/rvickers/renderlab/internal/cli/pagination"
	"github.com/rvickers/renderlab/internal/config"
	"github.com/rvickers/renderlab/internal/metrics"
)

// benchFlags holds the bench command's flag values.
type benchFlags struct {
	items      int
	itemHeight int
	buffer     int
	viewport   int
	stride     int
	eventStep  time.Duration
	frameSize  int

	output      string
	showRecords bool
	sortFlag    string
	params      *pagination.Params
}

// NewBenchCmd creates the bench command replaying a synthetic scroll trace.
func NewBenchCmd() *cobra.Command {
	flags := benchFlags{params: pagination.NewParams()}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Replay a scroll trace through the windowed renderer",
		Long: `Replays a top-to-bottom scroll trace through a throttled event stream
feeding the windowed renderer, then reports how many of the published events
were delivered and how many renders they caused. The simulated clock makes
event and render counts deterministic.`,
		Example: `  # Default replay over 10,000 rows
  renderlab bench

  # JSON report including every render record
  renderlab bench --output json --records

  # The ten slowest renders
  renderlab bench --records --sort elapsed:desc --limit 10

  # Page through the records
  renderlab bench --records --page 2 --page-size 20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, &flags)
		},
	}

	cmd.Flags().IntVar(&flags.items, "items", config.DefaultItemCount, "number of rows to generate")
	cmd.Flags().IntVar(&flags.itemHeight, "item-height", config.DefaultItemHeight, "per-item height in pixels")
	cmd.Flags().IntVar(&flags.buffer, "buffer", config.DefaultBuffer, "overscan rows rendered past the visible range")
	cmd.Flags().IntVar(&flags.viewport, "viewport", 600, "viewport height in pixels")
	cmd.Flags().IntVar(&flags.stride, "stride", 90, "scroll distance in pixels between events")
	cmd.Flags().DurationVar(&flags.eventStep, "event-step", 4*time.Millisecond, "simulated time between scroll events")
	cmd.Flags().IntVar(&flags.frameSize, "frame-size", 64, "events applied per batch frame")

	cmd.Flags().StringVarP(&flags.output, "output", "o", "table", "output format: table or json")
	cmd.Flags().BoolVar(&flags.showRecords, "records", false, "include per-render records in the output")
	cmd.Flags().StringVar(&flags.sortFlag, "sort", "", "sort records by 'field' or 'field:order' (e.g., 'elapsed:desc')")
	cmd.Flags().IntVar(&flags.params.Limit, "limit", pagination.DefaultLimit, "maximum records to show")
	cmd.Flags().IntVar(&flags.params.Offset, "offset", 0, "records to skip")
	cmd.Flags().IntVar(&flags.params.Page, "page", 0, "1-based page number")
	cmd.Flags().IntVar(&flags.params.PageSize, "page-size", 0, "records per page")

	return cmd
}

func runBench(cmd *cobra.Command, flags *benchFlags) error {
	if flags.output != "table" && flags.output != "json" {
		return fmt.Errorf("unknown output format %q (use table or json)", flags.output)
	}

	field, order, err := pagination.ParseSort(flags.sortFlag)
	if err != nil {
		return err
	}
	flags.params.SortField = field
	flags.params.SortOrder = order
	if err := flags.params.Validate(); err != nil {
		return err
	}

	sorter := pagination.NewRecordSorter()
	if field != "" && !sorter.IsValidField(field) {
		return fmt.Errorf("%w: %q (valid: %v)", pagination.ErrInvalidSortField, field, sorter.ValidFields())
	}

	opts := bench.Options{
		Items:          flags.items,
		ItemHeight:     flags.itemHeight,
		Buffer:         flags.buffer,
		ViewportHeight: flags.viewport,
		Stride:         flags.stride,
		EventStep:      flags.eventStep,
		FrameSize:      flags.frameSize,
	}

	logger.Info().
		Int("items", opts.Items).
		Int("stride", opts.Stride).
		Dur("event_step", opts.EventStep).
		Msg("starting bench replay")

	report, err := bench.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	records := sorter.Sort(report.Records, field, order)
	records = pagination.Apply(*flags.params, records)

	if flags.output == "json" {
		if !flags.showRecords {
			report.Records = nil
		} else {
			report.Records = records
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printBenchSummary(cmd, report)
	if flags.showRecords {
		printBenchRecords(cmd, records, *flags.params, len(report.Records))
	}
	return nil
}

// printBenchSummary writes the replay summary as an aligned table.
func printBenchSummary(cmd *cobra.Command, report *bench.Report) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Events published\t%d\n", report.Events)
	fmt.Fprintf(w, "Events delivered\t%d\n", report.Delivered)
	fmt.Fprintf(w, "Renders\t%d\n", report.Renders)
	fmt.Fprintf(w, "Views mounted\t%d\n", report.MountedViews)
	fmt.Fprintf(w, "Avg render\t%s\n", report.AvgRender)
	fmt.Fprintf(w, "Wall time\t%s\n", report.Wall)
	fmt.Fprintf(w, "Final window\t[%d, %d) at %.1f%%\n",
		report.FinalStats.StartIndex, report.FinalStats.EndIndex, report.FinalStats.ScrollPercent)
	if report.Process.RSS > 0 {
		fmt.Fprintf(w, "Process RSS\t%s\n", metrics.FormatBytes(report.Process.RSS))
	}
	_ = w.Flush()
}

// printBenchRecords writes the paginated render records as a table.
func printBenchRecords(cmd *cobra.Command, records []bench.RenderRecord, params pagination.Params, total int) {
	cmd.Println()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RENDER\tOFFSET\tWINDOW\tMOUNTED\tELAPSED")
	for _, rec := range records {
		fmt.Fprintf(w, "%d\t%d\t[%d, %d)\t%d\t%s\n",
			rec.Render, rec.Offset, rec.StartIndex, rec.EndIndex, rec.Mounted, rec.Elapsed)
	}
	_ = w.Flush()

	meta := pagination.NewMeta(params, total)
	if meta.TotalPages > 1 {
		cmd.Printf("\nPage %d of %d (%d records)\n", meta.CurrentPage, meta.TotalPages, meta.TotalItems)
	} else if len(records) < total {
		cmd.Printf("\nShowing %d of %d records\n", len(records), total)
	}
}
