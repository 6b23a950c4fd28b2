package main

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/seisio/sfile-go/internal/safefile"
	"github.com/seisio/sfile-go/pkg/sfile"
)

var (
	catalogFmt     string
	catalogSince   string
	catalogUntil   string
	catalogQuiet   bool
	catalogOptions parseFlags
)

var catalogCmd = &cobra.Command{
	Use:   "catalog <sfile>...",
	Short: "Batch-parse S-files into a catalog",
	Long: `Batch-parse many S-files into a catalog.

Each file is parsed independently: a malformed file is reported and
does not stop the rest of the batch. Per-file status goes to stderr,
events go to stdout in the selected format.

Examples:
  # Summarize a month of events
  sfile catalog REA/2022-04/*.S202204

  # Only events in a date window (flexible date syntax)
  sfile catalog --since 2022-03-30 --until "May 20, 2022" *.S??????

  # Failures only
  sfile catalog --quiet *.S?????? > /dev/null`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogFmt, "format", "f", "jsonl",
		"Output format: jsonl, pretty")
	catalogCmd.Flags().StringVar(&catalogSince, "since", "",
		"Keep events at or after this date")
	catalogCmd.Flags().StringVar(&catalogUntil, "until", "",
		"Keep events at or before this date")
	catalogCmd.Flags().BoolVarP(&catalogQuiet, "quiet", "q", false,
		"Suppress per-file OK lines, report failures only")
	catalogOptions.register(catalogCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	if !ValidFormats[catalogFmt] {
		return fmt.Errorf("unknown format: %s", catalogFmt)
	}
	logger := newLogger()
	opts, err := catalogOptions.options(logger)
	if err != nil {
		return err
	}

	since, until, err := parseDateWindow(catalogSince, catalogUntil)
	if err != nil {
		return err
	}

	loader := sfile.Loader(func(path string) ([]byte, error) {
		return safefile.ReadFile(path, maxSFileSize)
	})
	cat, outcomes := sfile.FromPaths(loader, args, opts...)

	errOut := cmd.ErrOrStderr()
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			fmt.Fprintf(errOut, "FAIL %s: %v\n", o.Path, o.Err)
			continue
		}
		if !catalogQuiet {
			fmt.Fprintf(errOut, "OK   %s: %s, %d phases\n",
				o.Path, o.Event, len(o.Event.Phases()))
		}
	}
	fmt.Fprintf(errOut, "parsed %d/%d files\n", len(outcomes)-failed, len(outcomes))

	if !since.IsZero() || !until.IsZero() {
		cat = cat.Filter(since, until)
	}
	out := cmd.OutOrStdout()
	for _, ev := range cat.Events() {
		if err := OutputEvent(catalogFmt, ev, false, out); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}

	if failed == len(outcomes) {
		return fmt.Errorf("all %d files failed", failed)
	}
	return nil
}

// parseDateWindow parses the --since/--until values. dateparse accepts
// most human date spellings; --until without a time of day extends to
// the end of that day so single-day windows behave as expected.
func parseDateWindow(sinceStr, untilStr string) (since, until time.Time, err error) {
	if sinceStr != "" {
		since, err = dateparse.ParseStrict(sinceStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --since: %w", err)
		}
	}
	if untilStr != "" {
		until, err = dateparse.ParseStrict(untilStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --until: %w", err)
		}
		if until.Hour() == 0 && until.Minute() == 0 && until.Second() == 0 {
			until = until.Add(24*time.Hour - time.Nanosecond)
		}
	}
	return since, until, nil
}
