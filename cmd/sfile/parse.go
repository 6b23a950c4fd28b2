package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seisio/sfile-go/internal/safefile"
	"github.com/seisio/sfile-go/pkg/sfile"
)

// maxSFileSize caps a single S-file read. Real S-files are a few KB;
// the cap catches a mistyped path landing on something huge.
const maxSFileSize = 5 * 1024 * 1024

var (
	parseFmt     string
	parseRaw     bool
	parseOptions parseFlags
)

var parseCmd = &cobra.Command{
	Use:   "parse <sfile>...",
	Short: "Parse S-files and output structured events",
	Long: `Parse one or more Nordic-format S-files into structured events.

Each file must contain exactly one event. Output is one JSON object per
file by default.

Examples:
  # Parse to JSON Lines and filter with jq
  sfile parse 01-1300-32L.S202204 | jq .header.magnitudes

  # Human-readable summary
  sfile parse --format pretty 01-1300-32L.S202204

  # Decode agency-specific line types via a layout file
  sfile parse --layouts vendor.yaml 01-1300-32L.S202204`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFmt, "format", "f", "jsonl",
		"Output format: jsonl, pretty")
	parseCmd.Flags().BoolVar(&parseRaw, "raw", false,
		"Include the original lines in the output")
	parseOptions.register(parseCmd)
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if !ValidFormats[parseFmt] {
		return fmt.Errorf("unknown format: %s", parseFmt)
	}
	logger := newLogger()
	opts, err := parseOptions.options(logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, path := range args {
		data, err := safefile.ReadFile(path, maxSFileSize)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		ev, err := sfile.Parse(string(data), opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := OutputEvent(parseFmt, ev, parseRaw, out); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
		for _, u := range ev.UnknownLines() {
			logger.Debug("unrecognized line", "path", path, "line", u.Num, "text", u.Text)
		}
	}
	return nil
}
