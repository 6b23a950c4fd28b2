package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nxadm/tail"
	"github.com/spf13/cobra"

	"github.com/seisio/sfile-go/internal/worfind"
	"github.com/seisio/sfile-go/pkg/sfile"
)

var (
	watchWorDir  string
	watchFmt     string
	watchOptions parseFlags
)

var watchCmd = &cobra.Command{
	Use:   "watch [sfile]",
	Short: "Follow a growing S-file and classify lines as they arrive",
	Long: `Follow an S-file that is still being written (for example by an
acquisition or location pipeline) and emit one record per appended line
with its classification.

Without an argument the current S-file is resolved from the Seisan
working directory: the eev.cur.sfile pointer if present, otherwise the
most recently modified S-file. The directory comes from --wor, the
SFILE_WOR environment variable, or the current directory.

Examples:
  # Follow a specific file
  sfile watch REA/2022-04/01-1300-32L.S202204

  # Follow whatever eev is positioned on
  sfile watch --wor /seismo/WOR`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchWorDir, "wor", "d", "",
		"Seisan working directory (used when no S-file argument is given)")
	watchCmd.Flags().StringVarP(&watchFmt, "format", "f", "pretty",
		"Output format: jsonl, pretty")
	watchOptions.register(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

// lineRecord is the jsonl shape for one watched line.
type lineRecord struct {
	Num  int    `json:"num"`
	Type string `json:"type"`
	Text string `json:"text"`
}

func runWatch(cmd *cobra.Command, args []string) error {
	if !ValidFormats[watchFmt] {
		return fmt.Errorf("unknown format: %s", watchFmt)
	}
	logger := newLogger()
	opts, err := watchOptions.options(logger)
	if err != nil {
		return err
	}

	path, err := resolveWatchTarget(args)
	if err != nil {
		return err
	}
	logger.Debug("watching", "path", path)

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	t, err := tail.TailFile(path, tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: true,
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return fmt.Errorf("tail %s: %w", path, err)
	}
	defer t.Cleanup()

	out := cmd.OutOrStdout()
	num := 0
	for {
		select {
		case <-ctx.Done():
			return t.Stop()

		case line, ok := <-t.Lines:
			if !ok {
				return nil
			}
			if line.Err != nil {
				logger.Warn("tail error", "error", line.Err)
				continue
			}
			num++
			text := strings.TrimRight(line.Text, "\r")
			lt, err := sfile.ClassifyLine(text, opts...)
			if err != nil {
				return err
			}
			if err := outputLine(out, num, lt, text); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
		}
	}
}

func outputLine(out io.Writer, num int, lt sfile.LineType, text string) error {
	if watchFmt == "jsonl" {
		data, err := json.Marshal(lineRecord{Num: num, Type: lt.String(), Text: text})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	_, err := fmt.Fprintf(out, "[%s] %-14s %s\n",
		time.Now().Format("15:04:05"), lt, strings.TrimRight(text, " "))
	return err
}

// resolveWatchTarget picks the file to follow: the explicit argument,
// or the working directory's current S-file.
func resolveWatchTarget(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	dir, err := worfind.FindWorkDir(watchWorDir)
	if err != nil {
		return "", err
	}
	return worfind.CurrentSFile(dir)
}
