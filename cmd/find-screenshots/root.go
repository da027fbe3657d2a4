package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	screenshots "github.com/gcxixi/find-screenshots-cli"
)

type rootFlags struct {
	copyTo         string
	moveTo         string
	skipDuplicates bool
	workers        int
	jsonOutput     bool
	logLevel       string
	configPath     string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "find-screenshots <folder>",
		Short: "Find phone/tablet screenshots in a directory tree",
		Long: `Recursively find phone/tablet screenshots under a folder.

Strategy:
  1. Filename keywords first (screenshot, 截屏, ...).
  2. Then image features: phone/tablet aspect ratios, excluding files
     that carry camera EXIF (aperture/exposure/ISO).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.copyTo, "copy-to", "c", "", "copy found screenshots to this directory")
	cmd.Flags().StringVarP(&flags.moveTo, "move-to", "m", "", "move found screenshots to this directory")
	cmd.MarkFlagsMutuallyExclusive("copy-to", "move-to")
	cmd.Flags().BoolVar(&flags.skipDuplicates, "skip-duplicates", false, "drop perceptual duplicates from the results")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "classification concurrency (0 = number of CPUs)")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "print matches as JSON instead of a table")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to a TOML config file")

	return cmd
}

func run(cmd *cobra.Command, folder string, flags *rootFlags) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	if flags.workers != 0 {
		cfg.Workers = flags.workers
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.skipDuplicates {
		cfg.SkipDuplicates = true
	}

	if err := setupLogging(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
		return err
	}

	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("directory %q does not exist", folder)
	}

	out := cmd.OutOrStdout()
	if abs, err := filepath.Abs(folder); err == nil && !flags.jsonOutput {
		fmt.Fprintf(out, "Scanning: %s\n", abs)
	}

	tracker := newScanTracker(cmd.ErrOrStderr())
	matches, err := screenshots.ScanDir(cmd.Context(), folder, screenshots.ScanOptions{
		Workers:        cfg.Workers,
		SkipDuplicates: cfg.SkipDuplicates,
		Progress:       tracker.update,
	})
	tracker.stop()
	if err != nil {
		return err
	}

	if flags.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	if len(matches) == 0 {
		fmt.Fprintln(out, "No screenshots found.")
		return nil
	}

	fmt.Fprintln(out, renderMatchTable(matches))

	return runTransfer(out, matches, flags)
}

// runTransfer performs the optional copy/move step. Per-file failures are
// reported and do not change the exit code; a destination that could not be
// created at all does.
func runTransfer(out io.Writer, matches []screenshots.Match, flags *rootFlags) error {
	var destDir string
	mode := screenshots.ModeCopy

	switch {
	case flags.copyTo != "":
		destDir = flags.copyTo
	case flags.moveTo != "":
		destDir = flags.moveTo
		mode = screenshots.ModeMove
	default:
		return nil
	}

	fmt.Fprintf(out, "\n%s to: %s\n", mode, destDir)

	// An unusable destination is a command failure; per-file trouble
	// below is reported but never changes the exit code.
	outcomes, err := screenshots.Transfer(matches, destDir, mode)
	if err != nil {
		return err
	}

	var done, skipped, failed int
	for _, oc := range outcomes {
		switch oc.Status {
		case screenshots.StatusDone:
			done++
		case screenshots.StatusSkipped:
			skipped++
			fmt.Fprintf(out, "skipped (exists): %s\n", oc.Match.Name)
		case screenshots.StatusFailed:
			failed++
			fmt.Fprintf(out, "failed: %s: %v\n", oc.Match.Name, oc.Err)
		}
	}
	fmt.Fprintf(out, "Finished: %d transferred, %d skipped, %d failed\n", done, skipped, failed)
	return nil
}

func setupLogging(w io.Writer, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}
