package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Re-extract documents as they change",
	Long: `Watch a directory tree and re-extract each document when it is created or
written. Hidden files and directories are ignored.

With --output-dir each document's text is written to a mirrored path with a
.txt suffix, and removed documents have their text file deleted. Otherwise
text is printed to stdout under a "==> FILE <==" header.

Re-extraction is rate limited by the watch.events_per_second and watch.burst
settings.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

// watchOutputDir is a flag for the watch command.
var watchOutputDir string

func init() {
	watchCmd.Flags().StringVarP(&watchOutputDir, "output-dir", "o", "", "Directory receiving one .txt file per document")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if extractor == nil {
		return errNoExtractor
	}

	settings := domain.DefaultAppSettings()
	if settingsService != nil {
		s, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		settings = *s
	}

	w, err := watch.New(args[0], watch.RateLimitConfig{
		EventsPerSecond: settings.Watch.EventsPerSecond,
		Burst:           settings.Watch.Burst,
	})
	if err != nil {
		return err
	}
	defer w.Close()

	handler := watch.NewExtractHandler(extractor, watch.ExtractOptions{
		Root:      w.Root(),
		OutputDir: watchOutputDir,
		Out:       cmd.OutOrStdout(),
		MaxLength: settings.Extract.MaxLength,
	})

	cmd.PrintErrln(mutedStyle.Render(fmt.Sprintf("Watching %s (Ctrl+C to stop)", w.Root())))

	err = w.Run(cmd.Context(), handler)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
