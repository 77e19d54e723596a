package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/core/ports/driving"
)

var extractCmd = &cobra.Command{
	Use:   "extract FILE...",
	Short: "Extract plain text from documents",
	Long: `Extract the text of one or more documents as plain ASCII.

A length cap stops extraction once the text exceeds the given number of
UTF-16 code units. Reaching the cap prints a warning and is not an error.

With several files each text is preceded by a "==> FILE <==" header and the
files are extracted concurrently.

Examples:
  extracttext extract report.pdf
  extracttext extract -m 4096 notes.md mail.eml
  extracttext extract --line-break lf -o out.txt letter.docx`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

// Flags for the extract command.
var (
	extractMaxLength int
	extractOutput    string
	extractStats     bool
	extractJobs      int
	extractLineBreak string
)

func init() {
	extractCmd.Flags().IntVarP(&extractMaxLength, "max-length", "m", 0,
		"Length cap in UTF-16 code units (0 = unbounded, default from settings)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Write text to file instead of stdout")
	extractCmd.Flags().BoolVar(&extractStats, "stats", false, "Print extraction statistics to stderr")
	extractCmd.Flags().IntVarP(&extractJobs, "jobs", "j", 0, "Files extracted concurrently (default from settings)")
	extractCmd.Flags().StringVar(&extractLineBreak, "line-break", "", "Line break written between blocks: crlf or lf")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	ext, err := extractorFor(extractLineBreak)
	if err != nil {
		return err
	}

	maxLength, jobs, err := extractLimits(cmd)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return extractOne(cmd, ext, args[0], maxLength)
	}

	results, err := ext.ExtractAll(cmd.Context(), args, maxLength, jobs)
	if err != nil {
		return err
	}

	var out strings.Builder
	failed := 0
	for i, res := range results {
		if i > 0 {
			out.WriteString("\n")
		}
		fmt.Fprintf(&out, "==> %s <==\n", res.Path)
		if res.Err != nil {
			failed++
			cmd.PrintErrln(errorStyle.Render(fmt.Sprintf("%s: %v", res.Path, res.Err)))
			continue
		}
		out.WriteString(res.Extraction.Text)
		out.WriteString("\n")
		reportExtraction(cmd, res.Extraction, maxLength)
	}

	// An output file is only written when some text was extracted.
	if extractOutput == "" || failed < len(results) {
		if err := writeOutput(cmd, out.String()); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// extractOne streams a single file to stdout, or extracts it fully before
// writing --output so a failure leaves any existing file untouched.
func extractOne(cmd *cobra.Command, ext driving.TextExtractor, path string, maxLength int) error {
	var (
		result *domain.Extraction
		err    error
	)
	if extractOutput == "" {
		result, err = ext.ExtractTo(cmd.Context(), path, maxLength, cmd.OutOrStdout())
	} else {
		result, err = ext.Extract(cmd.Context(), path, maxLength)
		if err == nil {
			err = writeOutput(cmd, result.Text)
		}
	}
	if err != nil {
		return err
	}
	reportExtraction(cmd, result, maxLength)
	return nil
}

// writeOutput writes text to --output, or to stdout when it is unset.
func writeOutput(cmd *cobra.Command, text string) error {
	if extractOutput == "" {
		if _, err := io.WriteString(cmd.OutOrStdout(), text); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(extractOutput, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

// extractorFor returns the extractor for a --line-break value.
func extractorFor(lineBreak string) (driving.TextExtractor, error) {
	if lineBreak == "" {
		if extractor == nil {
			return nil, errNoExtractor
		}
		return extractor, nil
	}

	mode := domain.LineBreakMode(strings.ToLower(lineBreak))
	if !mode.IsValid() {
		return nil, fmt.Errorf("invalid line break %q: use crlf or lf", lineBreak)
	}
	if newExtractor == nil {
		return nil, errors.New("line break override not supported")
	}
	return newExtractor(mode), nil
}

// extractLimits resolves the length cap and job count from flags, then settings.
func extractLimits(cmd *cobra.Command) (maxLength, jobs int, err error) {
	maxLength, jobs = extractMaxLength, extractJobs
	if maxLength < 0 {
		return 0, 0, fmt.Errorf("max length must not be negative, got %d", maxLength)
	}

	if settingsService == nil {
		return maxLength, jobs, nil
	}
	settings, err := settingsService.Get()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get settings: %w", err)
	}
	if !cmd.Flags().Changed("max-length") {
		maxLength = settings.Extract.MaxLength
	}
	if !cmd.Flags().Changed("jobs") {
		jobs = settings.Extract.Jobs
	}
	return maxLength, jobs, nil
}

// reportExtraction prints the truncation warning and, with --stats, the statistics.
func reportExtraction(cmd *cobra.Command, result *domain.Extraction, maxLength int) {
	if result.Truncated {
		cmd.PrintErrln(warningStyle.Render(
			fmt.Sprintf("warning: %s truncated at %d code units (cap %d)", result.Path, result.Units, maxLength)))
	}
	if !extractStats {
		return
	}
	cmd.PrintErrln(renderTable(
		[]string{"Path", "Filter", "Status", "Chunks", "Skipped", "Units", "Duration"},
		[][]string{{
			result.Path,
			result.Filter,
			result.Status.String(),
			strconv.Itoa(result.Chunks),
			strconv.Itoa(result.Skipped),
			strconv.Itoa(result.Units),
			result.Duration.String(),
		}},
	))
}
