// Package cli provides the extracttext command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/core/ports/driven"
	"github.com/custodia-labs/extracttext/internal/core/ports/driving"
	"github.com/custodia-labs/extracttext/internal/logger"
)

// version is set at build time.
var version = "dev"

// Services used by the commands. Set by the builder, or directly in tests.
var (
	extractor       driving.TextExtractor
	settingsService driving.SettingsService
	catalogue       driven.FilterCatalogue
	newExtractor    func(domain.LineBreakMode) driving.TextExtractor
)

var (
	errNoExtractor = errors.New("extractor not configured")
	errNoSettings  = errors.New("settings service not configured")
)

// Options are the global flags handed to the service builder.
type Options struct {
	// ConfigDir overrides the configuration directory.
	ConfigDir string

	// EnvFile is a dotenv file layered under the process environment.
	EnvFile string

	// Verbose enables debug logging.
	Verbose bool
}

// Services are the ports the commands run against.
type Services struct {
	Extractor driving.TextExtractor
	Settings  driving.SettingsService
	Catalogue driven.FilterCatalogue

	// NewExtractor builds an extractor writing a different line break.
	// Optional; without it extract --line-break is rejected.
	NewExtractor func(domain.LineBreakMode) driving.TextExtractor
}

// Builder constructs the services once global flags are parsed.
type Builder func(opts Options) (*Services, error)

var (
	builder Builder
	opts    Options
)

var rootCmd = &cobra.Command{
	Use:   "extracttext",
	Short: "Extract plain ASCII text from documents",
	Long: `extracttext drives a content filter over a document and returns its text,
folded from typographic Unicode to plain ASCII.

Supported formats include plain text, Markdown, HTML, email (.eml), DOCX,
PDF, and through docconv DOC, RTF, ODT, Pages and PPTX.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.ConfigDir, "config-dir", "", "Configuration directory (default ~/.extracttext)")
	rootCmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "Environment file layered under the process environment")
}

// SetBuilder registers the function that constructs services.
func SetBuilder(b Builder) {
	builder = b
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(opts.Verbose)

	if builder == nil {
		return nil
	}
	svc, err := builder(opts)
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	extractor = svc.Extractor
	settingsService = svc.Settings
	catalogue = svc.Catalogue
	newExtractor = svc.NewExtractor
	return nil
}
