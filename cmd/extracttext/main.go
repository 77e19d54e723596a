// Command extracttext extracts plain ASCII text from documents.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/extracttext/internal/adapters/driven/config/file"
	"github.com/custodia-labs/extracttext/internal/adapters/driving/cli"
	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/core/ports/driving"
	"github.com/custodia-labs/extracttext/internal/core/services"
	"github.com/custodia-labs/extracttext/internal/filters"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBuilder(build)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// build wires the services behind the CLI commands.
func build(opts cli.Options) (*cli.Services, error) {
	store, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}

	settingsService := services.NewSettingsService(store)
	if opts.EnvFile != "" {
		if err := settingsService.UseEnvFile(opts.EnvFile); err != nil {
			return nil, err
		}
	}

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	registry := filters.NewDefaultRegistry(settings.Filters)
	newExtractor := func(mode domain.LineBreakMode) driving.TextExtractor {
		return services.NewExtractorService(registry, services.WithLineBreak(mode.Sequence()))
	}

	return &cli.Services{
		Extractor:    newExtractor(settings.Extract.LineBreak),
		Settings:     settingsService,
		Catalogue:    registry,
		NewExtractor: newExtractor,
	}, nil
}
