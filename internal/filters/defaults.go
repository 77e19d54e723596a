package filters

import (
	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/filters/docconv"
	"github.com/custodia-labs/extracttext/internal/filters/docx"
	"github.com/custodia-labs/extracttext/internal/filters/eml"
	"github.com/custodia-labs/extracttext/internal/filters/html"
	"github.com/custodia-labs/extracttext/internal/filters/markdown"
	"github.com/custodia-labs/extracttext/internal/filters/pdf"
	"github.com/custodia-labs/extracttext/internal/filters/plaintext"
	"github.com/custodia-labs/extracttext/internal/logger"
)

// DefaultFactories returns every built-in factory.
func DefaultFactories(settings domain.FilterSettings) []Factory {
	return []Factory{
		plaintext.New(),
		markdown.New(),
		html.New(),
		eml.New(),
		docx.New(),
		pdf.New(),
		docconv.New(settings.Readability),
	}
}

// NewDefaultRegistry creates a registry with the built-in filters,
// leaving out those named in settings.Disabled.
func NewDefaultRegistry(settings domain.FilterSettings) *Registry {
	r := NewRegistry(settings.Sniff)
	for _, f := range DefaultFactories(settings) {
		if settings.IsDisabled(f.Name()) {
			logger.Debug("Filter %s disabled", f.Name())
			continue
		}
		r.Register(f)
	}
	return r
}
