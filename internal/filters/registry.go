// Package filters selects the content filter for a file.
//
// Filters are chosen by file extension first. When no extension matches
// and sniffing is enabled, the content is sniffed and matched against the
// MIME types each filter declares, walking up the detected type's parent
// chain (for example text/x-go to text/plain).
package filters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/custodia-labs/extracttext/internal/core/domain"
	"github.com/custodia-labs/extracttext/internal/core/ports/driven"
	"github.com/custodia-labs/extracttext/internal/filters/chunked"
	"github.com/custodia-labs/extracttext/internal/logger"
)

// Ensure Registry implements the interfaces.
var (
	_ driven.FilterLoader    = (*Registry)(nil)
	_ driven.FilterCatalogue = (*Registry)(nil)
)

// Factory creates filters for one family of file types.
type Factory interface {
	// Name returns the filter name. It should be unique.
	Name() string

	// Extensions returns the lower-case file extensions, with dot, this
	// factory is selected for.
	Extensions() []string

	// MIMETypes returns the MIME types this factory is selected for when
	// the content is sniffed.
	MIMETypes() []string

	// Priority orders factories claiming the same type. Higher wins.
	Priority() int

	// Load opens path and returns an uninitialised filter.
	Load(ctx context.Context, path string) (driven.Filter, error)
}

// Registry maps file types to filter factories.
type Registry struct {
	factories []Factory
	sniff     bool
}

// NewRegistry creates an empty registry. sniff enables content sniffing
// for files whose extension no factory claims.
func NewRegistry(sniff bool) *Registry {
	return &Registry{sniff: sniff}
}

// Register adds a factory. A factory with the same name is replaced.
func (r *Registry) Register(f Factory) {
	for i, existing := range r.factories {
		if existing.Name() == f.Name() {
			r.factories[i] = f
			r.sort()
			return
		}
	}
	r.factories = append(r.factories, f)
	r.sort()
}

// sort keeps factories in selection order: priority descending, then name.
func (r *Registry) sort() {
	sort.SliceStable(r.factories, func(i, j int) bool {
		pi, pj := r.factories[i].Priority(), r.factories[j].Priority()
		if pi != pj {
			return pi > pj
		}
		return r.factories[i].Name() < r.factories[j].Name()
	})
}

// Has returns true if a factory with the given name is registered.
func (r *Registry) Has(name string) bool {
	for _, f := range r.factories {
		if f.Name() == name {
			return true
		}
	}
	return false
}

// Names returns the registered factory names in selection order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for _, f := range r.factories {
		names = append(names, f.Name())
	}
	return names
}

// Filters returns the registered filters in selection order.
func (r *Registry) Filters() []driven.FilterInfo {
	infos := make([]driven.FilterInfo, 0, len(r.factories))
	for _, f := range r.factories {
		infos = append(infos, driven.FilterInfo{
			Name:       f.Name(),
			Extensions: f.Extensions(),
			MIMETypes:  f.MIMETypes(),
		})
	}
	return infos
}

// Select returns the factory for path.
// Missing files fail with StatusAccess, directories with StatusInvalidArg
// and unclaimed types with StatusFilterNotFound.
func (r *Registry) Select(path string) (Factory, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, chunked.StatError(path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, domain.StatusInvalidArg)
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != "" {
		for _, f := range r.factories {
			if contains(f.Extensions(), ext) {
				logger.Debug("Selected filter %s for extension %s", f.Name(), ext)
				return f, nil
			}
		}
	}

	if r.sniff {
		m, err := mimetype.DetectFile(path)
		if err != nil {
			return nil, chunked.StatError(path, err)
		}
		for ; m != nil; m = m.Parent() {
			for _, f := range r.factories {
				if matchesMIME(m, f.MIMETypes()) {
					logger.Debug("Selected filter %s for sniffed type %s", f.Name(), m.String())
					return f, nil
				}
			}
		}
	}

	return nil, fmt.Errorf("no filter for %s: %w", path, domain.StatusFilterNotFound)
}

// Load selects the factory for path and loads a filter from it.
func (r *Registry) Load(ctx context.Context, path string) (driven.Filter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := r.Select(path)
	if err != nil {
		return nil, err
	}
	return f.Load(ctx, path)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func matchesMIME(m *mimetype.MIME, types []string) bool {
	for _, t := range types {
		if m.Is(t) {
			return true
		}
	}
	return false
}
