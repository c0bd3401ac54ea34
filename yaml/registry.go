package yaml

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/mdview"
)

var _ mdview.StyleRegistry = (*Registry)(nil)

// Registry resolves stylesheet names to <dir>/<name>.yaml (or .yml).
// Loaded sheets are layered over the fallback, so a file only needs the
// rules it changes. Without a file the fallback itself is returned for
// mdview.StylesheetName.
type Registry struct {
	dir      string
	fallback *mdview.Stylesheet
}

// NewRegistry returns a registry reading from dir. dir may be empty, in
// which case only the fallback is available.
func NewRegistry(dir string, fallback *mdview.Stylesheet) *Registry {
	return &Registry{dir: dir, fallback: fallback}
}

// Stylesheet implements mdview.StyleRegistry.
func (r *Registry) Stylesheet(name string) (*mdview.Stylesheet, error) {
	if r.dir != "" {
		for _, ext := range []string{".yaml", ".yml"} {
			p := filepath.Join(r.dir, name+ext)
			data, err := os.ReadFile(p)
			if errors.Is(err, iofs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("read stylesheet %s: %w", p, err)
			}
			sheet, err := UnmarshalStylesheet(data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", p, err)
			}
			if sheet.Name == "" {
				sheet.Name = name
			}
			return r.fallback.Merge(sheet), nil
		}
	}
	if r.fallback != nil && name == mdview.StylesheetName {
		return r.fallback, nil
	}
	return nil, fmt.Errorf("stylesheet %s: %w", name, mdview.ErrResourceNotFound)
}
