// Package fs provides a file-backed mdview.AssetStore rooted at a
// project directory.
package fs

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register decoder.
	_ "image/jpeg" // Register decoder.
	_ "image/png"  // Register decoder.
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/mdview"
)

var _ mdview.AssetStore = (*Store)(nil)

// Store serves assets from the Assets directory of a project on disk.
type Store struct {
	root string
}

// NewStore returns a store for the project at root. The root must be an
// existing directory; it does not have to contain Assets yet.
func NewStore(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("access project root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", abs)
	}
	return &Store{root: abs}, nil
}

// Root returns the absolute project root.
func (s *Store) Root() string {
	return s.root
}

// LoadTexture decodes the header of the image at p. Only the dimensions
// and format are read; pixels are left on disk.
func (s *Store) LoadTexture(p string) (*mdview.Texture, error) {
	rel, full, err := s.locate(p)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, notFound(rel, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %v: %w", rel, err, mdview.ErrUnsupportedFormat)
	}
	return &mdview.Texture{
		Path:   rel,
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
	}, nil
}

// LoadAsset returns metadata for the file or directory at p.
func (s *Store) LoadAsset(p string) (*mdview.Asset, error) {
	rel, full, err := s.locate(p)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(full)
	if err != nil {
		return nil, notFound(rel, err)
	}
	return &mdview.Asset{Path: rel, Size: info.Size(), IsDir: info.IsDir()}, nil
}

// ReadDocument returns the text of the document at p.
func (s *Store) ReadDocument(p string) (string, error) {
	rel, full, err := s.locate(p)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return "", notFound(rel, err)
	}
	return string(data), nil
}

// locate validates a project-relative path and returns its normalized
// form and absolute location.
func (s *Store) locate(p string) (rel, full string, err error) {
	rel, err = mdview.ProjectPath(s.root, filepath.Join(s.root, filepath.FromSlash(p)))
	if err != nil {
		return "", "", err
	}
	return rel, filepath.Join(s.root, filepath.FromSlash(rel)), nil
}

func notFound(rel string, err error) error {
	if errors.Is(err, iofs.ErrNotExist) {
		return fmt.Errorf("%s: %w", rel, mdview.ErrAssetNotFound)
	}
	return fmt.Errorf("%s: %w", rel, err)
}
