// Package mock provides test doubles for mdview interfaces using function fields.
package mock

import "github.com/fwojciec/mdview"

// Interface compliance checks.
var (
	_ mdview.AssetStore    = (*AssetStore)(nil)
	_ mdview.Opener        = (*Opener)(nil)
	_ mdview.Selector      = (*Selector)(nil)
	_ mdview.StyleRegistry = (*StyleRegistry)(nil)
)

// AssetStore is a test double for mdview.AssetStore.
// Set the function fields for the methods you need.
type AssetStore struct {
	RootFn        func() string
	LoadTextureFn func(path string) (*mdview.Texture, error)
	LoadAssetFn   func(path string) (*mdview.Asset, error)
}

// Root delegates to RootFn.
func (s *AssetStore) Root() string {
	return s.RootFn()
}

// LoadTexture delegates to LoadTextureFn.
func (s *AssetStore) LoadTexture(path string) (*mdview.Texture, error) {
	return s.LoadTextureFn(path)
}

// LoadAsset delegates to LoadAssetFn.
func (s *AssetStore) LoadAsset(path string) (*mdview.Asset, error) {
	return s.LoadAssetFn(path)
}

// Opener is a test double for mdview.Opener.
// Set OpenFn before calling Open.
type Opener struct {
	OpenFn func(url string) error
}

// Open delegates to OpenFn.
func (o *Opener) Open(url string) error {
	return o.OpenFn(url)
}

// Selector is a test double for mdview.Selector.
// Set SelectFn before calling Select.
type Selector struct {
	SelectFn func(asset *mdview.Asset)
}

// Select delegates to SelectFn.
func (s *Selector) Select(asset *mdview.Asset) {
	s.SelectFn(asset)
}

// StyleRegistry is a test double for mdview.StyleRegistry.
// Set StylesheetFn before calling Stylesheet.
type StyleRegistry struct {
	StylesheetFn func(name string) (*mdview.Stylesheet, error)
}

// Stylesheet delegates to StylesheetFn.
func (r *StyleRegistry) Stylesheet(name string) (*mdview.Stylesheet, error) {
	return r.StylesheetFn(name)
}
