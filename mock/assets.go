package mock

import (
	"strings"

	"github.com/fwojciec/mdview"
)

// NewAssetStore returns an AssetStore rooted at root that serves the given
// textures and plain assets from memory. Lookups are case-sensitive on
// the project-relative path; anything else returns mdview.ErrAssetNotFound.
func NewAssetStore(root string, textures map[string]mdview.Texture, assets ...string) *AssetStore {
	return &AssetStore{
		RootFn: func() string { return root },
		LoadTextureFn: func(path string) (*mdview.Texture, error) {
			tex, ok := textures[path]
			if !ok {
				return nil, mdview.ErrAssetNotFound
			}
			tex.Path = path
			return &tex, nil
		},
		LoadAssetFn: func(path string) (*mdview.Asset, error) {
			if _, ok := textures[path]; ok {
				return &mdview.Asset{Path: path}, nil
			}
			for _, a := range assets {
				if a == path {
					return &mdview.Asset{Path: path, IsDir: strings.HasSuffix(a, "/")}, nil
				}
			}
			return nil, mdview.ErrAssetNotFound
		},
	}
}
