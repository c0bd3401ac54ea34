package mdview

import "math"

// AssetRoot is the project-relative directory every asset path lives
// under. Comparisons against it are case-insensitive.
const AssetRoot = "Assets/"

// Texture is a loaded image asset.
type Texture struct {
	Path   string // Project-relative, forward slashes.
	Width  int    // Pixels.
	Height int    // Pixels.
	Format string // Decoder name, e.g. "png".
}

// Asset is any object stored in the project.
type Asset struct {
	Path  string // Project-relative, forward slashes.
	Size  int64
	IsDir bool
}

// AssetStore provides read-only access to a project's assets.
// Implementations return ErrAssetNotFound for missing paths.
type AssetStore interface {
	// Root returns the absolute filesystem path of the project root,
	// the directory that contains AssetRoot.
	Root() string
	LoadTexture(path string) (*Texture, error)
	LoadAsset(path string) (*Asset, error)
}

// FitSize scales w x h to fit inside maxW x maxH preserving aspect ratio.
// Images already inside the bounds are returned unchanged. A
// non-positive bound is treated as unbounded.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	scale := 1.0
	if maxW > 0 && w > maxW {
		scale = float64(maxW) / float64(w)
	}
	if maxH > 0 && float64(h)*scale > float64(maxH) {
		scale = float64(maxH) / float64(h)
	}
	if scale == 1.0 {
		return w, h
	}
	return max(int(math.Round(float64(w)*scale)), 1), max(int(math.Round(float64(h)*scale)), 1)
}
