package mdview

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// IsAnimatedImage reports whether rawURL names a GIF by extension.
// GIFs are rejected before any load is attempted.
func IsAnimatedImage(rawURL string) bool {
	return strings.EqualFold(path.Ext(toSlash(rawURL)), ".gif")
}

// ResolveImage maps a Markdown image URL to a texture in store. Remote
// URLs are never fetched. Relative URLs resolve against the directory of
// contextPath, the project-relative path of the document being rendered.
func ResolveImage(store AssetStore, rawURL, contextPath string) (*Texture, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, ErrAssetNotFound
	}
	if hasScheme(rawURL, "http://", "https://") {
		return nil, fmt.Errorf("remote image %s: %w", rawURL, ErrUnsupportedFormat)
	}
	p, err := AssetPath(store.Root(), rawURL, contextPath)
	if err != nil {
		return nil, err
	}
	tex, err := store.LoadTexture(p)
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", p, err)
	}
	return tex, nil
}

// ResolveLink decides what activating a Markdown link should do. It
// performs no side effects; see Navigator for that.
func ResolveLink(store AssetStore, rawURL, contextPath string) LinkTarget {
	target := LinkTarget{URL: rawURL}
	switch {
	case strings.TrimSpace(rawURL) == "":
		target.Kind = LinkNotFound
	case hasScheme(rawURL, "http://", "https://", "file://"):
		target.Kind = LinkExternal
	case strings.HasPrefix(rawURL, "#"):
		target.Kind = LinkAnchor
	default:
		target.Kind = LinkNotFound
		p, err := AssetPath(store.Root(), stripFragment(rawURL), contextPath)
		if err != nil {
			return target
		}
		target.Path = p
		asset, err := store.LoadAsset(p)
		if err != nil {
			return target
		}
		target.Kind = LinkAsset
		target.Asset = asset
	}
	return target
}

// AssetPath resolves rawURL to a project-relative asset path. URLs that
// already start with AssetRoot are taken relative to the project root;
// anything else is relative to the directory containing contextPath.
// Paths that normalize outside AssetRoot yield ErrOutsideProject.
func AssetPath(root, rawURL, contextPath string) (string, error) {
	p := toSlash(unescape(rawURL))
	var abs string
	if hasAssetPrefix(p) {
		abs = filepath.Join(root, filepath.FromSlash(p))
	} else {
		dir := path.Dir(toSlash(contextPath))
		if contextPath == "" {
			dir = strings.TrimSuffix(AssetRoot, "/")
		}
		abs = filepath.Join(root, filepath.FromSlash(dir), filepath.FromSlash(p))
	}
	return ProjectPath(root, abs)
}

// ProjectPath re-expresses an absolute filesystem path relative to the
// project root with forward slashes. The result must lie under AssetRoot.
func ProjectPath(root, abs string) (string, error) {
	root = filepath.Clean(root)
	full := filepath.Clean(abs)
	if len(full) <= len(root) || !strings.EqualFold(full[:len(root)], root) {
		return "", fmt.Errorf("%s: %w", abs, ErrOutsideProject)
	}
	rest := full[len(root):]
	if !strings.HasSuffix(root, string(filepath.Separator)) && !isSeparator(rest[0]) {
		return "", fmt.Errorf("%s: %w", abs, ErrOutsideProject)
	}
	rel := toSlash(strings.TrimLeft(rest, `/\`))
	if !hasAssetPrefix(rel) {
		return "", fmt.Errorf("%s: %w", abs, ErrOutsideProject)
	}
	return rel, nil
}

func hasAssetPrefix(p string) bool {
	return len(p) >= len(AssetRoot) && strings.EqualFold(p[:len(AssetRoot)], AssetRoot)
}

func hasScheme(rawURL string, schemes ...string) bool {
	for _, s := range schemes {
		if len(rawURL) >= len(s) && strings.EqualFold(rawURL[:len(s)], s) {
			return true
		}
	}
	return false
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

// stripFragment drops a trailing "#section" so "other.md#intro" selects
// other.md.
func stripFragment(rawURL string) string {
	if i := strings.IndexByte(rawURL, '#'); i > 0 {
		return rawURL[:i]
	}
	return rawURL
}

// unescape decodes percent-escapes such as %20. Invalid escapes leave the
// URL untouched.
func unescape(rawURL string) string {
	s, err := url.PathUnescape(rawURL)
	if err != nil {
		return rawURL
	}
	return s
}
