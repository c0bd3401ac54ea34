package mdview

import (
	"log/slog"
	"strings"
)

// Opener hands a URL to the operating system (browser, file manager).
type Opener interface {
	Open(url string) error
}

// Selector highlights an asset in the host's selection UI.
type Selector interface {
	Select(asset *Asset)
}

// Navigator performs the side effects of activating a Markdown link.
type Navigator struct {
	Store    AssetStore
	Opener   Opener
	Selector Selector
	Logger   *slog.Logger // nil means slog.Default()
}

// Follow resolves rawURL against contextPath and acts on the result:
// external URLs are opened, anchors are logged as unsupported, assets are
// selected and misses are logged as warnings. The resolved target is
// returned so callers can react as well.
func (n *Navigator) Follow(rawURL, contextPath string) LinkTarget {
	if strings.TrimSpace(rawURL) == "" {
		return LinkTarget{Kind: LinkNotFound}
	}
	target := ResolveLink(n.Store, rawURL, contextPath)
	log := n.logger()
	switch target.Kind {
	case LinkExternal:
		if n.Opener == nil {
			log.Info("No opener configured for external link", "url", rawURL)
			break
		}
		if err := n.Opener.Open(rawURL); err != nil {
			log.Warn("Failed to open external link", "url", rawURL, "error", err)
		}
	case LinkAnchor:
		log.Info("Markdown anchor links aren't supported in the viewer", "url", rawURL)
	case LinkAsset:
		if n.Selector != nil {
			n.Selector.Select(target.Asset)
		}
		log.Debug("Selected asset", "path", target.Path)
	default:
		log.Warn("Markdown link target not found", "url", rawURL, "context", contextPath)
	}
	return target
}

// LinkFunc adapts Follow for use as a rendered link's click action.
func (n *Navigator) LinkFunc() LinkFunc {
	return func(url, contextPath string) {
		n.Follow(url, contextPath)
	}
}

func (n *Navigator) logger() *slog.Logger {
	if n.Logger != nil {
		return n.Logger
	}
	return slog.Default()
}
