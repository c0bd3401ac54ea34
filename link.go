package mdview

// LinkKind classifies the outcome of resolving a link.
type LinkKind int

const (
	// LinkNotFound means the URL names no reachable asset.
	LinkNotFound LinkKind = iota
	// LinkExternal means the URL is handed to the operating system.
	LinkExternal
	// LinkAnchor means the URL is an in-document anchor, which is not
	// navigable.
	LinkAnchor
	// LinkAsset means the URL names an existing project asset.
	LinkAsset
)

func (k LinkKind) String() string {
	switch k {
	case LinkExternal:
		return "external"
	case LinkAnchor:
		return "anchor"
	case LinkAsset:
		return "asset"
	default:
		return "not-found"
	}
}

// LinkTarget is a resolved link.
type LinkTarget struct {
	Kind  LinkKind
	URL   string // As written in the document.
	Path  string // Project-relative path, when the URL resolved to one.
	Asset *Asset // Set when Kind is LinkAsset.
}

// LinkFunc is invoked when a rendered link is activated, with the link's
// URL and the project-relative path of the document that contains it.
type LinkFunc func(url, contextPath string)
