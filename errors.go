package mdview

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrAssetNotFound indicates no asset exists at the requested project path.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrResourceNotFound indicates a named resource (e.g. a stylesheet)
	// is not registered.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrOutsideProject indicates a path resolves outside the project's
	// asset root.
	ErrOutsideProject = errors.New("path outside project assets")

	// ErrUnsupportedFormat indicates an asset exists but cannot be
	// decoded as the requested kind.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrParse indicates the Markdown parser failed on its input.
	ErrParse = errors.New("markdown parse error")
)
