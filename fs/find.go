package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/mdview"
)

// Find returns the project-relative paths of files matching a glob
// pattern. Supports ** for recursive matching and {a,b} alternatives.
func (s *Store) Find(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern: %s", pattern)
	}

	var matches []string
	err := doublestar.GlobWalk(os.DirFS(s.root), pattern, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		matches = append(matches, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error matching pattern: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Documents lists every Markdown document under the asset root.
func (s *Store) Documents() ([]string, error) {
	exts := make([]string, len(mdview.MarkdownExtensions))
	for i, e := range mdview.MarkdownExtensions {
		exts[i] = strings.TrimPrefix(e, ".")
	}
	pattern := mdview.AssetRoot + "**/*.{" + strings.Join(exts, ",") + "}"
	return s.Find(pattern)
}
