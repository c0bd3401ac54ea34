package goldmark

import (
	"github.com/fwojciec/mdview"
	"github.com/yuin/goldmark/ast"
)

// SplitLines exports splitLines for testing.
func SplitLines(text string) []string {
	return splitLines(text)
}

// WithParseFunc replaces the parser, letting tests simulate failures.
func WithParseFunc(fn func(source []byte) ast.Node) Option {
	return func(r *Renderer) {
		r.parse = fn
	}
}

// RenderBlock renders a single AST node the way Render renders top-level
// blocks, so tests can feed synthetic nodes.
func RenderBlock(node ast.Node, source []byte, assetPath string) *mdview.Widget {
	v := &visitor{source: source, contextPath: assetPath}
	return v.renderBlock(node)
}
