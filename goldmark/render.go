// Package goldmark renders Markdown into mdview widget trees using
// goldmark for parsing.
package goldmark

import (
	"fmt"

	"github.com/fwojciec/mdview"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// pipeline is the fixed parser configuration: bare URLs become links,
// pipe tables and ~~strikethrough~~ are recognized. It is never mutated
// after initialization.
var pipeline = goldmark.New(
	goldmark.WithExtensions(
		extension.Linkify,
		extension.Table,
		extension.Strikethrough,
	),
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithAssetStore sets the store images and links resolve against.
// Without one every image renders as not found.
func WithAssetStore(s mdview.AssetStore) Option {
	return func(r *Renderer) {
		r.store = s
	}
}

// WithStyleRegistry sets where the document stylesheet is looked up.
func WithStyleRegistry(s mdview.StyleRegistry) Option {
	return func(r *Renderer) {
		r.styles = s
	}
}

// WithLinkFunc sets the action run when a rendered link is activated.
func WithLinkFunc(fn mdview.LinkFunc) Option {
	return func(r *Renderer) {
		r.onLink = fn
	}
}

// Renderer turns Markdown text into widget trees.
type Renderer struct {
	store  mdview.AssetStore
	styles mdview.StyleRegistry
	onLink mdview.LinkFunc
	parse  func(source []byte) ast.Node
}

// NewRenderer creates a Renderer using the shared parser pipeline.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		parse: func(source []byte) ast.Node {
			return pipeline.Parser().Parse(text.NewReader(source))
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render parses markdown and returns the root widget of the rendered
// document. assetPath is the project-relative path of the document and
// anchors relative resource resolution. Render never fails: empty input
// yields a placeholder and a parser failure yields a warning followed by
// the raw source.
func (r *Renderer) Render(markdown, assetPath string) *mdview.Widget {
	root := mdview.NewContainer(mdview.ClassRoot)
	if r.styles != nil {
		if sheet, err := r.styles.Stylesheet(mdview.StylesheetName); err == nil {
			root.Stylesheet = sheet
		}
	}

	if markdown == "" {
		root.Add(mdview.NewLabel("(empty)"))
		return root
	}

	source := []byte(markdown)
	doc, err := r.safeParse(source)
	if err != nil {
		warning := mdview.NewContainer(mdview.ClassWarning)
		warning.Add(mdview.NewLabel(err.Error()))
		root.Add(warning, &mdview.Widget{
			Kind:      mdview.KindTextField,
			Text:      markdown,
			ReadOnly:  true,
			Multiline: true,
		})
		return root
	}

	v := &visitor{
		source:      source,
		contextPath: assetPath,
		store:       r.store,
		onLink:      r.onLink,
	}
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		root.Add(v.renderBlock(c))
	}
	return root
}

// safeParse converts a parser panic into ErrParse.
func (r *Renderer) safeParse(source []byte) (doc ast.Node, err error) {
	defer func() {
		if p := recover(); p != nil {
			doc, err = nil, fmt.Errorf("%w: %v", mdview.ErrParse, p)
		}
	}()
	return r.parse(source), nil
}
