package goldmark

import (
	"strings"

	"github.com/fwojciec/mdview"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// renderInlines renders first and its following siblings into a flat
// widget sequence.
func (v *visitor) renderInlines(first ast.Node) []*mdview.Widget {
	var out []*mdview.Widget
	for c := first; c != nil; c = c.NextSibling() {
		out = v.appendInline(out, c)
	}
	return out
}

func (v *visitor) appendInline(out []*mdview.Widget, node ast.Node) []*mdview.Widget {
	switch n := node.(type) {
	case *ast.Text:
		value := string(n.Segment.Value(v.source))
		hasBreak := n.SoftLineBreak() || n.HardLineBreak()
		if value != "" || !hasBreak {
			out = append(out, mdview.NewLabel(value))
		}
		if hasBreak {
			out = append(out, &mdview.Widget{Kind: mdview.KindLabel, Text: "\n", WhiteSpace: mdview.WhiteSpacePre})
		}
		return out

	case *ast.String:
		return append(out, mdview.NewLabel(string(n.Value)))

	case *ast.CodeSpan:
		return append(out, mdview.NewLabel(v.codeText(n), mdview.ClassInlineCode))

	case *ast.Emphasis, *extast.Strikethrough:
		// Emphasis strength is not styled; children render as siblings.
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			out = v.appendInline(out, c)
		}
		return out

	case *ast.Image:
		return append(out, v.renderImage(n))

	case *ast.Link:
		return append(out, v.renderLink(string(n.Destination), v.flatten(n.FirstChild())))

	case *ast.AutoLink:
		return append(out, v.renderLink(string(n.URL(v.source)), string(n.Label(v.source))))

	default:
		return append(out, mdview.NewLabel(v.rawText(node)))
	}
}

// renderLink returns a chrome-less button. The click action captures its
// own copy of url and the document path.
func (v *visitor) renderLink(url, caption string) *mdview.Widget {
	if strings.TrimSpace(caption) == "" {
		caption = url
	}
	btn := &mdview.Widget{
		Kind:       mdview.KindButton,
		Text:       caption,
		Classes:    []string{mdview.ClassLink},
		Pickable:   true,
		Chromeless: true,
	}
	if onLink, contextPath := v.onLink, v.contextPath; onLink != nil {
		btn.OnClick = func() { onLink(url, contextPath) }
	}
	return btn
}

// flatten concatenates the plain text of first and its following
// siblings, dropping all formatting. Images contribute nothing.
func (v *visitor) flatten(first ast.Node) string {
	var b strings.Builder
	for c := first; c != nil; c = c.NextSibling() {
		v.flattenNode(&b, c)
	}
	return b.String()
}

func (v *visitor) flattenNode(b *strings.Builder, node ast.Node) {
	switch n := node.(type) {
	case *ast.Text:
		b.Write(n.Segment.Value(v.source))
		if n.SoftLineBreak() || n.HardLineBreak() {
			b.WriteByte('\n')
		}
	case *ast.String:
		b.Write(n.Value)
	case *ast.CodeSpan:
		b.WriteString(v.codeText(n))
	case *ast.Emphasis, *extast.Strikethrough, *ast.Link:
		b.WriteString(v.flatten(n.FirstChild()))
	case *ast.Image:
	case *ast.AutoLink:
		b.Write(n.Label(v.source))
	default:
		b.WriteString(v.rawText(node))
	}
}

// codeText returns the literal content of a code span.
func (v *visitor) codeText(code *ast.CodeSpan) string {
	var b strings.Builder
	for c := code.FirstChild(); c != nil; c = c.NextSibling() {
		switch n := c.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(v.source))
		case *ast.String:
			b.Write(n.Value)
		}
	}
	return b.String()
}
