package goldmark

import (
	"fmt"
	"strings"

	"github.com/fwojciec/mdview"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// Images are bounded to this display size and scaled to fit.
const (
	maxImageWidth  = 600
	maxImageHeight = 400
)

// visitor turns the AST of one document into widgets. It holds no state
// beyond what is needed to resolve resources relative to the document.
type visitor struct {
	source      []byte
	contextPath string
	store       mdview.AssetStore
	onLink      mdview.LinkFunc
}

// renderBlock returns exactly one widget for a block node. Unrecognized
// kinds fall back to a label with the node's raw text.
func (v *visitor) renderBlock(node ast.Node) *mdview.Widget {
	switch n := node.(type) {
	case *ast.Heading:
		return v.renderHeading(n)
	case *ast.Paragraph:
		return v.renderParagraph(n)
	case *ast.TextBlock:
		// Tight list items carry their text in a TextBlock.
		return v.renderParagraph(n)
	case *ast.List:
		return v.renderList(n)
	case *ast.Blockquote:
		return v.renderQuote(n)
	case *ast.ThematicBreak:
		return &mdview.Widget{Kind: mdview.KindContainer, Classes: []string{mdview.ClassRule}}
	case *ast.FencedCodeBlock:
		return v.renderCodeBlock(n)
	case *ast.CodeBlock:
		return v.renderCodeBlock(n)
	case *extast.Table:
		return v.renderTable(n)
	default:
		return mdview.NewLabel(v.rawText(node), mdview.ClassBlock)
	}
}

func (v *visitor) renderHeading(h *ast.Heading) *mdview.Widget {
	return mdview.NewLabel(v.flatten(h.FirstChild()), mdview.ClassBlock, mdview.HeadingClass(h.Level))
}

// renderParagraph renders a paragraph whose only content is an image as
// the bare image, without a wrapping row.
func (v *visitor) renderParagraph(p ast.Node) *mdview.Widget {
	if img, ok := p.FirstChild().(*ast.Image); ok && img.NextSibling() == nil {
		w := v.renderImage(img)
		w.AddClass(mdview.ClassBlock)
		return w
	}
	row := &mdview.Widget{Kind: mdview.KindRow, Classes: []string{mdview.ClassBlock, mdview.ClassParagraph}}
	row.Add(v.renderInlines(p.FirstChild())...)
	return row
}

func (v *visitor) renderList(list *ast.List) *mdview.Widget {
	container := mdview.NewContainer(mdview.ClassBlock, mdview.ClassList)

	// Every ordered bullet shows the list's start number.
	bullet := "•"
	if list.IsOrdered() {
		bullet = fmt.Sprintf("%d.", list.Start)
	}

	for c := list.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		row := &mdview.Widget{Kind: mdview.KindRow, Classes: []string{mdview.ClassListItem}}
		content := mdview.NewContainer(mdview.ClassListContent)
		for sub := item.FirstChild(); sub != nil; sub = sub.NextSibling() {
			content.Add(v.renderBlock(sub))
		}
		row.Add(mdview.NewLabel(bullet, mdview.ClassBullet), content)
		container.Add(row)
	}
	return container
}

func (v *visitor) renderQuote(q *ast.Blockquote) *mdview.Widget {
	box := mdview.NewContainer(mdview.ClassBlock, mdview.ClassQuote)
	for c := q.FirstChild(); c != nil; c = c.NextSibling() {
		box.Add(v.renderBlock(c))
	}
	return box
}

func (v *visitor) renderCodeBlock(code ast.Node) *mdview.Widget {
	lines := mdview.NewContainer(mdview.ClassCode)
	for _, line := range splitLines(v.linesText(code)) {
		lines.Add(&mdview.Widget{
			Kind:       mdview.KindLabel,
			Text:       line,
			Classes:    []string{mdview.ClassCodeLine},
			WhiteSpace: mdview.WhiteSpaceNoWrap,
		})
	}
	scroll := &mdview.Widget{Kind: mdview.KindScroll}
	scroll.Add(lines)

	wrapper := mdview.NewContainer(mdview.ClassBlock, mdview.ClassCodeBlock)
	wrapper.Add(scroll)
	return wrapper
}

func (v *visitor) renderTable(table *extast.Table) *mdview.Widget {
	grid := mdview.NewContainer(mdview.ClassTable)
	for r := table.FirstChild(); r != nil; r = r.NextSibling() {
		var cellClass string
		switch r.(type) {
		case *extast.TableHeader:
			cellClass = mdview.ClassTableHeader
		case *extast.TableRow:
			cellClass = mdview.ClassTableCell
		default:
			continue
		}
		row := &mdview.Widget{Kind: mdview.KindRow, Classes: []string{mdview.ClassTableRow}}
		for c := r.FirstChild(); c != nil; c = c.NextSibling() {
			cell, ok := c.(*extast.TableCell)
			if !ok {
				continue
			}
			row.Add(mdview.NewLabel(v.cellText(cell), cellClass))
		}
		grid.Add(row)
	}

	scroll := &mdview.Widget{Kind: mdview.KindScroll, Classes: []string{mdview.ClassBlock, mdview.ClassTableScroll}}
	scroll.Add(grid)
	return scroll
}

// cellText flattens a table cell. Cells usually hold inlines directly;
// paragraph children are flattened and any other block contributes its
// raw text.
func (v *visitor) cellText(cell ast.Node) string {
	var b strings.Builder
	for c := cell.FirstChild(); c != nil; c = c.NextSibling() {
		switch n := c.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			b.WriteString(v.flatten(n.FirstChild()))
		default:
			if c.Type() == ast.TypeInline {
				// flatten consumes c and all of its following siblings.
				b.WriteString(v.flatten(c))
				return b.String()
			}
			b.WriteString(v.rawText(c))
		}
	}
	return b.String()
}

func (v *visitor) renderImage(img *ast.Image) *mdview.Widget {
	url := string(img.Destination)
	if url == "" {
		return mdview.NewLabel("")
	}
	if mdview.IsAnimatedImage(url) {
		return mdview.NewLabel(fmt.Sprintf("GIF images aren't supported in the viewer: %s", url), mdview.ClassWarning)
	}
	tex, err := v.resolveImage(url)
	if err != nil {
		return mdview.NewLabel(fmt.Sprintf("Image not found: %s", url), mdview.ClassWarning)
	}

	container := mdview.NewContainer(mdview.ClassImage)
	container.Add(&mdview.Widget{
		Kind:      mdview.KindImage,
		Texture:   tex,
		MaxWidth:  maxImageWidth,
		MaxHeight: maxImageHeight,
		ScaleMode: mdview.ScaleToFit,
	})
	if caption := v.flatten(img.FirstChild()); strings.TrimSpace(caption) != "" {
		container.Add(mdview.NewLabel(caption, mdview.ClassImageCaption))
	}
	return container
}

func (v *visitor) resolveImage(url string) (*mdview.Texture, error) {
	if v.store == nil {
		return nil, mdview.ErrAssetNotFound
	}
	return mdview.ResolveImage(v.store, url, v.contextPath)
}

// linesText joins the source lines of a block node.
func (v *visitor) linesText(node ast.Node) string {
	lines := node.Lines()
	if lines == nil {
		return ""
	}
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(v.source))
	}
	return b.String()
}

// rawText returns the source text of any node, used as the fallback for
// kinds without a dedicated rendering.
func (v *visitor) rawText(node ast.Node) string {
	if node.Type() != ast.TypeInline {
		if s := v.linesText(node); s != "" {
			return s
		}
	}
	if raw, ok := node.(*ast.RawHTML); ok {
		var b strings.Builder
		for i := 0; i < raw.Segments.Len(); i++ {
			seg := raw.Segments.At(i)
			b.Write(seg.Value(v.source))
		}
		return b.String()
	}
	return v.flatten(node.FirstChild())
}

// splitLines splits code text into physical lines. Text ending in a
// newline yields a trailing empty line.
func splitLines(text string) []string {
	var lines []string
	for rest := text; rest != ""; {
		i := strings.IndexAny(rest, "\r\n")
		if i < 0 {
			lines = append(lines, rest)
			break
		}
		lines = append(lines, rest[:i])
		if rest[i] == '\r' && i+1 < len(rest) && rest[i+1] == '\n' {
			i++
		}
		rest = rest[i+1:]
	}
	if strings.HasSuffix(text, "\n") || strings.HasSuffix(text, "\r") {
		lines = append(lines, "")
	}
	return lines
}
