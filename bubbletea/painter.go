package bubbletea

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/mdview"
	"github.com/rivo/uniseg"
)

// Placeholder cell size in pixels, used to size image boxes.
const (
	pixelsPerColumn = 8
	pixelsPerRow    = 32
)

// unbounded is the layout width given to the content of scroll widgets
// before it is clipped.
const unbounded = 1 << 12

// Frame is a painted widget tree.
type Frame struct {
	Lines []string
	// FocusLine is the first line showing the focused widget, or -1.
	FocusLine int
}

func (f Frame) String() string {
	return strings.Join(f.Lines, "\n")
}

// Painter lays a widget tree out as styled terminal text.
type Painter struct {
	styles Styles
	// Focus is highlighted when painted.
	Focus *mdview.Widget
}

// NewPainter creates a Painter with the given styles.
func NewPainter(styles Styles) *Painter {
	return &Painter{styles: styles}
}

// Paint lays root out within width columns. A stylesheet attached to
// root overlays the painter's styles.
func (p *Painter) Paint(root *mdview.Widget, width int) Frame {
	frame := Frame{FocusLine: -1}
	if root == nil {
		return frame
	}
	styles := p.styles.WithSheet(root.Stylesheet)
	pp := &painter{styles: styles, focus: p.Focus}
	lines := trimBlank(pp.paint(root, max(width, 1), lipgloss.NewStyle()))
	for i, l := range lines {
		frame.Lines = append(frame.Lines, l.text)
		if l.focus && frame.FocusLine < 0 {
			frame.FocusLine = i
		}
	}
	return frame
}

// painter is the state of one Paint call.
type painter struct {
	styles Styles
	focus  *mdview.Widget
}

func (p *painter) paint(w *mdview.Widget, width int, inherit lipgloss.Style) []line {
	style := p.styles.Text(inherit, w.Classes)
	box := p.styles.Box(w.Classes)
	inner := max(width-box.Indent(), 1)

	var lines []line
	switch w.Kind {
	case mdview.KindContainer:
		lines = p.paintContainer(w, inner, style)
	case mdview.KindRow:
		lines = p.paintRow(w, inner, style)
	case mdview.KindLabel, mdview.KindButton:
		lines = p.paintText(w, inner, style)
	case mdview.KindImage:
		lines = p.paintImage(w, inner, style)
	case mdview.KindScroll:
		lines = p.paintScroll(w, inner, style)
	case mdview.KindTextField:
		lines = p.paintTextField(w, inner, style)
	}
	return decorate(lines, box, style)
}

func (p *painter) paintContainer(w *mdview.Widget, width int, style lipgloss.Style) []line {
	switch {
	case w.HasClass(mdview.ClassRule) && len(w.Children) == 0:
		return []line{{text: style.Render(strings.Repeat("─", width))}}
	case w.HasClass(mdview.ClassTable):
		return p.paintTable(w, style)
	}
	var lines []line
	for _, c := range w.Children {
		lines = append(lines, p.paint(c, width, style)...)
	}
	return trimBlank(lines)
}

// paintRow flows inline children into wrapped lines. Block children
// interrupt the flow and are stacked in place.
func (p *painter) paintRow(w *mdview.Widget, width int, style lipgloss.Style) []line {
	if w.HasClass(mdview.ClassListItem) {
		return p.paintListItem(w, width, style)
	}
	if w.HasClass(mdview.ClassTableRow) {
		return p.paintTable(&mdview.Widget{Children: []*mdview.Widget{w}}, style)
	}
	var (
		lines  []line
		tokens []token
	)
	flush := func() {
		if len(tokens) > 0 {
			lines = append(lines, wrapTokens(tokens, width)...)
			tokens = nil
		}
	}
	for _, c := range w.Children {
		switch c.Kind {
		case mdview.KindLabel, mdview.KindButton:
			tokens = append(tokens, p.tokens(c, style)...)
		default:
			flush()
			lines = append(lines, p.paint(c, width, style)...)
		}
	}
	flush()
	return lines
}

// paintListItem hangs the item content off its bullet.
func (p *painter) paintListItem(w *mdview.Widget, width int, style lipgloss.Style) []line {
	var (
		bullet  string
		bulletW int
		content []line
	)
	for i, c := range w.Children {
		if i == 0 && c.HasClass(mdview.ClassBullet) {
			text := clean(c.Text)
			bullet = p.styles.Text(style, c.Classes).Render(text)
			bulletW = uniseg.StringWidth(text) + 1
			continue
		}
		content = append(content, p.paint(c, max(width-bulletW, 1), style)...)
	}
	content = trimBlank(content)
	if len(content) == 0 {
		return []line{{text: bullet}}
	}
	indent := strings.Repeat(" ", bulletW)
	for i := range content {
		if i == 0 && bulletW > 0 {
			content[i].text = bullet + " " + content[i].text
			continue
		}
		content[i].text = indent + content[i].text
	}
	return content
}

func (p *painter) paintText(w *mdview.Widget, width int, style lipgloss.Style) []line {
	switch w.WhiteSpace {
	case mdview.WhiteSpaceNoWrap, mdview.WhiteSpacePre:
		st := p.styles.Text(style, w.Classes)
		if w == p.focus {
			st = p.styles.Focus.Inherit(st)
		}
		var lines []line
		for _, s := range strings.Split(clean(w.Text), "\n") {
			lines = append(lines, line{text: clip(st.Render(s), width), focus: w == p.focus})
		}
		return lines
	}
	return wrapTokens(p.tokens(w, style), width)
}

// tokens converts an inline label or button into wrap tokens.
func (p *painter) tokens(w *mdview.Widget, style lipgloss.Style) []token {
	st := p.styles.Text(style, w.Classes)
	focus := w == p.focus
	if focus {
		st = p.styles.Focus.Inherit(st)
	}
	pre := w.WhiteSpace != mdview.WhiteSpaceNormal
	return tokenize(fragment{text: clean(w.Text), style: st, focus: focus}, pre)
}

// paintScroll lays content out without a width limit and clips it.
func (p *painter) paintScroll(w *mdview.Widget, width int, style lipgloss.Style) []line {
	var lines []line
	for _, c := range w.Children {
		lines = append(lines, p.paint(c, unbounded, style)...)
	}
	for i := range lines {
		lines[i].text = clip(lines[i].text, width)
	}
	return trimBlank(lines)
}

// paintTable aligns the cells of every row into columns. A header row is
// followed by a separator.
func (p *painter) paintTable(w *mdview.Widget, style lipgloss.Style) []line {
	type cell struct {
		text  string
		style lipgloss.Style
	}
	var (
		rows   [][]cell
		header []bool
		widths []int
	)
	for _, r := range w.Children {
		var row []cell
		isHeader := false
		for i, c := range r.Children {
			text := strings.ReplaceAll(clean(c.Text), "\n", " ")
			row = append(row, cell{text: text, style: p.styles.Text(p.styles.Text(style, r.Classes), c.Classes)})
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], uniseg.StringWidth(text))
			isHeader = isHeader || c.HasClass(mdview.ClassTableHeader)
		}
		rows = append(rows, row)
		header = append(header, isHeader)
	}

	sep := style.Render(" │ ")
	var lines []line
	for i, row := range rows {
		parts := make([]string, len(widths))
		for j := range widths {
			text := ""
			st := style
			if j < len(row) {
				text, st = row[j].text, row[j].style
			}
			parts[j] = st.Render(pad(text, widths[j]))
		}
		lines = append(lines, line{text: strings.Join(parts, sep)})
		if header[i] {
			rules := make([]string, len(widths))
			for j, cw := range widths {
				rules[j] = strings.Repeat("─", cw)
			}
			lines = append(lines, line{text: style.Render(strings.Join(rules, "─┼─"))})
		}
	}
	return lines
}

// paintImage draws a placeholder box sized like the fitted texture.
func (p *painter) paintImage(w *mdview.Widget, width int, style lipgloss.Style) []line {
	label := "image"
	cols, rows := 12, 1
	if tex := w.Texture; tex != nil {
		pw, ph := tex.Width, tex.Height
		if w.ScaleMode == mdview.ScaleStretch && w.MaxWidth > 0 && w.MaxHeight > 0 {
			pw, ph = w.MaxWidth, w.MaxHeight
		} else {
			pw, ph = mdview.FitSize(pw, ph, w.MaxWidth, w.MaxHeight)
		}
		label = fmt.Sprintf("%s %dx%d", path.Base(tex.Path), tex.Width, tex.Height)
		cols = max(pw/pixelsPerColumn, 1)
		rows = max(ph/pixelsPerRow, 1)
	}
	cols = max(min(cols, width-2), 1)
	box := style.
		Border(lipgloss.RoundedBorder()).
		Width(cols).
		Height(rows).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(clip(clean(label), cols))
	return toLines(box)
}

// paintTextField draws read-only text verbatim inside a border.
func (p *painter) paintTextField(w *mdview.Widget, width int, style lipgloss.Style) []line {
	var body []string
	for _, s := range strings.Split(clean(w.Text), "\n") {
		body = append(body, clip(s, max(width-2, 1)))
	}
	box := style.
		Border(lipgloss.NormalBorder()).
		Width(max(width-2, 1)).
		Render(strings.Join(body, "\n"))
	return toLines(box)
}

func toLines(s string) []line {
	var lines []line
	for _, l := range strings.Split(s, "\n") {
		lines = append(lines, line{text: l})
	}
	return lines
}

// decorate applies a box's left border, padding and bottom margin.
func decorate(lines []line, box Box, style lipgloss.Style) []line {
	if box.Indent() > 0 {
		prefix := strings.Repeat(" ", box.PaddingLeft)
		if box.BorderLeft {
			prefix = style.Render("│") + prefix
		}
		for i := range lines {
			lines[i].text = prefix + lines[i].text
		}
	}
	for range box.MarginBottom {
		lines = append(lines, line{})
	}
	return lines
}

// trimBlank drops trailing empty lines so margins do not stack at the
// end of a container.
func trimBlank(lines []line) []line {
	for len(lines) > 0 && lines[len(lines)-1].text == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
