package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/mdview"
)

// Styles maps a Theme and a Stylesheet to lipgloss styles for painting.
type Styles struct {
	sheet *mdview.Stylesheet

	Focus  lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Box is the block layout a stylesheet assigns to a widget.
type Box struct {
	PaddingLeft  int
	MarginBottom int
	BorderLeft   bool
}

// Indent is the number of columns the box takes from the left edge.
func (b Box) Indent() int {
	if b.BorderLeft {
		return b.PaddingLeft + 1
	}
	return b.PaddingLeft
}

// NewStyles creates Styles from a Theme. A nil sheet means the theme's
// default stylesheet.
func NewStyles(t mdview.Theme, sheet *mdview.Stylesheet) Styles {
	if sheet == nil {
		sheet = mdview.DefaultStylesheet(t)
	}
	return Styles{
		sheet:  sheet,
		Focus:  lipgloss.NewStyle().Background(ansiColor(t.Focus)).Reverse(true),
		Status: lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Error:  lipgloss.NewStyle().Foreground(ansiColor(t.Warning)),
	}
}

// WithSheet returns a copy of s whose rules are overlaid by sheet.
func (s Styles) WithSheet(sheet *mdview.Stylesheet) Styles {
	if sheet == nil {
		return s
	}
	s.sheet = s.sheet.Merge(sheet)
	return s
}

// Text applies the text rules of classes, in order, on top of base.
func (s Styles) Text(base lipgloss.Style, classes []string) lipgloss.Style {
	st := base
	for _, c := range classes {
		r, ok := s.sheet.Rule(c)
		if !ok {
			continue
		}
		if r.Foreground != "" {
			st = st.Foreground(lipgloss.Color(r.Foreground))
		}
		if r.Background != "" {
			st = st.Background(lipgloss.Color(r.Background))
		}
		if r.Bold {
			st = st.Bold(true)
		}
		if r.Italic {
			st = st.Italic(true)
		}
		if r.Underline {
			st = st.Underline(true)
		}
		if r.Faint {
			st = st.Faint(true)
		}
	}
	return st
}

// Box merges the layout rules of classes. Later classes win.
func (s Styles) Box(classes []string) Box {
	var b Box
	for _, c := range classes {
		r, ok := s.sheet.Rule(c)
		if !ok {
			continue
		}
		if r.PaddingLeft > 0 {
			b.PaddingLeft = r.PaddingLeft
		}
		if r.MarginBottom > 0 {
			b.MarginBottom = r.MarginBottom
		}
		if r.BorderLeft {
			b.BorderLeft = true
		}
	}
	return b
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
