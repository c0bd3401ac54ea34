package bubbletea

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	rw "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// fragment is a run of text painted with one style.
type fragment struct {
	text  string
	style lipgloss.Style
	focus bool
}

// token is a unit of an inline run: a word piece, a collapsible space or
// a forced line break.
type token struct {
	fragment
	space bool
	brk   bool
}

// word is a sequence of adjacent fragments with no space between them.
type word struct {
	parts []fragment
	width int
}

// line is one painted row of output.
type line struct {
	text  string
	focus bool
}

// tokenize splits fragment text into word pieces and spaces. Runs of
// whitespace collapse into a single space unless pre is set, in which
// case each space is kept and newlines become breaks.
func tokenize(f fragment, pre bool) []token {
	var out []token
	var piece []rune
	flush := func() {
		if len(piece) > 0 {
			out = append(out, token{fragment: fragment{text: string(piece), style: f.style, focus: f.focus}})
			piece = nil
		}
	}
	for _, r := range f.text {
		switch {
		case r == '\n':
			flush()
			if pre {
				out = append(out, token{brk: true})
			} else {
				out = appendSpace(out, f)
			}
		case unicode.IsSpace(r):
			flush()
			if pre {
				out = append(out, token{fragment: fragment{text: " ", style: f.style, focus: f.focus}})
			} else {
				out = appendSpace(out, f)
			}
		default:
			piece = append(piece, r)
		}
	}
	flush()
	return out
}

func appendSpace(out []token, f fragment) []token {
	if n := len(out); n > 0 && out[n-1].space {
		return out
	}
	return append(out, token{fragment: fragment{text: " ", style: f.style, focus: f.focus}, space: true})
}

// wrapTokens fills lines up to width cells. Words wider than a line are
// split at grapheme boundaries. Spaces at a wrap point are dropped.
func wrapTokens(tokens []token, width int) []line {
	f := &filler{width: max(width, 1)}
	var w word
	for _, t := range tokens {
		switch {
		case t.brk:
			f.place(w)
			w = word{}
			f.emit()
		case t.space:
			f.place(w)
			w = word{}
			sp := t.fragment
			f.pending = &sp
		default:
			w.parts = append(w.parts, t.fragment)
			w.width += uniseg.StringWidth(t.text)
		}
	}
	f.place(w)
	if len(f.cur) > 0 || len(f.lines) == 0 {
		f.emit()
	}
	return f.lines
}

type filler struct {
	width   int
	lines   []line
	cur     []fragment
	curW    int
	pending *fragment // space waiting for the next word
}

func (f *filler) emit() {
	f.lines = append(f.lines, joinFragments(f.cur))
	f.cur, f.curW, f.pending = nil, 0, nil
}

func (f *filler) place(w word) {
	if len(w.parts) == 0 {
		return
	}
	gap := 0
	if f.pending != nil && len(f.cur) > 0 {
		gap = 1
	}
	switch {
	case f.curW+gap+w.width <= f.width:
		if gap == 1 {
			f.cur = append(f.cur, *f.pending)
			f.curW++
		}
		f.pending = nil
		f.cur = append(f.cur, w.parts...)
		f.curW += w.width
	case w.width <= f.width:
		f.emit()
		f.cur = append(f.cur, w.parts...)
		f.curW = w.width
	default:
		if len(f.cur) > 0 {
			f.emit()
		}
		f.pending = nil
		for _, p := range w.parts {
			f.split(p)
		}
	}
}

// split appends a fragment grapheme by grapheme, breaking lines as they
// fill up.
func (f *filler) split(p fragment) {
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			f.cur = append(f.cur, fragment{text: b.String(), style: p.style, focus: p.focus})
			b.Reset()
		}
	}
	g := uniseg.NewGraphemes(p.text)
	for g.Next() {
		cw := g.Width()
		if f.curW+cw > f.width && f.curW > 0 {
			flush()
			f.emit()
		}
		b.WriteString(g.Str())
		f.curW += cw
	}
	flush()
}

func joinFragments(parts []fragment) line {
	var b strings.Builder
	var focus bool
	for _, p := range parts {
		b.WriteString(p.style.Render(p.text))
		focus = focus || p.focus
	}
	return line{text: b.String(), focus: focus}
}

// clip truncates a painted line to width cells.
func clip(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// pad fills plain text with spaces to width cells.
func pad(s string, width int) string {
	return rw.FillRight(s, width)
}

// clean removes escape sequences and control characters from document
// text so it cannot drive the terminal. Tabs expand to four spaces.
func clean(s string) string {
	s = ansi.Strip(s)
	if !strings.ContainsFunc(s, unicode.IsControl) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\t':
			b.WriteString("    ")
		case r == '\n':
			b.WriteRune(r)
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
