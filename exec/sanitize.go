package exec

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// maxMessageLen caps sanitized opener diagnostics so a chatty handler
// cannot flood the status line.
const maxMessageLen = 200

// Sanitize turns opener diagnostic output into a single line suitable
// for an error message. ANSI escape sequences and control characters
// are removed and whitespace runs, newlines included, collapse to one
// space.
func Sanitize(s string) string {
	s = ansi.Strip(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteRune(' ')
		case r > 0x1F && r != 0x7F:
			b.WriteRune(r)
		}
	}
	out := strings.Join(strings.Fields(b.String()), " ")
	if r := []rune(out); len(r) > maxMessageLen {
		out = string(r[:maxMessageLen-1]) + "…"
	}
	return out
}
