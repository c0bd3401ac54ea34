package bubbletea

import "github.com/charmbracelet/lipgloss"

// WrapText exposes the inline wrapper for tests. Pre keeps whitespace
// and newlines.
func WrapText(text string, width int, pre bool) []string {
	var out []string
	for _, l := range wrapTokens(tokenize(fragment{text: text, style: lipgloss.NewStyle()}, pre), width) {
		out = append(out, l.text)
	}
	return out
}

// Clean exposes text sanitizing for tests.
func Clean(s string) string {
	return clean(s)
}
