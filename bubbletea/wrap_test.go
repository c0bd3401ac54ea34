package bubbletea_test

import (
	"testing"

	bt "github.com/fwojciec/mdview/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		width int
		pre   bool
		want  []string
	}{
		{"fits on one line", "hello world", 20, false, []string{"hello world"}},
		{"wraps at word boundaries", "the quick brown fox jumps", 10, false, []string{"the quick", "brown fox", "jumps"}},
		{"collapses whitespace", "a  \t b\nc", 20, false, []string{"a b c"}},
		{"splits words wider than the line", "abcdefghij", 4, false, []string{"abcd", "efgh", "ij"}},
		{"measures wide characters", "日本語テキスト", 6, false, []string{"日本語", "テキス", "ト"}},
		{"pre keeps spaces and newlines", "a  b\nc", 10, true, []string{"a  b", "c"}},
		{"empty text yields one empty line", "", 10, false, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, bt.WrapText(tt.text, tt.width, tt.pre))
		})
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	t.Run("strips escape sequences", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "red", bt.Clean("\x1b[31mred\x1b[0m"))
	})

	t.Run("drops control characters and expands tabs", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a    b\nc", bt.Clean("a\tb\a\nc\x00"))
	})

	t.Run("leaves plain text alone", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "plain ✓", bt.Clean("plain ✓"))
	})
}
