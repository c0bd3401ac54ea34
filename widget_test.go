package mdview_test

import (
	"testing"

	"github.com/fwojciec/mdview"
	"github.com/stretchr/testify/assert"
)

func TestWidget(t *testing.T) {
	t.Parallel()

	t.Run("add class skips duplicates", func(t *testing.T) {
		t.Parallel()
		w := mdview.NewLabel("x", mdview.ClassBlock)
		w.AddClass(mdview.ClassBlock, mdview.ClassParagraph)
		assert.Equal(t, []string{mdview.ClassBlock, mdview.ClassParagraph}, w.Classes)
		assert.True(t, w.HasClass(mdview.ClassParagraph))
		assert.False(t, w.HasClass(mdview.ClassList))
	})

	t.Run("walk visits parents before children", func(t *testing.T) {
		t.Parallel()
		root := mdview.NewContainer(mdview.ClassRoot)
		a := mdview.NewLabel("a")
		b := mdview.NewContainer()
		c := mdview.NewLabel("c")
		b.Add(c)
		root.Add(a, b)

		var texts []string
		root.Walk(func(w *mdview.Widget) bool {
			texts = append(texts, w.Kind.String()+":"+w.Text)
			return true
		})
		assert.Equal(t, []string{"container:", "label:a", "container:", "label:c"}, texts)
	})

	t.Run("walk can skip children", func(t *testing.T) {
		t.Parallel()
		root := mdview.NewContainer()
		root.Add(mdview.NewLabel("hidden"))
		n := 0
		root.Walk(func(*mdview.Widget) bool {
			n++
			return false
		})
		assert.Equal(t, 1, n)
	})

	t.Run("find all by class", func(t *testing.T) {
		t.Parallel()
		root := mdview.NewContainer()
		root.Add(mdview.NewLabel("1", mdview.ClassBullet), mdview.NewLabel("x"), mdview.NewLabel("2", mdview.ClassBullet))
		got := root.FindAll(mdview.ClassBullet)
		assert.Len(t, got, 2)
		assert.Equal(t, "2", got[1].Text)
	})

	t.Run("activate runs click action", func(t *testing.T) {
		t.Parallel()
		clicked := false
		btn := &mdview.Widget{Kind: mdview.KindButton, OnClick: func() { clicked = true }}
		root := mdview.NewContainer()
		root.Add(mdview.NewLabel("x"), btn)
		assert.Equal(t, []*mdview.Widget{btn}, root.Buttons())
		assert.True(t, btn.Activate())
		assert.True(t, clicked)
		assert.False(t, mdview.NewLabel("x").Activate())
	})
}

func TestFitSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{"inside bounds", 100, 50, 600, 400, 100, 50},
		{"too wide", 1200, 400, 600, 400, 600, 200},
		{"too tall", 400, 800, 600, 400, 200, 400},
		{"both", 1200, 1600, 600, 400, 300, 400},
		{"unbounded", 5000, 10, 0, 0, 5000, 10},
		{"empty image", 0, 10, 600, 400, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, h := mdview.FitSize(tt.w, tt.h, tt.maxW, tt.maxH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}
