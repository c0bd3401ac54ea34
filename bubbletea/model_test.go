package bubbletea_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/mdview"
	bt "github.com/fwojciec/mdview/bubbletea"
	"github.com/fwojciec/mdview/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// followFunc adapts a function to bt.Follower.
type followFunc func(url, contextPath string) mdview.LinkTarget

func (f followFunc) Follow(url, contextPath string) mdview.LinkTarget {
	return f(url, contextPath)
}

// linkDoc builds a document whose links push to q.
func linkDoc(q *bt.LinkQueue, path, title string, urls ...string) *mdview.Widget {
	root := doc(mdview.NewLabel(title, mdview.ClassBlock, mdview.HeadingClass(1)))
	for _, u := range urls {
		btn := link(u)
		btn.OnClick = func() { q.Push(u, path) }
		root.Add(para(mdview.NewLabel("go to "), btn))
	}
	return root
}

// resolveByKind resolves the test URLs used in this file.
func resolveByKind(url, _ string) mdview.LinkTarget {
	switch url {
	case "guide.md":
		return mdview.LinkTarget{Kind: mdview.LinkAsset, URL: url, Path: "Assets/guide.md"}
	case "logo.png":
		return mdview.LinkTarget{Kind: mdview.LinkAsset, URL: url, Path: "Assets/logo.png"}
	case "https://example.com":
		return mdview.LinkTarget{Kind: mdview.LinkExternal, URL: url}
	case "#top":
		return mdview.LinkTarget{Kind: mdview.LinkAnchor, URL: url}
	default:
		return mdview.LinkTarget{Kind: mdview.LinkNotFound, URL: url}
	}
}

func newViewer(t *testing.T, load bt.DocumentFunc, urls ...string) bt.Model {
	t.Helper()
	q := bt.NewLinkQueue()
	m := bt.New(
		bt.Document{Path: "Assets/index.md", Root: linkDoc(q, "Assets/index.md", "Home", urls...)},
		mdview.DefaultTheme(),
		bt.WithLinkQueue(q),
		bt.WithFollower(followFunc(resolveByKind)),
		bt.WithLoader(load),
	)
	return updateModel(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

func press(t *testing.T, m bt.Model, keys ...tea.KeyMsg) bt.Model {
	t.Helper()
	for _, k := range keys {
		m = updateModel(t, m, k)
	}
	return m
}

var (
	tab       = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab  = tea.KeyMsg{Type: tea.KeyShiftTab}
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
	quit      = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
)

func noLoad(string) (*mdview.Widget, error) {
	return nil, errors.New("unexpected load")
}

func TestNew(t *testing.T) {
	t.Parallel()

	m := bt.New(bt.Document{Path: "Assets/a.md", Root: doc()}, mdview.DefaultTheme())

	assert.Equal(t, "Assets/a.md", m.Document().Path)
	assert.Nil(t, m.Focused())
	assert.Zero(t, m.Depth())
	assert.NoError(t, m.Err())
	assert.Equal(t, "Initializing...", m.View())
}

func TestModel_Update(t *testing.T) {
	t.Parallel()

	t.Run("window size initializes viewport", func(t *testing.T) {
		t.Parallel()
		m := newViewer(t, noLoad)

		assert.Equal(t, 80, m.Viewport.Width)
		assert.Equal(t, 23, m.Viewport.Height)
		view := m.View()
		assert.Contains(t, view, "Home")
		assert.Contains(t, view, "Assets/index.md")
		assert.Contains(t, view, "tab next link")
	})

	t.Run("resize updates viewport dimensions", func(t *testing.T) {
		t.Parallel()
		m := newViewer(t, noLoad)
		m = updateModel(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

		assert.Equal(t, 120, m.Viewport.Width)
		assert.Equal(t, 39, m.Viewport.Height)
	})

	t.Run("tab cycles link focus forward and wraps", func(t *testing.T) {
		t.Parallel()
		m := newViewer(t, noLoad, "guide.md", "https://example.com")

		m = press(t, m, tab)
		require.NotNil(t, m.Focused())
		assert.Equal(t, "guide.md", m.Focused().Text)

		m = press(t, m, tab)
		assert.Equal(t, "https://example.com", m.Focused().Text)

		m = press(t, m, tab)
		assert.Equal(t, "guide.md", m.Focused().Text)
	})

	t.Run("shift-tab cycles backward from the last link", func(t *testing.T) {
		t.Parallel()
		m := newViewer(t, noLoad, "guide.md", "https://example.com")

		m = press(t, m, shiftTab)
		assert.Equal(t, "https://example.com", m.Focused().Text)

		m = press(t, m, shiftTab)
		assert.Equal(t, "guide.md", m.Focused().Text)
	})

	t.Run("tab without links reports it", func(t *testing.T) {
		t.Parallel()
		m := press(t, newViewer(t, noLoad), tab)

		assert.Nil(t, m.Focused())
		assert.Equal(t, "No links in this document", m.Status())
	})

	t.Run("enter without focus reports it", func(t *testing.T) {
		t.Parallel()
		m := press(t, newViewer(t, noLoad, "guide.md"), enter)

		assert.Equal(t, "No link selected", m.Status())
	})

	t.Run("enter on a markdown asset opens it", func(t *testing.T) {
		t.Parallel()
		var loaded string
		load := func(path string) (*mdview.Widget, error) {
			loaded = path
			return doc(para(mdview.NewLabel("Guide page"))), nil
		}
		m := press(t, newViewer(t, load, "guide.md"), tab, enter)

		assert.Equal(t, "Assets/guide.md", loaded)
		assert.Equal(t, "Assets/guide.md", m.Document().Path)
		assert.Equal(t, 1, m.Depth())
		assert.Nil(t, m.Focused())
		assert.Contains(t, m.View(), "Guide page")
	})

	t.Run("backspace returns to the previous document", func(t *testing.T) {
		t.Parallel()
		load := func(string) (*mdview.Widget, error) {
			return doc(para(mdview.NewLabel("Guide page"))), nil
		}
		m := press(t, newViewer(t, load, "guide.md"), tab, enter, backspace)

		assert.Equal(t, "Assets/index.md", m.Document().Path)
		assert.Zero(t, m.Depth())
		assert.Contains(t, m.View(), "Home")
	})

	t.Run("backspace without history reports it", func(t *testing.T) {
		t.Parallel()
		m := press(t, newViewer(t, noLoad), backspace)

		assert.Equal(t, "No previous document", m.Status())
	})

	t.Run("load failure keeps the current document", func(t *testing.T) {
		t.Parallel()
		load := func(string) (*mdview.Widget, error) {
			return nil, mdview.ErrAssetNotFound
		}
		m := press(t, newViewer(t, load, "guide.md"), tab, enter)

		assert.ErrorIs(t, m.Err(), mdview.ErrAssetNotFound)
		assert.Equal(t, "Assets/index.md", m.Document().Path)
		assert.Zero(t, m.Depth())
		assert.Contains(t, m.View(), "Error:")
	})

	t.Run("link outcomes are reported in the status line", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			url    string
			status string
		}{
			{"https://example.com", "Opened https://example.com"},
			{"#top", "Anchor links aren't supported in the viewer"},
			{"logo.png", "Selected Assets/logo.png"},
			{"missing.md", "Link target not found: missing.md"},
		}
		for _, tt := range tests {
			m := press(t, newViewer(t, noLoad, tt.url), tab, enter)
			assert.Equal(t, tt.status, m.Status(), tt.url)
			assert.Contains(t, m.View(), tt.status, tt.url)
		}
	})

	t.Run("navigation keys clear the status", func(t *testing.T) {
		t.Parallel()
		m := press(t, newViewer(t, noLoad, "#top"), tab, enter)
		require.NotEmpty(t, m.Status())

		m = press(t, m, tab)
		assert.Empty(t, m.Status())
	})

	t.Run("q quits", func(t *testing.T) {
		t.Parallel()
		m := newViewer(t, noLoad)
		_, cmd := m.Update(quit)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})
}

func TestModelWithNavigator(t *testing.T) {
	t.Parallel()

	store := mock.NewAssetStore("/project", nil, "Assets/docs/guide.md")
	var opened []string
	nav := &mdview.Navigator{
		Store: store,
		Opener: &mock.Opener{OpenFn: func(url string) error {
			opened = append(opened, url)
			return nil
		}},
		Logger: discardLogger(),
	}

	q := bt.NewLinkQueue()
	root := linkDoc(q, "Assets/docs/index.md", "Docs", "guide.md", "https://example.com")
	m := bt.New(
		bt.Document{Path: "Assets/docs/index.md", Root: root},
		mdview.DefaultTheme(),
		bt.WithLinkQueue(q),
		bt.WithFollower(nav),
		bt.WithLoader(func(path string) (*mdview.Widget, error) {
			return linkDoc(q, path, "Guide"), nil
		}),
	)
	m = updateModel(t, m, tea.WindowSizeMsg{Width: 60, Height: 10})

	m = press(t, m, shiftTab, enter)
	assert.Equal(t, []string{"https://example.com"}, opened)
	assert.Equal(t, "Assets/docs/index.md", m.Document().Path)

	m = press(t, m, shiftTab, enter)
	assert.Equal(t, "Assets/docs/guide.md", m.Document().Path)
	assert.Zero(t, q.Len())
}

func TestModelTeatest(t *testing.T) {
	t.Parallel()

	load := func(string) (*mdview.Widget, error) {
		return doc(para(mdview.NewLabel("Guide page"))), nil
	}
	q := bt.NewLinkQueue()
	m := bt.New(
		bt.Document{Path: "Assets/index.md", Root: linkDoc(q, "Assets/index.md", "Home", "guide.md")},
		mdview.DefaultTheme(),
		bt.WithLinkQueue(q),
		bt.WithFollower(followFunc(resolveByKind)),
		bt.WithLoader(load),
	)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Home")) && bytes.Contains(out, []byte("tab next link"))
	}, teatest.WithDuration(5*time.Second))

	tm.Send(tab)
	tm.Send(enter)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Guide page"))
	}, teatest.WithDuration(5*time.Second))

	tm.Send(quit)

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	final, ok := fm.(bt.Model)
	require.True(t, ok)
	assert.Equal(t, "Assets/guide.md", final.Document().Path)
	assert.Equal(t, 1, final.Depth())
}
