package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/mdview"
)

var _ tea.Model = Model{}

const statusHeight = 1

// Model is the Bubble Tea model for the Markdown viewer.
type Model struct {
	// Viewport is the scrollable document area. Exported for test access.
	Viewport viewport.Model

	keys    KeyMap
	styles  Styles
	painter *Painter
	load    DocumentFunc
	follow  Follower
	links   *LinkQueue

	doc     Document
	history []Document
	buttons []*mdview.Widget
	focus   int // index into buttons, -1 = none

	status string
	err    error
	ready  bool
}

// Option configures a Model.
type Option func(*Model)

// WithLoader sets how linked Markdown documents are loaded. Without it
// Markdown links are treated like any other asset.
func WithLoader(fn DocumentFunc) Option {
	return func(m *Model) { m.load = fn }
}

// WithFollower sets the link resolver run on activation.
func WithFollower(f Follower) Option {
	return func(m *Model) { m.follow = f }
}

// WithLinkQueue sets the queue the document's link buttons push to.
func WithLinkQueue(q *LinkQueue) Option {
	return func(m *Model) { m.links = q }
}

// WithKeyMap overrides DefaultKeyMap.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// New creates a viewer for doc.
func New(doc Document, theme mdview.Theme, opts ...Option) Model {
	styles := NewStyles(theme, nil)
	m := Model{
		keys:    DefaultKeyMap(),
		styles:  styles,
		painter: NewPainter(styles),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m.setDocument(doc)
}

// Document returns the document being viewed.
func (m Model) Document() Document { return m.doc }

// Focused returns the focused link button, or nil.
func (m Model) Focused() *mdview.Widget {
	if m.focus < 0 || m.focus >= len(m.buttons) {
		return nil
	}
	return m.buttons[m.focus]
}

// Status returns the last status message.
func (m Model) Status() string { return m.status }

// Err returns the last error, if any.
func (m Model) Err() error { return m.err }

// Depth returns the number of documents in the back history.
func (m Model) Depth() int { return len(m.history) }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	vpHeight := max(msg.Height-statusHeight, 1)
	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	return m.refresh()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m = m.clearStatus().cycleFocus(1)
		return m.refresh(), nil
	case key.Matches(msg, m.keys.Prev):
		m = m.clearStatus().cycleFocus(-1)
		return m.refresh(), nil
	case key.Matches(msg, m.keys.Activate):
		return m.clearStatus().activate(), nil
	case key.Matches(msg, m.keys.Back):
		return m.clearStatus().back(), nil
	}
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) clearStatus() Model {
	m.status = ""
	m.err = nil
	return m
}

// cycleFocus moves link focus by step, wrapping around.
func (m Model) cycleFocus(step int) Model {
	n := len(m.buttons)
	if n == 0 {
		m.status = "No links in this document"
		return m
	}
	switch {
	case m.focus < 0 && step > 0:
		m.focus = 0
	case m.focus < 0:
		m.focus = n - 1
	default:
		m.focus = ((m.focus+step)%n + n) % n
	}
	return m
}

func (m Model) activate() Model {
	btn := m.Focused()
	if btn == nil {
		m.status = "No link selected"
		return m
	}
	if !btn.Activate() {
		m.status = "Link has no action"
		return m
	}
	if m.links == nil {
		return m
	}
	for _, a := range m.links.drain() {
		m = m.followLink(a)
	}
	return m
}

func (m Model) followLink(a activation) Model {
	if m.follow == nil {
		m.status = "Link: " + a.url
		return m
	}
	target := m.follow.Follow(a.url, a.contextPath)
	switch target.Kind {
	case mdview.LinkExternal:
		m.status = "Opened " + a.url
	case mdview.LinkAnchor:
		m.status = "Anchor links aren't supported in the viewer"
	case mdview.LinkAsset:
		if m.load != nil && mdview.IsMarkdownPath(target.Path) {
			return m.open(target.Path)
		}
		m.status = "Selected " + target.Path
	default:
		m.status = "Link target not found: " + a.url
	}
	return m
}

// open renders path and pushes the current document onto the history.
func (m Model) open(path string) Model {
	root, err := m.load(path)
	if err != nil {
		m.err = fmt.Errorf("open %s: %w", path, err)
		return m
	}
	m.history = append(m.history, m.doc)
	return m.setDocument(Document{Path: path, Root: root})
}

func (m Model) back() Model {
	n := len(m.history)
	if n == 0 {
		m.status = "No previous document"
		return m
	}
	prev := m.history[n-1]
	m.history = m.history[:n-1]
	return m.setDocument(prev)
}

func (m Model) setDocument(doc Document) Model {
	m.doc = doc
	m.buttons = doc.Root.Buttons()
	m.focus = -1
	if m.ready {
		m.Viewport.GotoTop()
	}
	return m.refresh()
}

// refresh repaints the document and keeps the focused link in view.
func (m Model) refresh() Model {
	if !m.ready {
		return m
	}
	m.painter.Focus = m.Focused()
	frame := m.painter.Paint(m.doc.Root, m.Viewport.Width)
	m.Viewport.SetContent(frame.String())
	if line := frame.FocusLine; line >= 0 {
		switch {
		case line < m.Viewport.YOffset:
			m.Viewport.SetYOffset(line)
		case line >= m.Viewport.YOffset+m.Viewport.Height:
			m.Viewport.SetYOffset(line - m.Viewport.Height + 1)
		}
	}
	return m
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.status != "" {
		return m.styles.Status.Render(m.status)
	}
	parts := []string{m.doc.Path}
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Status.Render(strings.Join(parts, " · "))
}
