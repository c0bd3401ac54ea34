// Package bubbletea provides a Bubble Tea viewer for rendered Markdown
// widget trees and the lipgloss painter it draws with.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/mdview"
)

// Run creates and runs the Bubble Tea viewer program. It blocks until the
// program exits. The context is used for graceful shutdown: when it is
// cancelled, the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// Document is a rendered Markdown document and its project-relative path.
type Document struct {
	Path string
	Root *mdview.Widget
}

// DocumentFunc loads and renders the document at a project-relative
// path.
type DocumentFunc func(path string) (*mdview.Widget, error)

// Follower resolves an activated link and performs its side effects.
type Follower interface {
	Follow(url, contextPath string) mdview.LinkTarget
}

var _ Follower = (*mdview.Navigator)(nil)

type activation struct {
	url         string
	contextPath string
}

// LinkQueue collects link activations from rendered buttons so the
// viewer can act on them once the click returns. Pass Push to the
// renderer as its link function.
type LinkQueue struct {
	pending []activation
}

// NewLinkQueue creates an empty LinkQueue.
func NewLinkQueue() *LinkQueue {
	return &LinkQueue{}
}

// Push records an activation. It satisfies mdview.LinkFunc.
func (q *LinkQueue) Push(url, contextPath string) {
	q.pending = append(q.pending, activation{url: url, contextPath: contextPath})
}

// Len returns the number of pending activations.
func (q *LinkQueue) Len() int {
	return len(q.pending)
}

func (q *LinkQueue) drain() []activation {
	out := q.pending
	q.pending = nil
	return out
}
