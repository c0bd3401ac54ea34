package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/mdview"
	bt "github.com/fwojciec/mdview/bubbletea"
	mdexec "github.com/fwojciec/mdview/exec"
	"github.com/fwojciec/mdview/goldmark"
	mdjson "github.com/fwojciec/mdview/json"
	"github.com/fwojciec/mdview/yaml"
)

// ViewCmd implements the 'view' command.
type ViewCmd struct {
	Path string `arg:"" help:"Document to view, project-relative or a file path."`
}

// Run executes the view command.
func (cmd *ViewCmd) Run(a *app) error {
	path, err := a.documentPath(cmd.Path)
	if err != nil {
		return err
	}

	queue := bt.NewLinkQueue()
	r := a.renderer(goldmark.WithLinkFunc(queue.Push))
	load := func(p string) (*mdview.Widget, error) {
		return a.load(r, p)
	}
	root, err := load(path)
	if err != nil {
		return err
	}

	nav := &mdview.Navigator{
		Store:  a.store,
		Opener: mdexec.NewOpener(),
		Logger: a.logger,
	}
	m := bt.New(bt.Document{Path: path, Root: root}, a.theme,
		bt.WithLoader(load),
		bt.WithFollower(nav),
		bt.WithLinkQueue(queue),
	)
	if err := bt.Run(a.ctx, m); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Path   string `arg:"" help:"Document to render, project-relative or a file path."`
	Width  int    `short:"w" help:"Layout width in columns." default:"80"`
	Format string `short:"f" help:"Output format: text, json." default:"text" enum:"text,json"`
}

// Run executes the render command.
func (cmd *RenderCmd) Run(a *app) error {
	path, err := a.documentPath(cmd.Path)
	if err != nil {
		return err
	}
	if cmd.Width < 1 {
		return fmt.Errorf("width must be positive, got %d", cmd.Width)
	}
	root, err := a.load(a.renderer(), path)
	if err != nil {
		return err
	}

	switch cmd.Format {
	case "json":
		data, err := mdjson.MarshalWidget(root)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(a.stdout, "%s\n", data)
		return err
	default:
		frame := bt.NewPainter(bt.NewStyles(a.theme, nil)).Paint(root, cmd.Width)
		_, err := fmt.Fprintln(a.stdout, frame.String())
		return err
	}
}

// ListCmd implements the 'list' command.
type ListCmd struct {
	Pattern string `arg:"" optional:"" help:"Glob relative to the project root (default: every Markdown document under Assets/)."`
}

// Run executes the list command.
func (cmd *ListCmd) Run(a *app) error {
	var (
		paths []string
		err   error
	)
	if cmd.Pattern != "" {
		paths, err = a.store.Find(cmd.Pattern)
	} else {
		paths, err = a.store.Documents()
	}
	if err != nil {
		return err
	}
	a.logger.Debug("Listed documents", "count", len(paths))
	for _, p := range paths {
		if _, err := fmt.Fprintln(a.stdout, p); err != nil {
			return err
		}
	}
	return nil
}

// StylesheetCmd implements the 'stylesheet' command.
type StylesheetCmd struct {
	Name string `arg:"" optional:"" help:"Stylesheet resource name." default:"mdview_markdown"`
}

// Run executes the stylesheet command.
func (cmd *StylesheetCmd) Run(a *app) error {
	sheet, err := a.styles.Stylesheet(cmd.Name)
	if err != nil {
		return err
	}
	data, err := yaml.MarshalStylesheet(sheet)
	if err != nil {
		return err
	}
	_, err = a.stdout.Write(data)
	return err
}

// documentPath turns a command line argument into a project-relative
// document path. Existing files are located relative to the working
// directory; anything else is taken as project-relative.
func (a *app) documentPath(arg string) (string, error) {
	p := filepath.ToSlash(arg)
	if abs, err := filepath.Abs(arg); err == nil {
		if _, err := os.Stat(abs); err == nil {
			rel, err := mdview.ProjectPath(a.store.Root(), abs)
			if err != nil {
				return "", fmt.Errorf("%s: %w", arg, err)
			}
			p = rel
		}
	}
	if !mdview.IsMarkdownPath(p) {
		return "", fmt.Errorf("%s: not a Markdown document: %w", arg, mdview.ErrUnsupportedFormat)
	}
	return p, nil
}
