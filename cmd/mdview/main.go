// Command mdview renders Markdown documents from a project's Assets
// directory as styled widget trees.
//
// Usage:
//
//	mdview [flags] view <path>      Browse a document interactively
//	mdview [flags] render <path>    Paint a document to stdout
//	mdview [flags] list [pattern]   List documents under Assets/
//	mdview [flags] stylesheet       Print the effective stylesheet
//
// Flags:
//
//	-p, --project string   Project directory containing Assets/ ($MDVIEW_PROJECT, default ".")
//	    --styles string    Directory of stylesheet YAML files ($MDVIEW_STYLES)
//	    --log-file string  Write logs to a file instead of stderr
//	-v, --verbose          Enable debug logging
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mdview"
	"github.com/fwojciec/mdview/fs"
	"github.com/fwojciec/mdview/goldmark"
	"github.com/fwojciec/mdview/yaml"
)

// CLI is the command line definition.
type CLI struct {
	Project string `short:"p" help:"Project directory containing Assets/." default:"." env:"MDVIEW_PROJECT" type:"existingdir"`
	Styles  string `help:"Directory of stylesheet YAML files." env:"MDVIEW_STYLES" type:"path"`
	LogFile string `name:"log-file" help:"Write logs to a file instead of stderr." type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging."`

	View       ViewCmd       `cmd:"" help:"Browse a Markdown document interactively."`
	Render     RenderCmd     `cmd:"" help:"Paint a Markdown document to stdout."`
	List       ListCmd       `cmd:"" help:"List Markdown documents under Assets/."`
	Stylesheet StylesheetCmd `cmd:"" help:"Print the effective stylesheet as YAML."`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "mdview: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("mdview"),
		kong.Description("Render Markdown documents as styled widget trees."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logOut := stderr
	if strings.HasPrefix(kctx.Command(), "view") {
		// The viewer owns the terminal.
		logOut = io.Discard
	}
	if cli.LogFile != "" {
		f, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	a, err := newApp(ctx, &cli, stdout, newLogger(logOut, cli.Verbose))
	if err != nil {
		return err
	}
	return kctx.Run(a)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// app holds the collaborators shared by every command.
type app struct {
	ctx    context.Context
	stdout io.Writer
	logger *slog.Logger
	theme  mdview.Theme
	store  *fs.Store
	styles *yaml.Registry
}

func newApp(ctx context.Context, cli *CLI, stdout io.Writer, logger *slog.Logger) (*app, error) {
	store, err := fs.NewStore(cli.Project)
	if err != nil {
		return nil, fmt.Errorf("open project: %w", err)
	}
	theme := mdview.DefaultTheme()
	logger.Debug("Opened project", "root", store.Root(), "styles", cli.Styles)
	return &app{
		ctx:    ctx,
		stdout: stdout,
		logger: logger,
		theme:  theme,
		store:  store,
		styles: yaml.NewRegistry(cli.Styles, mdview.DefaultStylesheet(theme)),
	}, nil
}

// renderer returns a Markdown renderer bound to the project.
func (a *app) renderer(opts ...goldmark.Option) *goldmark.Renderer {
	opts = append([]goldmark.Option{
		goldmark.WithAssetStore(a.store),
		goldmark.WithStyleRegistry(a.styles),
	}, opts...)
	return goldmark.NewRenderer(opts...)
}

// load reads and renders the document at a project-relative path.
func (a *app) load(r *goldmark.Renderer, path string) (*mdview.Widget, error) {
	text, err := a.store.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Rendering document", "path", path, "bytes", len(text))
	return r.Render(text, path), nil
}
