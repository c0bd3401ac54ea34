// Package exec hands link targets to the operating system's default
// handler by launching the platform opener command.
package exec

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	osexec "os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/fwojciec/mdview"
)

// DefaultTimeout bounds how long the opener command may run. Platform
// openers return as soon as the handler is launched.
const DefaultTimeout = 10 * time.Second

// CommandFunc builds the command that runs name with args.
type CommandFunc func(ctx context.Context, name string, args ...string) *osexec.Cmd

var _ mdview.Opener = (*Opener)(nil)

// Opener implements mdview.Opener using xdg-open, open or rundll32
// depending on the platform.
type Opener struct {
	goos    string
	command CommandFunc
	timeout time.Duration
}

// OpenerOption configures an Opener.
type OpenerOption func(*Opener)

// WithGOOS overrides the platform used to pick the opener command.
func WithGOOS(goos string) OpenerOption {
	return func(o *Opener) { o.goos = goos }
}

// WithCommand overrides how the opener command is constructed.
func WithCommand(fn CommandFunc) OpenerOption {
	return func(o *Opener) { o.command = fn }
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) OpenerOption {
	return func(o *Opener) { o.timeout = d }
}

// NewOpener creates an Opener for the current platform.
func NewOpener(opts ...OpenerOption) *Opener {
	o := &Opener{
		goos:    runtime.GOOS,
		command: osexec.CommandContext,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Open launches the platform handler for rawURL. Only http, https,
// file and mailto URLs are accepted.
func (o *Opener) Open(rawURL string) error {
	if err := checkURL(rawURL); err != nil {
		return err
	}
	name, args, err := platformCommand(o.goos, rawURL)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	cmd := o.command(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(Sanitize(stderr.String())); msg != "" {
			return fmt.Errorf("open %s: %w: %s", rawURL, err, msg)
		}
		return fmt.Errorf("open %s: %w", rawURL, err)
	}
	return nil
}

func checkURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("open %s: %w", rawURL, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "file", "mailto":
		return nil
	default:
		return fmt.Errorf("open %s: scheme %q: %w", rawURL, u.Scheme, mdview.ErrUnsupportedFormat)
	}
}

func platformCommand(goos, rawURL string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{rawURL}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}, nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return "xdg-open", []string{rawURL}, nil
	default:
		return "", nil, fmt.Errorf("open %s: no opener for %s", rawURL, goos)
	}
}
