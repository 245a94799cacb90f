// Package opener implements launch.Navigator for a desktop session.
package opener

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/MrSnakeDoc/sharelink/internal/launch"
)

// Command returns the program and arguments that open url in the default browser.
func Command(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// Browser opens links with the platform's URL handler. The "current context"
// of a terminal is the terminal itself, so fallback navigation prints the URL.
type Browser struct {
	goos     string
	lookPath func(string) (string, error)
	start    func(ctx context.Context, name string, args ...string) error
	out      io.Writer
}

// NewBrowser returns a Browser for the running OS writing fallbacks to out.
func NewBrowser(out io.Writer) *Browser {
	return &Browser{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		start:    startDetached,
		out:      out,
	}
}

func (b *Browser) OpenInNewContext(ctx context.Context, url string) error {
	name, args := Command(b.goos, url)
	if _, err := b.lookPath(name); err != nil {
		return fmt.Errorf("%w: %s not found", launch.ErrBlocked, name)
	}
	if err := b.start(ctx, name, args...); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	return nil
}

func (b *Browser) NavigateCurrentContext(_ context.Context, url string) error {
	_, err := fmt.Fprintf(b.out, "Open this link to continue:\n%s\n", url)
	return err
}

func startDetached(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// Not bound to ctx: the handler must outlive the command that spawned it.
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// The handler forks the browser and exits; reap it without blocking.
	go func() { _ = cmd.Wait() }()
	return nil
}

// Printer never opens anything: every link goes straight to out.
// Used with --print or when no display is available.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) OpenInNewContext(context.Context, string) error {
	return launch.ErrBlocked
}

func (p *Printer) NavigateCurrentContext(_ context.Context, url string) error {
	_, err := fmt.Fprintln(p.out, url)
	return err
}
