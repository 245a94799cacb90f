package opener

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MrSnakeDoc/sharelink/internal/launch"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantLast string
	}{
		{"linux", "xdg-open", "https://wa.me/1"},
		{"freebsd", "xdg-open", "https://wa.me/1"},
		{"darwin", "open", "https://wa.me/1"},
		{"windows", "rundll32", "https://wa.me/1"},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args := Command(tt.goos, "https://wa.me/1")
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if args[len(args)-1] != tt.wantLast {
				t.Errorf("last arg = %q, want %q", args[len(args)-1], tt.wantLast)
			}
		})
	}
}

func TestBrowserMissingHandlerIsBlocked(t *testing.T) {
	b := &Browser{
		goos:     "linux",
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
		start: func(context.Context, string, ...string) error {
			t.Fatal("start called without handler")
			return nil
		},
	}

	err := b.OpenInNewContext(context.Background(), "https://wa.me/1")
	if !errors.Is(err, launch.ErrBlocked) {
		t.Errorf("OpenInNewContext() error = %v, want ErrBlocked", err)
	}
}

func TestBrowserStartFailure(t *testing.T) {
	b := &Browser{
		goos:     "linux",
		lookPath: func(string) (string, error) { return "/usr/bin/xdg-open", nil },
		start:    func(context.Context, string, ...string) error { return errors.New("boom") },
	}

	err := b.OpenInNewContext(context.Background(), "https://wa.me/1")
	if err == nil || errors.Is(err, launch.ErrBlocked) {
		t.Errorf("OpenInNewContext() error = %v, want non-blocked failure", err)
	}
}

func TestBrowserOpens(t *testing.T) {
	var gotName string
	var gotArgs []string
	b := &Browser{
		goos:     "darwin",
		lookPath: func(string) (string, error) { return "/usr/bin/open", nil },
		start: func(_ context.Context, name string, args ...string) error {
			gotName, gotArgs = name, args
			return nil
		},
	}

	if err := b.OpenInNewContext(context.Background(), "https://wa.me/1"); err != nil {
		t.Fatalf("OpenInNewContext() error = %v", err)
	}
	if gotName != "open" || len(gotArgs) != 1 || gotArgs[0] != "https://wa.me/1" {
		t.Errorf("started %q %v", gotName, gotArgs)
	}
}

func TestNavigateCurrentContextPrints(t *testing.T) {
	var buf bytes.Buffer
	b := NewBrowser(&buf)

	if err := b.NavigateCurrentContext(context.Background(), "https://wa.me/1"); err != nil {
		t.Fatalf("NavigateCurrentContext() error = %v", err)
	}
	if !strings.Contains(buf.String(), "https://wa.me/1") {
		t.Errorf("output %q missing url", buf.String())
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	if err := p.OpenInNewContext(context.Background(), "x"); !errors.Is(err, launch.ErrBlocked) {
		t.Errorf("OpenInNewContext() = %v, want ErrBlocked", err)
	}
	if err := p.NavigateCurrentContext(context.Background(), "https://wa.me/1"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "https://wa.me/1\n" {
		t.Errorf("output = %q", buf.String())
	}
}
