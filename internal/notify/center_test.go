package notify

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeScheduler records scheduled callbacks and fires them on demand.
type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped && !t.fired
	t.stopped = true
	return wasActive
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) pending() []*fakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			out = append(out, t)
		}
	}
	return out
}

// fire runs a timer callback even if it was stopped, like a timer that
// already fired before Stop was called.
func (s *fakeScheduler) fire(t *fakeTimer) {
	t.fired = true
	t.f()
}

type recordingPresenter struct {
	shown  []domain.Notification
	styles []Style
	hides  int
}

func (p *recordingPresenter) Show(n domain.Notification, s Style) {
	p.shown = append(p.shown, n)
	p.styles = append(p.styles, s)
}

func (p *recordingPresenter) Hide() { p.hides++ }

func newTestCenter(p Presenter) (*Center, *fakeScheduler) {
	s := &fakeScheduler{}
	now := time.Date(2025, 11, 14, 9, 0, 0, 0, time.UTC)
	ids := 0
	c := New(p,
		WithAfterFunc(s.AfterFunc),
		WithNow(func() time.Time { return now }),
		WithIDs(func() string { ids++; return "n" + string(rune('0'+ids)) }),
	)
	return c, s
}

func TestShowMakesVisible(t *testing.T) {
	p := &recordingPresenter{}
	c, s := newTestCenter(p)

	n := c.Show("Opening WhatsApp...", domain.SeveritySuccess)

	got, ok := c.State()
	if !ok {
		t.Fatal("State() hidden after Show")
	}
	if got != n {
		t.Errorf("State() = %+v, want %+v", got, n)
	}
	if n.Duration != DefaultDuration {
		t.Errorf("Duration = %v, want %v", n.Duration, DefaultDuration)
	}
	if len(s.pending()) != 1 || s.pending()[0].d != DefaultDuration {
		t.Errorf("want exactly one timer of %v", DefaultDuration)
	}
	if len(p.shown) != 1 || p.styles[0] != StyleFor(domain.SeveritySuccess) {
		t.Errorf("presenter not called with success style: %+v", p.styles)
	}
}

func TestShowReplacesPrevious(t *testing.T) {
	c, s := newTestCenter(nil)

	c.Show("A", domain.SeveritySuccess)
	c.Show("B", domain.SeverityError)

	got, ok := c.State()
	if !ok {
		t.Fatal("State() hidden after Show")
	}
	if got.Message != "B" || got.Severity != domain.SeverityError {
		t.Errorf("State() = %q/%q, want B/error", got.Message, got.Severity)
	}
	if n := len(s.pending()); n != 1 {
		t.Errorf("pending timers = %d, want 1", n)
	}
}

func TestStaleTimerDoesNotHideNewer(t *testing.T) {
	p := &recordingPresenter{}
	c, s := newTestCenter(p)

	c.Show("A", domain.SeverityInfo)
	first := s.timers[0]
	c.Show("B", domain.SeverityInfo)

	// The first timer raced Stop and fired anyway.
	s.fire(first)

	got, ok := c.State()
	if !ok || got.Message != "B" {
		t.Fatalf("State() = %+v, %v; want B visible", got, ok)
	}
	if p.hides != 0 {
		t.Errorf("Hide() called %d times, want 0", p.hides)
	}
}

func TestAutoDismiss(t *testing.T) {
	p := &recordingPresenter{}
	c, s := newTestCenter(p)

	c.Show("A", domain.SeveritySuccess)
	s.fire(s.pending()[0])

	if c.Visible() {
		t.Error("Visible() = true after timer fired")
	}
	if p.hides != 1 {
		t.Errorf("Hide() called %d times, want 1", p.hides)
	}
}

func TestDismiss(t *testing.T) {
	p := &recordingPresenter{}
	c, s := newTestCenter(p)

	c.Show("A", domain.SeverityError)
	c.Dismiss()

	if c.Visible() {
		t.Error("Visible() = true after Dismiss")
	}
	if n := len(s.pending()); n != 0 {
		t.Errorf("pending timers after Dismiss = %d, want 0", n)
	}

	// A late fire of the cancelled timer is a no-op.
	s.fire(s.timers[0])
	if p.hides != 1 {
		t.Errorf("Hide() called %d times, want 1", p.hides)
	}
}

func TestDismissWhileHiddenIsNoop(t *testing.T) {
	p := &recordingPresenter{}
	c, _ := newTestCenter(p)

	c.Dismiss()
	c.Dismiss()

	if c.Visible() {
		t.Error("Visible() = true, want hidden")
	}
	if p.hides != 0 {
		t.Errorf("Hide() called %d times on hidden center, want 0", p.hides)
	}
}

func TestWithDuration(t *testing.T) {
	s := &fakeScheduler{}
	c := New(nil, WithAfterFunc(s.AfterFunc), WithDuration(500*time.Millisecond), WithDuration(-1))

	n := c.Show("x", domain.SeverityInfo)
	if n.Duration != 500*time.Millisecond {
		t.Errorf("Duration = %v, want 500ms", n.Duration)
	}
	if s.timers[0].d != 500*time.Millisecond {
		t.Errorf("timer duration = %v, want 500ms", s.timers[0].d)
	}
}

func TestRealTimerDismisses(t *testing.T) {
	c := New(nil, WithDuration(20*time.Millisecond))
	n := c.Show("x", domain.SeveritySuccess)
	if n.ID == "" {
		t.Error("notification ID is empty")
	}

	deadline := time.Now().Add(2 * time.Second)
	for c.Visible() {
		if time.Now().After(deadline) {
			t.Fatal("notification still visible after 2s")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestStyleFor(t *testing.T) {
	tests := []struct {
		severity domain.Severity
		want     string
	}{
		{domain.SeveritySuccess, "#35b9a6"},
		{domain.SeverityError, "#ef4444"},
		{domain.SeverityInfo, "#3b82f6"},
		{domain.Severity("warning"), DefaultStyle.Background},
		{domain.Severity(""), DefaultStyle.Background},
	}
	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			if got := StyleFor(tt.severity).Background; got != tt.want {
				t.Errorf("StyleFor(%q).Background = %q, want %q", tt.severity, got, tt.want)
			}
		})
	}
}

// screen replays terminal output into visible lines, honouring the
// erase-line sequence and carriage returns. Other escapes are dropped.
func screen(raw string) []string {
	lines := [][]rune{nil}
	col := 0
	rs := []rune(raw)
	for i := 0; i < len(rs); i++ {
		cur := len(lines) - 1
		switch r := rs[i]; r {
		case '\x1b':
			j := i + 1
			if j < len(rs) && rs[j] == '[' {
				j++
				for j < len(rs) && (rs[j] < '@' || rs[j] > '~') {
					j++
				}
				if j < len(rs) && rs[j] == 'K' && string(rs[i+2:j]) == "2" {
					lines[cur] = nil
				}
			}
			i = j
		case '\r':
			col = 0
		case '\n':
			lines = append(lines, nil)
			col = 0
		default:
			if col < len(lines[cur]) {
				lines[cur][col] = r
			} else {
				lines[cur] = append(lines[cur], r)
			}
			col++
		}
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimSpace(string(l))
	}
	return out
}

func TestTerminalPresenter(t *testing.T) {
	var buf bytes.Buffer
	p := NewTerminalPresenter(&buf)

	p.Show(domain.Notification{Message: "Opening WhatsApp...", Severity: domain.SeveritySuccess}, StyleFor(domain.SeveritySuccess))
	shown := buf.String()
	if !strings.Contains(shown, "Opening WhatsApp...") {
		t.Errorf("output %q missing message", shown)
	}
	if !strings.Contains(shown, "✓") {
		t.Errorf("output %q missing success glyph", shown)
	}
	if strings.HasSuffix(shown, "\n") {
		t.Errorf("Show() output %q must leave the cursor on the toast line", shown)
	}

	p.Hide()
	for i, line := range screen(buf.String()) {
		if line != "" {
			t.Errorf("line %d = %q after Hide(), want it erased", i, line)
		}
	}
}

func TestTerminalPresenterReplacesToast(t *testing.T) {
	var buf bytes.Buffer
	p := NewTerminalPresenter(&buf)

	p.Show(domain.Notification{Message: "first", Severity: domain.SeverityInfo}, StyleFor(domain.SeverityInfo))
	p.Show(domain.Notification{Message: "second", Severity: domain.SeverityError}, StyleFor(domain.SeverityError))

	lines := screen(buf.String())
	if len(lines) != 1 {
		t.Fatalf("screen = %q, want a single toast line", lines)
	}
	if strings.Contains(lines[0], "first") || !strings.Contains(lines[0], "second") {
		t.Errorf("toast line = %q, want only the second message", lines[0])
	}
}
