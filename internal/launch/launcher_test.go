package launch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MrSnakeDoc/sharelink/internal/analytics"
	"github.com/MrSnakeDoc/sharelink/internal/deeplink"
	"github.com/MrSnakeDoc/sharelink/internal/domain"
	"github.com/MrSnakeDoc/sharelink/internal/message"
	"github.com/MrSnakeDoc/sharelink/internal/notify"
)

type staticProfile domain.EventProfile

func (s staticProfile) Current() domain.EventProfile { return domain.EventProfile(s) }

type fakeNavigator struct {
	openErr   error
	opened    []string
	navigated []string
}

func (n *fakeNavigator) OpenInNewContext(_ context.Context, url string) error {
	n.opened = append(n.opened, url)
	return n.openErr
}

func (n *fakeNavigator) NavigateCurrentContext(_ context.Context, url string) error {
	n.navigated = append(n.navigated, url)
	return nil
}

type deferredScheduler struct {
	delays []time.Duration
	funcs  []func()
}

func (s *deferredScheduler) AfterFunc(d time.Duration, f func()) {
	s.delays = append(s.delays, d)
	s.funcs = append(s.funcs, f)
}

func (s *deferredScheduler) runAll() {
	for _, f := range s.funcs {
		f()
	}
	s.funcs = nil
}

type fixture struct {
	launcher *Launcher
	nav      *fakeNavigator
	center   *notify.Center
	counter  *analytics.MemoryCounter
	sched    *deferredScheduler
}

func newFixture(openErr error) fixture {
	nav := &fakeNavigator{openErr: openErr}
	sched := &deferredScheduler{}
	counter := analytics.NewMemoryCounter()
	center := notify.New(nil, notify.WithAfterFunc(func(time.Duration, func()) notify.Timer {
		return stoppedTimer{}
	}))

	l := New(Config{
		Profiles:  staticProfile(domain.DefaultProfile()),
		Links:     deeplink.Default(),
		Navigator: nav,
		Notifier:  center,
		Recorder:  counter,
		AfterFunc: sched.AfterFunc,
	})
	return fixture{launcher: l, nav: nav, center: center, counter: counter, sched: sched}
}

type stoppedTimer struct{}

func (stoppedTimer) Stop() bool { return false }

func TestShareSuccess(t *testing.T) {
	f := newFixture(nil)
	ua := "Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X)"

	res := f.launcher.Share(context.Background(), ua)

	if !res.Opened {
		t.Fatal("Opened = false, want true")
	}
	if res.Link.Platform != domain.PlatformMobile {
		t.Errorf("Platform = %v, want mobile", res.Link.Platform)
	}
	text, err := deeplink.Text(res.Link.URL)
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if want := message.Compose(domain.DefaultProfile()).String(); text != want {
		t.Errorf("link text = %q, want composed message", text)
	}

	n, ok := f.center.State()
	if !ok || n.Severity != domain.SeveritySuccess || n.Message != SuccessMessage(domain.ActionShare) {
		t.Errorf("notification = %+v, %v; want share success", n, ok)
	}
	if len(f.sched.funcs) != 0 {
		t.Error("fallback scheduled on success")
	}
	if f.counter.Count(domain.ShareEvent) != 1 {
		t.Error("share event not recorded")
	}
}

func TestContactSuccess(t *testing.T) {
	f := newFixture(nil)

	res := f.launcher.Contact(context.Background())

	want := "https://wa.me/918412011008?text=" + mustEncode(t, domain.DefaultProfile().ContactGreeting)
	if res.Link.URL != want {
		t.Errorf("URL = %q, want %q", res.Link.URL, want)
	}
	n, _ := f.center.State()
	if n.Message != SuccessMessage(domain.ActionContact) {
		t.Errorf("notification = %q", n.Message)
	}
	if f.counter.Count(domain.ContactEvent) != 1 {
		t.Error("contact event not recorded")
	}
}

func TestOpenBlocked(t *testing.T) {
	f := newFixture(ErrBlocked)

	res := f.launcher.Contact(context.Background())
	if res.Opened {
		t.Fatal("Opened = true, want false")
	}

	n, ok := f.center.State()
	if !ok || n.Severity != domain.SeverityError || n.Message != BlockedMessage {
		t.Errorf("notification = %+v, %v; want blocked error", n, ok)
	}
	if len(f.sched.delays) != 1 || f.sched.delays[0] != DefaultFallbackDelay {
		t.Fatalf("fallback delays = %v, want [%v]", f.sched.delays, DefaultFallbackDelay)
	}
	if len(f.nav.navigated) != 0 {
		t.Error("fallback navigation ran before its delay")
	}

	f.sched.runAll()
	f.launcher.Wait()

	if len(f.nav.navigated) != 1 || f.nav.navigated[0] != res.Link.URL {
		t.Errorf("navigated = %v, want [%s]", f.nav.navigated, res.Link.URL)
	}
	if f.counter.Count(domain.ContactEvent) != 1 {
		t.Error("contact event not recorded on failure")
	}
}

func TestOpenFailureUsesProfileErrorMessage(t *testing.T) {
	f := newFixture(errors.New("exec: no browser"))

	f.launcher.Share(context.Background(), "")
	f.sched.runAll()
	f.launcher.Wait()

	n, _ := f.center.State()
	if n.Message != domain.DefaultProfile().ErrorMessage {
		t.Errorf("notification = %q, want profile error message", n.Message)
	}
	if len(f.nav.navigated) != 1 {
		t.Errorf("navigated %d times, want 1", len(f.nav.navigated))
	}
}

func TestShareWithBrokenProfileStillOpens(t *testing.T) {
	p := domain.DefaultProfile()
	p.Location = ""
	nav := &fakeNavigator{}
	l := New(Config{Profiles: staticProfile(p), Navigator: nav})

	res := l.Share(context.Background(), "")
	if !res.Fallback {
		t.Error("Fallback = false, want true")
	}
	if !res.Opened || len(nav.opened) != 1 {
		t.Error("share with broken profile did not open a link")
	}
}

func TestSuccessMessage(t *testing.T) {
	if SuccessMessage(domain.Action("other")) != "Opening WhatsApp..." {
		t.Error("unknown action should use the generic message")
	}
}

func mustEncode(t *testing.T, s string) string {
	t.Helper()
	enc, err := deeplink.Encode(s)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return enc
}
