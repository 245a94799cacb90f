// Package launch opens share and contact links and reports the outcome.
//
// It is the only place where the pure core (message composition, link
// building) meets side effects: navigation, notifications and analytics.
package launch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MrSnakeDoc/sharelink/internal/analytics"
	"github.com/MrSnakeDoc/sharelink/internal/deeplink"
	"github.com/MrSnakeDoc/sharelink/internal/domain"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
)

// ErrBlocked is returned by a Navigator when a new context was refused.
var ErrBlocked = errors.New("new browsing context blocked")

const (
	DefaultFallbackDelay = time.Second
	BlockedMessage       = "Popup blocked. Please allow popups for this site."
)

// Navigator opens URLs.
type Navigator interface {
	OpenInNewContext(ctx context.Context, url string) error
	NavigateCurrentContext(ctx context.Context, url string) error
}

// Notifier surfaces a transient status message (see notify.Center).
type Notifier interface {
	Show(message string, severity domain.Severity) domain.Notification
}

// ProfileSource returns the event profile in effect.
type ProfileSource interface {
	Current() domain.EventProfile
}

// Config holds the launcher's collaborators.
type Config struct {
	Profiles      ProfileSource
	Links         *deeplink.Builder
	Navigator     Navigator
	Notifier      Notifier
	Recorder      analytics.Recorder
	Logger        logger.Logger
	FallbackDelay time.Duration

	// AfterFunc schedules the fallback navigation; defaults to time.AfterFunc.
	AfterFunc func(d time.Duration, f func())
}

// Result describes one launch.
type Result struct {
	Action   domain.Action
	Link     domain.DeepLink
	Opened   bool
	Fallback bool // the share message fell back to the minimal text
}

// Launcher wires button actions to links, navigation and feedback.
type Launcher struct {
	profiles      ProfileSource
	links         *deeplink.Builder
	nav           Navigator
	notifier      Notifier
	recorder      analytics.Recorder
	log           logger.Logger
	fallbackDelay time.Duration
	afterFunc     func(d time.Duration, f func())

	pending sync.WaitGroup
}

// New builds a Launcher. Missing optional collaborators get no-op defaults.
func New(cfg Config) *Launcher {
	l := &Launcher{
		profiles:      cfg.Profiles,
		links:         cfg.Links,
		nav:           cfg.Navigator,
		notifier:      cfg.Notifier,
		recorder:      cfg.Recorder,
		log:           cfg.Logger,
		fallbackDelay: cfg.FallbackDelay,
		afterFunc:     cfg.AfterFunc,
	}
	if l.links == nil {
		l.links = deeplink.Default()
	}
	if l.recorder == nil {
		l.recorder = analytics.Nop
	}
	if l.log == nil {
		l.log = logger.NewNop()
	}
	if l.fallbackDelay <= 0 {
		l.fallbackDelay = DefaultFallbackDelay
	}
	if l.afterFunc == nil {
		l.afterFunc = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	return l
}

// Share composes the event message and opens the share link for userAgent.
func (l *Launcher) Share(ctx context.Context, userAgent string) Result {
	return l.launch(ctx, domain.ActionShare, userAgent)
}

// Contact opens a direct chat with the organisers.
func (l *Launcher) Contact(ctx context.Context) Result {
	return l.launch(ctx, domain.ActionContact, "")
}

func (l *Launcher) launch(ctx context.Context, action domain.Action, userAgent string) Result {
	t := Resolve(l.links, l.profiles.Current(), action, userAgent)
	if t.Fallback {
		l.log.Warn("share message fell back to minimal text", logger.Error(t.Problem))
	}

	opened := l.Open(ctx, t.Action, t.Link)
	l.recorder.Record(ctx, t.Event)

	return Result{Action: t.Action, Link: t.Link, Opened: opened, Fallback: t.Fallback}
}

// Open tries a new context first. On failure it shows an error and schedules
// a same-context navigation to the same URL.
func (l *Launcher) Open(ctx context.Context, action domain.Action, link domain.DeepLink) bool {
	err := l.nav.OpenInNewContext(ctx, link.URL)
	if err == nil {
		l.log.Info("opened link",
			logger.String("action", string(action)),
			logger.String("platform", string(link.Platform)))
		l.notify(SuccessMessage(action), domain.SeveritySuccess)
		return true
	}

	text := BlockedMessage
	if !errors.Is(err, ErrBlocked) {
		text = l.profiles.Current().ErrorMessage
	}
	l.log.Warn("failed to open link in new context, falling back",
		logger.String("action", string(action)),
		logger.Duration("delay", l.fallbackDelay),
		logger.Error(err))
	l.notify(text, domain.SeverityError)
	l.scheduleFallback(link.URL)
	return false
}

// Wait blocks until every scheduled fallback navigation has run.
func (l *Launcher) Wait() {
	l.pending.Wait()
}

func (l *Launcher) scheduleFallback(url string) {
	l.pending.Add(1)
	l.afterFunc(l.fallbackDelay, func() {
		defer l.pending.Done()
		if err := l.nav.NavigateCurrentContext(context.Background(), url); err != nil {
			l.log.Error("fallback navigation failed", logger.Error(err))
		}
	})
}

func (l *Launcher) notify(text string, severity domain.Severity) {
	if l.notifier != nil {
		l.notifier.Show(text, severity)
	}
}

// SuccessMessage names the action being opened.
func SuccessMessage(action domain.Action) string {
	switch action {
	case domain.ActionShare:
		return "Opening WhatsApp to share the event..."
	case domain.ActionContact:
		return "Opening WhatsApp chat with the organisers..."
	default:
		return "Opening WhatsApp..."
	}
}
