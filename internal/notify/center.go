package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
)

// DefaultDuration is how long a notification stays visible.
const DefaultDuration = 3 * time.Second

// Presenter renders the center's state. Calls are serialized by the Center
// and happen while its lock is held, so a Presenter must not call back into it.
type Presenter interface {
	Show(n domain.Notification, style Style)
	Hide()
}

// Timer is the part of *time.Timer the center needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d, like time.AfterFunc.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Center shows at most one notification at a time.
// A new Show replaces the visible notification and restarts the dismiss timer.
type Center struct {
	mu        sync.Mutex
	presenter Presenter
	duration  time.Duration
	now       func() time.Time
	afterFunc AfterFunc
	newID     func() string

	current *domain.Notification
	timer   Timer
	gen     uint64 // bumped on every transition, stale timers compare against it
}

// Option configures a Center.
type Option func(*Center)

// WithDuration sets the auto-dismiss delay. Non-positive values are ignored.
func WithDuration(d time.Duration) Option {
	return func(c *Center) {
		if d > 0 {
			c.duration = d
		}
	}
}

// WithNow overrides the clock used for CreatedAt.
func WithNow(now func() time.Time) Option {
	return func(c *Center) { c.now = now }
}

// WithAfterFunc overrides timer scheduling (tests).
func WithAfterFunc(f AfterFunc) Option {
	return func(c *Center) { c.afterFunc = f }
}

// WithIDs overrides notification ID generation (tests).
func WithIDs(f func() string) Option {
	return func(c *Center) { c.newID = f }
}

// New creates a hidden Center. A nil presenter discards rendering.
func New(p Presenter, opts ...Option) *Center {
	if p == nil {
		p = NopPresenter{}
	}
	c := &Center{
		presenter: p,
		duration:  DefaultDuration,
		now:       time.Now,
		afterFunc: realAfterFunc,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Show makes message visible, replacing whatever is shown.
func (c *Center) Show(message string, severity domain.Severity) domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTimerLocked()
	c.gen++
	gen := c.gen

	n := domain.Notification{
		ID:        c.newID(),
		Message:   message,
		Severity:  severity,
		CreatedAt: c.now(),
		Duration:  c.duration,
	}
	c.current = &n
	c.timer = c.afterFunc(c.duration, func() { c.expire(gen) })

	c.presenter.Show(n, StyleFor(severity))
	return n
}

// Dismiss hides the current notification immediately. Hidden stays hidden.
func (c *Center) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return
	}
	c.stopTimerLocked()
	c.gen++
	c.hideLocked()
}

// State returns the visible notification, if any.
func (c *Center) State() (domain.Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return domain.Notification{}, false
	}
	return *c.current, true
}

// Visible reports whether a notification is shown.
func (c *Center) Visible() bool {
	_, ok := c.State()
	return ok
}

func (c *Center) expire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen || c.current == nil {
		return
	}
	c.timer = nil
	c.gen++
	c.hideLocked()
}

func (c *Center) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Center) hideLocked() {
	c.current = nil
	c.presenter.Hide()
}

// NopPresenter renders nothing.
type NopPresenter struct{}

func (NopPresenter) Show(domain.Notification, Style) {}
func (NopPresenter) Hide()                           {}
