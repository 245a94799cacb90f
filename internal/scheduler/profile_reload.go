package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MrSnakeDoc/sharelink/internal/logger"
	"github.com/MrSnakeDoc/sharelink/internal/sources/profile"
)

// ProfileReloader periodically re-reads profile.yaml and publishes it.
// A failed reload leaves the previous profile in place.
type ProfileReloader struct {
	loader        *profile.Loader
	holder        *profile.Holder
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	stopOnce      sync.Once
	manualTrigger chan struct{}

	mu         sync.RWMutex
	lastReload time.Time
	lastErr    error
	now        func() time.Time
}

// NewProfileReloader creates a new profile reloader
func NewProfileReloader(
	profileFile string,
	holder *profile.Holder,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *ProfileReloader {
	return &ProfileReloader{
		loader:        profile.NewLoader(profileFile),
		holder:        holder,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
		now:           time.Now,
	}
}

// Start loads the file once, then reloads on every tick or manual trigger.
func (pr *ProfileReloader) Start(ctx context.Context) error {
	if err := pr.Reload(ctx); err != nil {
		return fmt.Errorf("initial reload failed: %w", err)
	}

	ticker := time.NewTicker(pr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := pr.Reload(ctx); err != nil {
					pr.logger.Error("failed to reload profile, keeping previous",
						logger.Error(err))
				}
			case <-pr.manualTrigger:
				pr.logger.Info("manual reload triggered")
				if err := pr.Reload(ctx); err != nil {
					pr.logger.Error("failed to reload profile, keeping previous",
						logger.Error(err))
				}
			case <-pr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (pr *ProfileReloader) Stop() {
	pr.stopOnce.Do(func() { close(pr.stopCh) })
}

// Reload reads, validates and publishes the profile file.
func (pr *ProfileReloader) Reload(_ context.Context) error {
	pr.logger.Info("reloading profile", logger.String("file", pr.loader.Path()))

	err := pr.reload()

	pr.mu.Lock()
	pr.lastErr = err
	if err == nil {
		pr.lastReload = pr.now()
	}
	pr.mu.Unlock()

	return err
}

func (pr *ProfileReloader) reload() error {
	f, err := pr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	p, err := profile.Map(f)
	if err != nil {
		return fmt.Errorf("failed to map profile: %w", err)
	}

	pr.holder.Store(p)
	pr.logger.Info("profile loaded",
		logger.String("title", p.Title),
		logger.Int("links", len(p.Links)))
	return nil
}

// Status reports the last successful reload and the most recent error.
func (pr *ProfileReloader) Status() (lastReload time.Time, lastErr error) {
	pr.mu.RLock()
	defer pr.mu.RUnlock()
	return pr.lastReload, pr.lastErr
}
