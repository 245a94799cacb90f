package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
	"github.com/MrSnakeDoc/sharelink/internal/sources/profile"
)

const validProfile = `event:
  name: River Revive
  title: River Revive – Pune River Cleaning Camp
  date: 21 November 2025
  time: "9:00 AM"
  location: Bhide Bridge, Pune
  capacity: Up to 50 participants
  phone: "+91 84120 11008"
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestProfileReloader_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	writeFile(t, path, validProfile)

	holder := profile.NewHolder(domain.DefaultProfile())
	pr := NewProfileReloader(path, holder, logger.NewNop(), time.Hour, make(chan struct{}, 1))

	if err := pr.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if got := holder.Current().Date; got != "21 November 2025" {
		t.Errorf("Date = %q after reload", got)
	}
	if last, err := pr.Status(); last.IsZero() || err != nil {
		t.Errorf("Status() = (%v, %v), want recent reload and no error", last, err)
	}
}

func TestProfileReloader_KeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	writeFile(t, path, validProfile)

	holder := profile.NewHolder(domain.DefaultProfile())
	pr := NewProfileReloader(path, holder, logger.NewNop(), time.Hour, make(chan struct{}, 1))
	if err := pr.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	before := holder.Current()

	// Phone too short
	writeFile(t, path, `event: {title: Broken, date: x, time: x, location: x, capacity: x, phone: "123"}`)
	if err := pr.Reload(context.Background()); err == nil {
		t.Fatal("Reload() should fail on an invalid profile")
	}
	if holder.Current().Title != before.Title {
		t.Errorf("profile replaced by an invalid reload: %q", holder.Current().Title)
	}
	if _, err := pr.Status(); err == nil {
		t.Error("Status() should report the failed reload")
	}
}

func TestProfileReloader_StartFailsWithoutFile(t *testing.T) {
	holder := profile.NewHolder(domain.DefaultProfile())
	pr := NewProfileReloader("/nonexistent/profile.yaml", holder, logger.NewNop(), time.Hour, nil)

	if err := pr.Start(context.Background()); err == nil {
		t.Error("Start() should fail when the initial load fails")
	}
}

func TestProfileReloader_ManualTrigger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	writeFile(t, path, validProfile)

	trigger := make(chan struct{})
	holder := profile.NewHolder(domain.DefaultProfile())
	pr := NewProfileReloader(path, holder, logger.NewNop(), time.Hour, trigger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := pr.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer pr.Stop()

	writeFile(t, path, `event:
  title: River Revive – Pune River Cleaning Camp
  date: 28 November 2025
  time: "9:00 AM"
  location: Bhide Bridge, Pune
  capacity: Up to 50 participants
  phone: "+91 84120 11008"
`)
	trigger <- struct{}{}

	deadline := time.Now().Add(2 * time.Second)
	for holder.Current().Date != "28 November 2025" {
		if time.Now().After(deadline) {
			t.Fatalf("manual trigger did not reload, Date = %q", holder.Current().Date)
		}
		time.Sleep(5 * time.Millisecond)
	}

	pr.Stop()
	pr.Stop()
}
