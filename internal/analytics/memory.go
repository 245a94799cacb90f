package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
	redisstore "github.com/MrSnakeDoc/sharelink/internal/store/redis"
)

// MemoryCounter keeps in-process counts.
// It acts as a fallback when Redis is unavailable
type MemoryCounter struct {
	mu         sync.RWMutex
	counts     map[domain.AnalyticsEvent]int64
	lastRecord time.Time
}

// NewMemoryCounter creates an empty counter
func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{
		counts: make(map[domain.AnalyticsEvent]int64),
	}
}

// Record increments the counter for ev
func (m *MemoryCounter) Record(_ context.Context, ev domain.AnalyticsEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counts[ev]++
	m.lastRecord = time.Now()
}

// Count returns the counter for ev
func (m *MemoryCounter) Count(ev domain.AnalyticsEvent) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.counts[ev]
}

// Snapshot returns all counters, sorted
func (m *MemoryCounter) Snapshot() []domain.EventCount {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.EventCount, 0, len(m.counts))
	for ev, n := range m.counts {
		out = append(out, domain.EventCount{AnalyticsEvent: ev, Count: n})
	}
	redisstore.SortCounts(out)
	return out
}

// Total returns the sum of all counters
func (m *MemoryCounter) Total() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var total int64
	for _, n := range m.counts {
		total += n
	}
	return total
}

// LastRecord returns when the last event was recorded
func (m *MemoryCounter) LastRecord() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.lastRecord
}
