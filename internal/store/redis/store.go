package redis

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
)

// Store handles Redis operations for analytics counters
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// IncrementEvent bumps the counter for ev
func (s *Store) IncrementEvent(ctx context.Context, ev domain.AnalyticsEvent) error {
	key := AnalyticsKey(ev.Category, ev.Action)

	pipe := s.client.TxPipeline()
	pipe.HIncrBy(ctx, key, ev.Label, 1)
	pipe.SAdd(ctx, AllAnalyticsKey(), key)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment analytics counter: %w", err)
	}
	return nil
}

// GetStats returns every recorded counter, sorted by category, action, label
func (s *Store) GetStats(ctx context.Context) ([]domain.EventCount, error) {
	keys, err := s.client.SMembers(ctx, AllAnalyticsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics keys: %w", err)
	}

	stats := make([]domain.EventCount, 0, len(keys))
	for _, key := range keys {
		category, action, err := ExtractCategoryAction(key)
		if err != nil {
			// Skip foreign members
			continue
		}

		fields, err := s.client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get analytics hash %s: %w", key, err)
		}

		for label, raw := range fields {
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				continue
			}
			stats = append(stats, domain.EventCount{
				AnalyticsEvent: domain.AnalyticsEvent{Action: action, Category: category, Label: label},
				Count:          n,
			})
		}
	}

	SortCounts(stats)
	return stats, nil
}

// Ping checks the connection
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// SortCounts orders counts by category, action then label
func SortCounts(counts []domain.EventCount) {
	sort.Slice(counts, func(i, j int) bool {
		a, b := counts[i], counts[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Action != b.Action {
			return a.Action < b.Action
		}
		return a.Label < b.Label
	})
}
