package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
)

type statsResponse struct {
	Source string              `json:"source"` // "redis" or "memory"
	Total  int64               `json:"total"`
	Events []domain.EventCount `json:"events"`
}

// Stats returns analytics counts, from Redis when available, else from memory.
func Stats(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := statsResponse{Source: "memory", Events: d.Memory.Snapshot()}

		if d.Store != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			counts, err := d.Store.GetStats(ctx)
			cancel()
			if err != nil {
				d.Logger.Warn("failed to read stats from redis, using memory",
					logger.Error(err))
			} else {
				resp.Source = "redis"
				resp.Events = counts
			}
		}

		for _, c := range resp.Events {
			resp.Total += c.Count
		}
		if resp.Events == nil {
			resp.Events = []domain.EventCount{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
