package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
)

type componentStatus struct {
	OK         bool   `json:"ok"`
	Source     string `json:"source,omitempty"`
	Links      *int   `json:"links,omitempty"`
	LastReload string `json:"last_reload,omitempty"`
	Mode       string `json:"mode,omitempty"`
	Impact     string `json:"impact,omitempty"`
	Error      string `json:"error,omitempty"`
}

type infraResponse struct {
	ServiceMode string                     `json:"service_mode"`
	Components  map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		components := map[string]componentStatus{
			"profile": checkProfile(d),
			"redis":   checkRedis(d),
			"analytics": {
				OK:   true,
				Mode: analyticsMode(d),
			},
		}

		response := infraResponse{
			ServiceMode: determineServiceMode(components),
			Components:  components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func determineServiceMode(components map[string]componentStatus) string {
	if p, ok := components["profile"]; ok && !p.OK {
		return "degraded" // serving the last good profile
	}
	if redis, ok := components["redis"]; ok && !redis.OK && redis.Mode != "disabled" {
		return "degraded" // counts only kept in memory
	}
	return "optimal"
}

func checkProfile(d deps.Deps) componentStatus {
	p := d.Profiles.Current()
	links := len(p.Links)
	status := componentStatus{OK: p.Validate() == nil, Links: &links, Source: "built-in"}

	if d.ProfileFile == "" || d.ReloadStatus == nil {
		return status
	}

	status.Source = d.ProfileFile
	status.LastReload = "never"
	lastReload, lastErr := d.ReloadStatus()
	if !lastReload.IsZero() {
		status.LastReload = lastReload.Format("2006-01-02 15:04:05")
	}
	if lastErr != nil {
		status.OK = false
		status.Impact = "serving-previous-profile"
		status.Error = lastErr.Error()
	}
	return status
}

func analyticsMode(d deps.Deps) string {
	if d.Store != nil {
		return "redis+memory+prometheus"
	}
	return "memory+prometheus"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.Store == nil {
		return componentStatus{
			OK:     false,
			Mode:   "disabled",
			Impact: "counts-not-persisted",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.Store.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "counts-not-persisted",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "counts-persisted",
	}
}
