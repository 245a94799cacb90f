package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
}

// Readyz reports ready once a valid profile is being served.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		ready := d.Profiles != nil && d.Profiles.Current().Validate() == nil
		if !ready {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}

		_ = json.NewEncoder(w).Encode(readyzResponse{Ready: ready})
	}
}
