package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/sharelink/internal/launch"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
	"github.com/MrSnakeDoc/sharelink/internal/message"
)

type linksResponse struct {
	Share       domain.DeepLink    `json:"share"`
	Contact     domain.DeepLink    `json:"contact"`
	DeviceClass domain.DeviceClass `json:"device_class"`
	Fallback    bool               `json:"fallback"`
}

// Message returns the composed share message as plain text.
func Message(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg := message.Compose(d.Profiles.Current())

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if msg.Fallback() {
			w.Header().Set("X-Sharelink-Fallback", "true")
		}
		if _, err := w.Write([]byte(msg.String())); err != nil {
			d.Logger.Debug("failed to write response", logger.Error(err))
		}
	}
}

// Links returns both links without redirecting or recording analytics.
// The page can render them as plain anchors.
func Links(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := d.Profiles.Current()
		share := launch.Resolve(d.Links, p, domain.ActionShare, r.UserAgent())
		contact := launch.Resolve(d.Links, p, domain.ActionContact, "")

		resp := linksResponse{
			Share:       share.Link,
			Contact:     contact.Link,
			DeviceClass: d.Links.Classify(r.UserAgent()),
			Fallback:    share.Fallback,
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Vary", "User-Agent")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
