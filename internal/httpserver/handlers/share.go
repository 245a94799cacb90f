package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/sharelink/internal/launch"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
)

// Share redirects to a WhatsApp share link pre-filled with the event message.
// The endpoint depends on the caller's User-Agent.
func Share(d deps.Deps) http.HandlerFunc {
	return redirect(d, domain.ActionShare)
}

// Contact redirects to a direct chat with the organisers.
func Contact(d deps.Deps) http.HandlerFunc {
	return redirect(d, domain.ActionContact)
}

func redirect(d deps.Deps, action domain.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := launch.Resolve(d.Links, d.Profiles.Current(), action, r.UserAgent())
		if t.Fallback {
			d.Logger.Warn("share message fell back to minimal text", logger.Error(t.Problem))
		}
		d.Recorder.Record(r.Context(), t.Event)

		d.Logger.Debug("redirect",
			logger.String("action", string(t.Action)),
			logger.String("platform", string(t.Link.Platform)))
		w.Header().Set("Cache-Control", "no-store")
		http.Redirect(w, r, t.Link.URL, http.StatusFound)
	}
}
