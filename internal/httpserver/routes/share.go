package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/sharelink/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/sharelink/internal/httpserver/mw"
)

func init() { Register(registerShare) }

// share and contact draw from the same per-IP bucket
func registerShare(r chi.Router, d deps.Deps) {
	limited := r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateBurst,
		RefillPerIPPerMin: d.RatePerMin,
		MaxEntries:        10000,
		TrustProxy:        d.TrustProxy,
	}))
	limited.Get("/share", handlers.Share(d))
	limited.Get("/contact", handlers.Contact(d))
}
