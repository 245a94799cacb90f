package deps

import (
	"net/http"
	"time"

	"github.com/MrSnakeDoc/sharelink/internal/analytics"
	"github.com/MrSnakeDoc/sharelink/internal/deeplink"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
	"github.com/MrSnakeDoc/sharelink/internal/sources/profile"
	redisstore "github.com/MrSnakeDoc/sharelink/internal/store/redis"
)

// ReloadStatus reports the state of the profile reloader.
type ReloadStatus func() (lastReload time.Time, lastErr error)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time // for testing, defaults to time.Now
	AllowedHosts []string         // Host headers allowed to access the admin endpoints
	AllowedCIDRS []string         // IPs allowed to access readyz/infra/stats/reload
	TrustProxy   bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)
	CORSOrigins  []string         // page origins allowed to call the API

	Profiles *profile.Holder          // current event profile
	Links    *deeplink.Builder        // WhatsApp link builder
	Recorder analytics.Recorder       // fan-out of every analytics sink
	Memory   *analytics.MemoryCounter // in-process counts, always present
	Store    *redisstore.Store        // nil when Redis is disabled or down

	ProfileFile   string        // empty when serving the built-in profile
	ReloadTrigger chan struct{} // nil when there is no file to reload
	ReloadStatus  ReloadStatus  // nil when there is no file to reload

	RateBurst  int
	RatePerMin int

	Metrics http.Handler // Prometheus exposition, nil disables /metrics
}
