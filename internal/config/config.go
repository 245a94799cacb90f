package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	ProfileFile    string        // path to profile.yaml (optional, empty = built-in profile)
	ReloadInterval time.Duration // interval to reload profile.yaml (default: 1h)

	// Links
	MobileTokens   []string // user-agent fragments classified as mobile (empty = defaults)
	MobileEndpoint string   // share endpoint for mobile devices
	WebEndpoint    string   // share endpoint for desktop devices
	DirectEndpoint string   // base for direct chats

	// Feedback
	ToastDuration time.Duration // auto-dismiss delay of notifications (default: 3s)
	FallbackDelay time.Duration // delay before same-context navigation (default: 1s)

	// Redis (optional, empty RedisAddr = in-memory analytics only)
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts
	AnalyticsTimeout      time.Duration // per-event write timeout (ex: 500ms)

	// Rate limiting on /share and /contact
	RateBurst  int // tokens per client IP
	RatePerMin int // refill per client IP per minute

	CORSOrigins  []string // origins allowed to call the API (empty = any)
	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict access to specific IP (e.g. "1.2.3.4, 5.6.7.8")
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("SHARELINK_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("SHARELINK_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("SHARELINK_LOG_LEVEL", "info"),
		PrettyLog: mustBool("SHARELINK_PRETTY_LOG", true),

		// Profile
		ProfileFile:    getenv("SHARELINK_PROFILE_FILE", ""),
		ReloadInterval: mustDuration("SHARELINK_RELOAD_INTERVAL", time.Hour),

		// Links
		MobileTokens:   splitAndTrim(getenv("SHARELINK_MOBILE_TOKENS", "")),
		MobileEndpoint: getenv("SHARELINK_MOBILE_ENDPOINT", "https://api.whatsapp.com/send"),
		WebEndpoint:    getenv("SHARELINK_WEB_ENDPOINT", "https://web.whatsapp.com/send"),
		DirectEndpoint: getenv("SHARELINK_DIRECT_ENDPOINT", "https://wa.me"),

		// Feedback
		ToastDuration: mustDuration("SHARELINK_TOAST_DURATION", 3*time.Second),
		FallbackDelay: mustDuration("SHARELINK_FALLBACK_DELAY", time.Second),

		// Redis settings
		RedisAddr:             getenv("SHARELINK_REDIS_ADDR", ""),
		RedisUser:             getenv("SHARELINK_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("SHARELINK_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("SHARELINK_REDIS_PASSWORD", ""),
		RedisDB:               mustInt("SHARELINK_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),
		AnalyticsTimeout:      mustDuration("SHARELINK_ANALYTICS_TIMEOUT", 500*time.Millisecond),

		// Rate limiting
		RateBurst:  getenvInt("SHARELINK_RATE_BURST", 10),
		RatePerMin: getenvInt("SHARELINK_RATE_PER_MIN", 30),

		// Access restrictions
		CORSOrigins:  splitAndTrim(getenv("SHARELINK_CORS_ORIGINS", "")),
		AllowedHosts: splitAndTrim(getenv("SHARELINK_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("SHARELINK_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("SHARELINK_TRUST_PROXY", true),
	}

	// Validate Redis password configuration
	if cfg.RedisEnabled() && cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: SHARELINK_REDIS_PASSWORD is required when SHARELINK_REDIS_PASSWORD_REQUIRED=true")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", cfg.Redacted())
	}

	return cfg
}

// RedisEnabled reports whether analytics should be persisted to Redis.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// Redacted returns a copy safe to print.
func (c *Config) Redacted() Config {
	cfgCopy := *c
	if cfgCopy.RedisPassword != "" {
		cfgCopy.RedisPassword = "***REDACTED***"
	}
	if cfgCopy.RedisUser != "" {
		cfgCopy.RedisUser = "***REDACTED***"
	}
	return cfgCopy
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// mustInt panics on a malformed value instead of silently using def.
func mustInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid integer value for %s: %s", key, v))
	}
	return i
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
