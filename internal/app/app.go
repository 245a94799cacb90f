package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/sharelink/internal/analytics"
	"github.com/MrSnakeDoc/sharelink/internal/config"
	"github.com/MrSnakeDoc/sharelink/internal/deeplink"
	"github.com/MrSnakeDoc/sharelink/internal/domain"
	"github.com/MrSnakeDoc/sharelink/internal/httpserver"
	"github.com/MrSnakeDoc/sharelink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
	"github.com/MrSnakeDoc/sharelink/internal/redis"
	"github.com/MrSnakeDoc/sharelink/internal/scheduler"
	"github.com/MrSnakeDoc/sharelink/internal/sources/profile"
	redisstore "github.com/MrSnakeDoc/sharelink/internal/store/redis"
	"github.com/MrSnakeDoc/sharelink/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	recorder    *analytics.RedisRecorder
	reloader    *scheduler.ProfileReloader
}

// LinkBuilder builds the deep-link builder from the SHARELINK_*_ENDPOINT settings.
func LinkBuilder(cfg *config.Config) *deeplink.Builder {
	return deeplink.New(deeplink.Endpoints{
		Mobile: cfg.MobileEndpoint,
		Web:    cfg.WebEndpoint,
		Direct: cfg.DirectEndpoint,
	}, deeplink.NewClassifier(cfg.MobileTokens))
}

// LoadProfile returns the profile at path, or the built-in one when path is empty.
func LoadProfile(path string) (domain.EventProfile, error) {
	if path == "" {
		return domain.DefaultProfile(), nil
	}
	return profile.LoadFile(path)
}

// New wires the HTTP service. Redis is optional: when it is not configured or
// unreachable, analytics stay in memory and Prometheus.
func New(ctx context.Context, cfg *config.Config, loggerClient logger.Logger) (*App, error) {
	initial, err := LoadProfile(cfg.ProfileFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	holder := profile.NewHolder(initial)

	// Analytics sinks
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promRecorder, err := analytics.NewPrometheusRecorder(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	memory := analytics.NewMemoryCounter()
	recorders := []analytics.Recorder{
		memory,
		promRecorder,
		analytics.NewLogRecorder(loggerClient.Named("analytics")),
	}

	var redisClient *goredis.Client
	var store *redisstore.Store
	var redisRecorder *analytics.RedisRecorder
	if cfg.RedisEnabled() {
		redisClient, err = redis.New(ctx, redis.OptionsFromConfig(cfg), loggerClient)
		if err != nil {
			loggerClient.Warn("running without redis, analytics counts will not be persisted",
				logger.Error(err))
		} else {
			store = redisstore.NewStore(redisClient)
			redisRecorder = analytics.NewRedisRecorder(store, loggerClient, cfg.AnalyticsTimeout)
			recorders = append(recorders, redisRecorder)
		}
	} else {
		loggerClient.Info("redis not configured, analytics kept in memory")
	}

	// Profile reloader (only when a file is configured)
	var reloader *scheduler.ProfileReloader
	var reloadTrigger chan struct{}
	var reloadStatus deps.ReloadStatus
	if cfg.ProfileFile != "" {
		reloadTrigger = make(chan struct{}, 1)
		reloader = scheduler.NewProfileReloader(
			cfg.ProfileFile,
			holder,
			loggerClient.Named("profile"),
			cfg.ReloadInterval,
			reloadTrigger,
		)
		reloadStatus = reloader.Status
	} else {
		loggerClient.Info("profile file not configured, serving the built-in profile")
	}

	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		TimeNow:       time.Now,
		AllowedHosts:  cfg.AllowedHosts,
		AllowedCIDRS:  cfg.AllowedCIDRS,
		TrustProxy:    cfg.TrustProxy,
		CORSOrigins:   cfg.CORSOrigins,
		Profiles:      holder,
		Links:         LinkBuilder(cfg),
		Recorder:      analytics.Multi(recorders...),
		Memory:        memory,
		Store:         store,
		ProfileFile:   cfg.ProfileFile,
		ReloadTrigger: reloadTrigger,
		ReloadStatus:  reloadStatus,
		RateBurst:     cfg.RateBurst,
		RatePerMin:    cfg.RatePerMin,
		Metrics:       promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	}

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      httpserver.New(cfg, loggerClient, d),
		redisClient: redisClient,
		recorder:    redisRecorder,
		reloader:    reloader,
	}, nil
}

func (a *App) Run(parent context.Context) error {
	a.logger.Infof("🚀 Starting sharelink %s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("sharelink %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.reloader != nil {
		if err := a.reloader.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profile reloader: %w", err)
		}
		a.logger.Info("profile reloader started",
			logger.Duration("interval", a.cfg.ReloadInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.reloader != nil {
		a.reloader.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	// Pending counts are flushed before the client goes away.
	if a.recorder != nil {
		a.recorder.Close()
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ sharelink stopped cleanly")
	return nil
}
