package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/hotelboard/config"
	"github.com/guttosm/hotelboard/internal/api"
	"github.com/guttosm/hotelboard/internal/logger"
	"github.com/guttosm/hotelboard/internal/metrics"
	"github.com/guttosm/hotelboard/internal/middleware"
	"github.com/guttosm/hotelboard/internal/seed"
	"github.com/guttosm/hotelboard/internal/service"
	"github.com/guttosm/hotelboard/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

// redisOpener parses REDIS_URL into a client; overridden in tests.
var redisOpener = func(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

// OpenSource builds the ReportSource selected by cfg.Report.Source.
//
// Behavior:
//   - "fixture": loads the fixture bundle (cfg.Report.FixturePath or the
//     embedded demo), rebases it to today and serves it from memory.
//   - "live": connects to MongoDB.
//
// Returns the source, the Mongo source when live (nil otherwise, for seeding),
// and a cleanup function releasing connections.
func OpenSource(ctx context.Context, cfg config.Config) (storage.ReportSource, *storage.MongoSource, func(), error) {
	switch cfg.Report.Source {
	case "fixture":
		b, err := seed.Load(cfg.Report.FixturePath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to load fixtures: %w", err)
		}
		return storage.NewMemorySource(b.Rebased(time.Now())), nil, func() {}, nil
	case "live", "":
		client, err := mongoOpener(ctx, cfg)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to initialize mongo: %w", err)
		}
		src := storage.NewMongoSource(client.Database(cfg.Mongo.Database))
		cleanup := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		}
		return src, src, cleanup, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown report source %q", cfg.Report.Source)
	}
}

// newLimiter picks the Redis limiter when REDIS_URL is set, else the in-memory one.
func newLimiter(cfg config.Config) (middleware.Limiter, func(), error) {
	if cfg.RateLimit.PerMinute <= 0 {
		return nil, func() {}, nil
	}
	if cfg.RateLimit.RedisURL == "" {
		return middleware.NewMemoryLimiter(cfg.RateLimit.PerMinute, time.Minute), func() {}, nil
	}
	client, err := redisOpener(cfg.RateLimit.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	return middleware.NewRedisLimiter(client, cfg.RateLimit.PerMinute, time.Minute), func() { _ = client.Close() }, nil
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Opens the report source (MongoDB or fixtures).
//   - Registers Prometheus collectors and the report metrics.
//   - Builds the report and business services and the HTTP handler layer.
//   - Configures the Gin router with auth, CORS and rate limiting.
//   - Registers health, readiness and metrics endpoints.
//   - Provides a cleanup function to close resources (Mongo, Redis).
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig
	ctx := context.Background()

	policy, err := service.ParseOccupancyPolicy(cfg.Report.OccupancyPolicy)
	if err != nil {
		return nil, nil, err
	}

	src, _, closeSource, err := OpenSource(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	limiter, closeLimiter, err := newLimiter(cfg)
	if err != nil {
		closeSource()
		return nil, nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	loc := cfg.Report.Location()
	reports := service.NewReportService(src, service.Options{
		Policy:      policy,
		Location:    loc,
		RecentLimit: cfg.Report.RecentLimit,
		Metrics:     metrics.NewReportMetrics(reg),
	})
	business := service.NewBusinessService(src)

	handler := api.NewHandler(reports, business, loc)
	router := api.NewRouter(handler, api.RouterOptions{
		Limiter:        limiter,
		JWTSecret:      []byte(cfg.Auth.JWTSecret),
		RequiredRole:   cfg.Auth.RequiredRole,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	api.NewHealthHandler(src.Ping, reg).Register(router)

	logger.L().Info().
		Str("source", cfg.Report.Source).
		Str("occupancy_policy", string(policy)).
		Str("timezone", loc.String()).
		Bool("redis_rate_limit", cfg.RateLimit.RedisURL != "").
		Msg("report engine configured")

	cleanup := func() {
		closeLimiter()
		closeSource()
	}

	return router, cleanup, nil
}
