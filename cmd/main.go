package main

//
//  @title           hotelboard API
//  @version         1.0
//  @description     Owner-scoped reporting for the hotel business back-office.
//  @termsOfService  https://github.com/guttosm/hotelboard
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/hotelboard
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @securityDefinitions.apikey  BearerAuth
//  @in                          header
//  @name                        Authorization
//
//  @tag.name        dashboard
//  @tag.description Owner dashboard and revenue series
//
//  @tag.name        statistics
//  @tag.description Revenue, booking and occupancy statistics
//
//  @tag.name        hotels
//  @tag.description The owner's hotels
//
//  @tag.name        rooms
//  @tag.description Rooms of the owner's hotels
//
//  @tag.name        reviews
//  @tag.description Reviews of the owner's hotels
//
//  @tag.name        settlements
//  @tag.description Monthly settlements
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/hotelboard/config"
	_ "github.com/guttosm/hotelboard/docs" // swagger docs
	"github.com/guttosm/hotelboard/internal/app"
	"github.com/guttosm/hotelboard/internal/logger"
	"github.com/guttosm/hotelboard/internal/middleware"
	"github.com/guttosm/hotelboard/internal/seed"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., Mongo, Redis).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// logDemoTokens issues a short-lived bearer token per owner of the bundle so
// the demo data can be browsed without the auth service.
func logDemoTokens(b *seed.Bundle, cfg config.Config, ttl time.Duration) {
	for _, o := range b.Owners {
		token, err := middleware.IssueToken([]byte(cfg.Auth.JWTSecret), o.ID.Hex(), cfg.Auth.RequiredRole, ttl)
		if err != nil {
			logger.L().Error().Err(err).Str("owner", o.Email).Msg("issue demo token failed")
			continue
		}
		logger.L().Info().Str("owner", o.Email).Str("owner_id", o.ID.Hex()).Str("token", token).Msg("demo token")
	}
}

// runSeed loads a fixture bundle into MongoDB.
func runSeed(ctx context.Context, cfg config.Config, path string, force bool) error {
	b, err := seed.Load(path)
	if err != nil {
		return err
	}

	cfg.Report.Source = "live"
	_, store, cleanup, err := app.OpenSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := seed.Run(ctx, store, b, time.Now(), force); err != nil {
		return err
	}
	logDemoTokens(b, cfg, 24*time.Hour)
	return nil
}

// main is the entry point of the hotelboard application.
//
// Modes (selected via --mode flag):
//   - api:  Starts the REST API serving the business back-office reports.
//   - seed: Loads a fixture bundle (embedded demo by default) into MongoDB.
//
// Flags:
//   - --mode:     Execution mode ("api" or "seed"). Default: "api".
//   - --fixtures: Extended JSON bundle to seed. Default: embedded demo bundle.
//   - --force:    Reload a bundle even if seed_log already records it.
//   - --port:     Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or seed")
	fixtures := flag.String("fixtures", config.AppConfig.Report.FixturePath, "Extended JSON bundle to seed (empty = embedded demo)")
	force := flag.Bool("force", false, "Reload the bundle even if it was already seeded")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "seed":
		logger.L().Info().Msg("running seed")
		if err := runSeed(ctx, config.AppConfig, *fixtures, *force); err != nil {
			logger.L().Fatal().Err(err).Msg("seed failed")
		}
		logger.L().Info().Msg("seed completed successfully")

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}
		if config.AppConfig.Report.Source == "fixture" {
			if b, err := seed.Load(config.AppConfig.Report.FixturePath); err == nil {
				logDemoTokens(b, config.AppConfig, 24*time.Hour)
			}
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
