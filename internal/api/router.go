package api

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/hotelboard/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterOptions carries the cross-cutting settings of the HTTP surface.
//
// Fields:
//   - Limiter: per-client throttle; nil disables rate limiting.
//   - JWTSecret: HMAC key used to verify bearer tokens.
//   - RequiredRole: role claim the business routes demand; empty accepts any role.
//   - AllowedOrigins: CORS origins of the business front-end.
type RouterOptions struct {
	Limiter        middleware.Limiter
	JWTSecret      []byte
	RequiredRole   string
	AllowedOrigins []string
}

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, CORS, RateLimiter).
//   - Adds request timeout handling (10 seconds).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the authenticated business routes (/api/business).
//
// Note:
//   - Health, readiness and metrics endpoints are registered in app.InitializeApp().
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
	)
	if len(opts.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{"GET", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	if opts.Limiter != nil {
		router.Use(middleware.RateLimiter(opts.Limiter))
	}

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Business back-office ─────────────────────
	business := router.Group("/api/business", middleware.Auth(opts.JWTSecret, opts.RequiredRole))
	{
		business.GET("/dashboard/stats", handler.DashboardStats)
		business.GET("/dashboard/revenue-chart", handler.DashboardRevenueChart)

		business.GET("/statistics", handler.Statistics)
		business.GET("/statistics/revenue/chart", handler.StatisticsRevenueChart)

		business.GET("/hotels", handler.ListHotels)
		business.GET("/hotels/:id", handler.GetHotel)
		business.GET("/hotels/:id/rooms", handler.ListRooms)
		business.GET("/rooms/:id", handler.GetRoom)

		business.GET("/reviews", handler.ListReviews)
		business.GET("/reviews/:id", handler.GetReview)

		business.GET("/settlements", handler.ListSettlements)
	}

	return router
}
