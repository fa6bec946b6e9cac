package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/hotelboard/internal/logger"
	"github.com/rs/zerolog"
)

// RequestLogger is a Gin middleware that logs one "http_request" line per
// request with method, path, status, latency and, once Auth ran, the owner.
//
// The entry is written through the request-scoped logger installed by
// RequestID, so it carries the request_id field.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
//
// Example log output:
//
//	{"level":"info","request_id":"123e...","method":"GET","path":"/api/business/dashboard/stats","status":200,"latency_ms":15,"message":"http_request"}
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		log := logger.Ctx(c.Request.Context())

		var ev *zerolog.Event
		switch {
		case status >= 500:
			ev = log.Error()
		case status >= 400:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		if query != "" {
			ev = ev.Str("query", query)
		}
		if owner := toString(c.Value(OwnerIDKey)); owner != "" {
			ev = ev.Str("owner_id", owner)
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}
		ev.Str("method", method).
			Str("path", path).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
