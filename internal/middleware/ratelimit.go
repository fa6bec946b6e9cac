package middleware

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/hotelboard/internal/domain/dto"
	"github.com/guttosm/hotelboard/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Limiter decides whether one more request of key fits in the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// client represents a rate-limited client with request count and window start.
type client struct {
	windowStart time.Time
	count       int
}

// MemoryLimiter is a fixed-window limiter local to one process.
type MemoryLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	limit     int
	window    time.Duration
	now       func() time.Time
	lastSweep time.Time
}

// NewMemoryLimiter allows limit requests per key per window.
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		clients: make(map[string]*client),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.window {
		l.sweep(now)
	}

	cl, ok := l.clients[key]
	if !ok || now.Sub(cl.windowStart) >= l.window {
		cl = &client{windowStart: now}
		l.clients[key] = cl
	}
	cl.count++
	return cl.count <= l.limit, nil
}

// sweep drops clients whose window has ended. Called with mu held, at most
// once per window.
func (l *MemoryLimiter) sweep(now time.Time) {
	for key, cl := range l.clients {
		if now.Sub(cl.windowStart) >= l.window {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
}

// redisCmdable is the subset of the go-redis client used by RedisLimiter.
type redisCmdable interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisLimiter is a fixed-window limiter shared by every instance pointing
// at the same Redis.
type RedisLimiter struct {
	store  redisCmdable
	limit  int64
	window time.Duration
	prefix string
}

// NewRedisLimiter allows limit requests per key per window, counted in Redis.
func NewRedisLimiter(store redisCmdable, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{store: store, limit: int64(limit), window: window, prefix: "hotelboard:rate_limit"}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := strings.Join([]string{l.prefix, key}, ":")
	count, err := l.store.Incr(ctx, k).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := l.store.Expire(ctx, k, l.window).Err(); err != nil {
			return true, err
		}
	}
	return count <= l.limit, nil
}

// RateLimiter limits requests per client IP with the given Limiter.
//
// Behavior:
//   - If the limit is exceeded, returns HTTP 429 Too Many Requests.
//   - If the limiter itself fails (e.g. Redis unreachable), the request is
//     let through and the failure logged.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RateLimiter(middleware.NewMemoryLimiter(120, time.Minute)))
func RateLimiter(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Ctx(c.Request.Context()).Warn().Err(err).Msg("rate limiter unavailable")
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}
		c.Next()
	}
}
