package middleware

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vietanh2810/event-management-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/event-management-api/internal/config"
)

const rateLimitKeyPrefix = "ratelimit"

// tokenBucketScript refills continuously at rate tokens per second up to
// capacity and takes one token per call. It returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local rate = tonumber(ARGV[3])
local ttl_seconds = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'last_ms')
local tokens = tonumber(state[1])
local last = tonumber(state[2])
if tokens == nil or last == nil then
  tokens = capacity
  last = now_ms
end

local elapsed = math.max(0, now_ms - last)
tokens = math.min(capacity, tokens + (elapsed * rate / 1000))

local allowed = 0
local retry_ms = 0
if tokens >= 1 then
  allowed = 1
  tokens = tokens - 1
else
  retry_ms = math.ceil((1 - tokens) * 1000 / rate)
end

redis.call('HSET', key, 'tokens', tokens, 'last_ms', now_ms)
redis.call('EXPIRE', key, ttl_seconds)

return {allowed, math.floor(tokens), retry_ms}
`)

type RateLimiter struct {
	rdb  *redis.Client
	conf *config.RateLimitConfig
	now  func() time.Time
}

func NewRateLimiter(rdb *redis.Client, conf *config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		rdb:  rdb,
		conf: conf,
		now:  time.Now,
	}
}

// Limit applies a per client IP and route token bucket. It lets requests
// through when disabled, when redis is not configured or when redis fails.
func (l *RateLimiter) Limit() gin.HandlerFunc {
	if l == nil || l.rdb == nil || l.conf == nil || !l.conf.Enabled || l.conf.Rate <= 0 || l.conf.Capacity <= 0 {
		return func(ctx *gin.Context) { ctx.Next() }
	}

	ttl := int64(math.Ceil(float64(l.conf.Capacity)/l.conf.Rate)) + 1

	return func(ctx *gin.Context) {
		key := rateLimitKey(ctx.ClientIP(), ctx.Request.Method, ctx.FullPath())

		vals, err := tokenBucketScript.Run(ctx.Request.Context(), l.rdb, []string{key},
			l.now().UnixMilli(), l.conf.Capacity, l.conf.Rate, ttl).Int64Slice()
		if err != nil || len(vals) != 3 {
			zap.L().Warn("rate limiter unavailable", zap.String("key", key), zap.Error(err))
			ctx.Next()
			return
		}

		ctx.Header("X-RateLimit-Limit", strconv.Itoa(l.conf.Capacity))
		ctx.Header("X-RateLimit-Remaining", strconv.FormatInt(vals[1], 10))

		if vals[0] != 1 {
			secs := int64(math.Ceil(float64(vals[2]) / 1000))
			ctx.Header("Retry-After", strconv.FormatInt(secs, 10))
			response.RenderErr(ctx, response.ErrTooManyRequests())
			return
		}

		ctx.Next()
	}
}

func rateLimitKey(ip, method, route string) string {
	if ip == "" {
		ip = "unknown"
	}
	return fmt.Sprintf("%s:%s:%s %s", rateLimitKeyPrefix, ip, method, route)
}
