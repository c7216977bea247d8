package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Sliding-window limiter shared across instances. Fails open when Redis is
// unreachable so analytics reads never hard-depend on the cache tier.
func RedisRateLimit(redisClient *redis.Client, rps int, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = "unknown"
		}

		key := fmt.Sprintf("rate_limit:%s", clientIP)
		ctx := context.Background()

		luaScript := `
			local key = KEYS[1]
			local window = tonumber(ARGV[1])
			local limit = tonumber(ARGV[2])
			local now = tonumber(ARGV[3])

			redis.call('ZREMRANGEBYSCORE', key, 0, now - window)

			local current = redis.call('ZCARD', key)

			if current < limit then
				redis.call('ZADD', key, now, now)
				redis.call('EXPIRE', key, window)
				return {1, limit - current - 1}
			else
				return {0, 0}
			end
		`

		window := time.Duration(burst) * time.Second / time.Duration(rps)
		now := time.Now().Unix()

		result, err := redisClient.Eval(ctx, luaScript, []string{key},
			int(window.Seconds()), burst, now).Result()
		if err != nil {
			c.Next() // fail open
			return
		}

		results, ok := result.([]interface{})
		if !ok || len(results) < 2 {
			c.Next() // fail open
			return
		}
		allowed := results[0].(int64)
		remaining := results[1].(int64)

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", burst))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", now+int64(window.Seconds())))

		if allowed == 0 {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": int(window.Seconds()),
			})
			return
		}

		c.Next()
	}
}

// HybridRateLimit uses Redis when it responds to a ping and falls back to
// the in-memory limiter otherwise.
func HybridRateLimit(redisClient *redis.Client, rps int, burst int) gin.HandlerFunc {
	memoryRateLimit := RateLimit(rps, burst)

	return func(c *gin.Context) {
		ctx := context.Background()
		_, err := redisClient.Ping(ctx).Result()
		if err != nil {
			memoryRateLimit(c)
			return
		}
		RedisRateLimit(redisClient, rps, burst)(c)
	}
}
