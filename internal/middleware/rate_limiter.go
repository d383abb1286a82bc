package middleware

import (
	"fmt"
	"net/http"
	"time"

	"pricewatch/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RateLimiter is a fixed-window per-IP limiter backed by Redis (INCR +
// EXPIRE on the first hit of a window). Fails open: if Redis is down the
// request proceeds.
func RateLimiter(rdb *redis.Client, name string, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", name, c.ClientIP())

		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Warn().Err(err).Str("limiter", name).Msg("rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(c.Request.Context(), key, window)
		}

		if count > limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierror.New("rate_limited", "Muitas requisições. Tente novamente em instantes."))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter throttles credential guessing: 20 attempts per minute per IP.
func LoginRateLimiter(rdb *redis.Client) gin.HandlerFunc {
	return RateLimiter(rdb, "login", 20, time.Minute)
}
