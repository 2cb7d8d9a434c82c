package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SecondHemisphere/portal-actividades/pkg/redis"
	"github.com/SecondHemisphere/portal-actividades/pkg/response"
)

// RateLimit limits each client IP to limit requests per window on the
// wrapped routes. A nil or failing Redis degrades to letting requests
// through.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "Demasiadas solicitudes, intenta más tarde")
			c.Abort()
			return
		}

		c.Next()
	}
}
