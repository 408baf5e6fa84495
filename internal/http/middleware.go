package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adilbekov/recipebox-api/internal/domain"
	"github.com/adilbekov/recipebox-api/internal/metrics"
	"github.com/adilbekov/recipebox-api/internal/security"
)

const (
	authUIDKey   = "uid"
	requestIDKey = "X-Request-ID"
)

// RequestID propagates the inbound request ID or mints one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDKey)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDKey, id)
		c.Next()
	}
}

// Auth reads the session cookie and stores the token's uid in the context.
// Failures keep the 200 + {success:false} envelope contract.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, err := c.Cookie(sessionCookie)
		if err != nil || tok == "" {
			respondFail(c, "Not authorized, login again")
			c.Abort()
			return
		}
		claims, err := security.ParseSession(secret, tok)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidClaim) {
				respondFail(c, "Invalid token, login again")
			} else {
				respondFail(c, "Not authorized, login again")
			}
			c.Abort()
			return
		}
		c.Set(authUIDKey, claims.UID)
		c.Next()
	}
}

// Metrics records per-route request counts, latency and in-flight gauge.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.InFlight.Inc()
		start := time.Now()
		c.Next()
		metrics.InFlight.Dec()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestsTotal.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.ReqDuration.
			WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
