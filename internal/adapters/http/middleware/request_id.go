// Package middleware contains the HTTP middleware chain: request
// correlation, panic recovery, structured logging, CORS, rate limiting and
// Prometheus metrics.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Haleralex/epcqr/internal/adapters/http/common"
	"github.com/Haleralex/epcqr/internal/pkg/logger"
)

// RequestIDHeader is honoured when the client supplies its own ID;
// otherwise a fresh UUID is issued.
const RequestIDHeader = "X-Request-ID"

// RequestID attaches a correlation ID to the gin context, the request
// context (for the logger) and the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(common.RequestIDKey, id)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
