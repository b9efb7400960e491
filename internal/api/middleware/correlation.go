// Package middleware contains the gin middleware shared across API routes.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CorrelationIDKey is the context key under which the correlation id is
// stored for handlers and response helpers.
const CorrelationIDKey = "correlation_id"

// CorrelationIDHeader is the request and response header carrying the id.
const CorrelationIDHeader = "X-Correlation-ID"

// CorrelationID propagates the caller's correlation id or generates one.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(CorrelationIDHeader)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}

		c.Set(CorrelationIDKey, correlationID)
		c.Header(CorrelationIDHeader, correlationID)
		c.Next()
	}
}
