package api

import (
	"log/slog"
	"time"

	"storefront/transactions/appcontext"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the response header carrying the per-request id.
const RequestIDHeader = "X-Request-Id"

// RequestID tags every request with a uuid, exposes it on the response, and
// carries a request-scoped logger through the request context.
func RequestID(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Writer.Header().Set(RequestIDHeader, requestID)

		requestLogger := logger.With("request_id", requestID)
		ctx := appcontext.WithLogger(c.Request.Context(), requestLogger)
		c.Request = c.Request.WithContext(ctx)

		requestLogger.InfoContext(ctx, "HTTP request started",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"client_ip", c.ClientIP(),
		)

		c.Next()

		requestLogger.InfoContext(ctx, "HTTP request finished",
			"status_code", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
