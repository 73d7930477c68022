package http

import (
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/astro-web3/ledger-authz/internal/domain/identity"
	"github.com/astro-web3/ledger-authz/pkg/logger"
)

func loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		if status >= 500 {
			logger.ErrorContext(c.Request.Context(), "request failed",
				slog.String("method", method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Duration("duration", duration),
			)
		} else {
			logger.InfoContext(c.Request.Context(), "request completed",
				slog.String("method", method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Duration("duration", duration),
			)
		}
	}
}

// identityMiddleware resolves the Authorization header to a subject and
// stores the resolution in the request context. This runs exactly once per
// request, before any query field reads data; field resolvers only ever see
// the already-resolved value.
func identityMiddleware(resolver *identity.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			authHeader = c.GetHeader("authorization")
		}

		ctx := c.Request.Context()
		res := resolver.Resolve(ctx, authHeader)

		span := trace.SpanFromContext(ctx)
		span.SetAttributes(attribute.String("authz.state", res.State.String()))
		if res.Reason != "" {
			span.SetAttributes(attribute.String("authz.reason", res.Reason))
		}

		c.Request = c.Request.WithContext(identity.NewContext(ctx, res))
		c.Next()
	}
}
