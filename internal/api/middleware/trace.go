// Package middleware holds HTTP middleware applied to the whole router.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gameforge/gameforge-api/internal/api/shared"
	"github.com/gameforge/gameforge-api/internal/platform/logger"
)

// Trace assigns each request a trace ID and installs a trace-scoped logger
// in the request context. Apply it before any handler that logs.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.Default().With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
