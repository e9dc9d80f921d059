// Package middleware provides the HTTP middleware applied around the
// resource handlers: trace IDs and the authentication gates.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/harwick/shelf-api/internal/api/shared"
	"github.com/harwick/shelf-api/internal/platform/logger"
)

// Trace adds a trace ID to the request context and attaches a logger
// enriched with it. Applied early so every subsequent handler and log
// line can be correlated.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
