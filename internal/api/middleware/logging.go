package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dave-vazquez/lambda-posts/internal/platform/logger"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs method, path, status, bytes written and duration for
// every request once it has been served. It uses the request-scoped logger,
// so it must run after the trace middleware.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		logger.FromContext(r.Context()).LogAttrs(r.Context(), level, "request completed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
			slog.Time("started_at", start.UTC()))
	})
}
