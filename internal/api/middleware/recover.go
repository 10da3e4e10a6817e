package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/dave-vazquez/lambda-posts/internal/api/shared"
	"github.com/dave-vazquez/lambda-posts/internal/platform/logger"
	"github.com/dave-vazquez/lambda-posts/internal/redact"
)

// Recoverer turns a panic anywhere below it into a 500 failure envelope and
// logs the redacted panic value. http.ErrAbortHandler is re-raised so the
// server can abort the connection as usual.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				// ALLOW-PANIC
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("panic recovered",
				slog.String("panic", redact.String(fmt.Sprint(rec))),
				slog.String("stack", redact.String(string(debug.Stack()))),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path))

			shared.RespondWithError(w, r, http.StatusInternalServerError,
				"An unexpected error occurred.")
		}()

		next.ServeHTTP(w, r)
	})
}
