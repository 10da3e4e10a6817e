package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS returns middleware that answers preflight requests and sets the
// Access-Control headers for the given origins. "*" allows any origin.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{TraceIDHeader},
		MaxAge:         300,
	})
	return c.Handler
}
