package main

import (
	"net/http"
	"time"

	"github.com/dave-vazquez/lambda-posts/internal/api"
	"github.com/dave-vazquez/lambda-posts/internal/api/docs"
	apiMiddleware "github.com/dave-vazquez/lambda-posts/internal/api/middleware"
	"github.com/dave-vazquez/lambda-posts/internal/api/shared"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const indexHTML = `<h2>Let's write some middleware!</h2>`

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.RequestLogger)
	r.Use(apiMiddleware.Recoverer)
	r.Use(apiMiddleware.CORS(app.config.CORS.AllowedOrigins))
	if rl := app.config.RateLimit; rl.RequestsPerSecond > 0 {
		limiter := apiMiddleware.NewRateLimiter(rl.RequestsPerSecond, rl.Burst, 10*time.Minute)
		r.Use(limiter.Middleware)
	}

	userHandler := api.NewUserHandler(app.userStore, app.postStore, app.logger)
	postHandler := api.NewPostHandler(app.postStore, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/users", userHandler.Routes())
		r.Mount("/posts", postHandler.Routes())
		r.Get("/docs/openapi.yaml", docs.Handler)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(indexHTML))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Resource not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	return r
}
