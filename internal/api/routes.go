package api

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the /users sub-router with each route's validation chain.
func (h *UserHandler) Routes() chi.Router {
	r := chi.NewRouter()
	validateID := ValidateUserID(h.users)

	r.Get("/", h.List)
	r.With(ValidateUser).Post("/", h.Create)
	r.With(validateID).Get("/{id}", h.Get)
	r.With(validateID).Get("/{id}/posts", h.ListPosts)
	r.With(ValidatePost).Post("/{id}/posts", h.CreatePost)
	r.With(validateID, ValidateUser).Put("/{id}", h.Update)
	r.With(validateID).Delete("/{id}", h.Delete)

	return r
}

// Routes returns the /posts sub-router with each route's validation chain.
func (h *PostHandler) Routes() chi.Router {
	r := chi.NewRouter()
	validateID := ValidatePostID(h.posts)

	r.Get("/", h.List)
	r.With(validateID).Get("/{id}", h.Get)
	r.With(validateID, ValidateRequestBody).Put("/{id}", h.Update)
	r.With(validateID).Delete("/{id}", h.Delete)

	return r
}
