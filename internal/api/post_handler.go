package api

import (
	"log/slog"
	"net/http"

	"github.com/dave-vazquez/lambda-posts/internal/api/shared"
	"github.com/dave-vazquez/lambda-posts/internal/domain"
	"github.com/dave-vazquez/lambda-posts/internal/platform/logger"
	"github.com/dave-vazquez/lambda-posts/internal/store"
)

// PostHandler handles the /posts routes.
type PostHandler struct {
	posts  store.PostStore
	logger *slog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(posts store.PostStore, logger *slog.Logger) *PostHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PostHandler")
	}

	return &PostHandler{
		posts:  posts,
		logger: logger.With(slog.String("component", "post_handler")),
	}
}

// List handles GET /posts
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.Get(r.Context())
	if err != nil {
		respondStoreError(w, r, err, MsgPostNotFound, "The posts information could not be retrieved.")
		return
	}

	shared.RespondSuccess(w, r, http.StatusOK, keyPosts, posts)
}

// Get handles GET /posts/{id}. The post was resolved by ValidatePostID.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, ok := fromContext[*domain.Post](w, r)
	if !ok {
		return
	}

	shared.RespondSuccess(w, r, http.StatusOK, keyPost, post)
}

// Update handles PUT /posts/{id}
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	existing, ok := fromContext[*domain.Post](w, r)
	if !ok {
		return
	}
	body, ok := fromContext[*UpdatePostBody](w, r)
	if !ok {
		return
	}

	post, err := domain.NewPost(body.Text, body.UserID)
	if err == nil {
		post, err = h.posts.Update(r.Context(), existing.ID, post)
	}
	if err != nil {
		respondStoreError(w, r, err, MsgPostNotFound, "The post information could not be modified.")
		return
	}

	log.Info("post updated", slog.Int64("post_id", post.ID))
	shared.RespondSuccess(w, r, http.StatusOK, keyPost, post)
}

// Delete handles DELETE /posts/{id} and returns the removed post.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	existing, ok := fromContext[*domain.Post](w, r)
	if !ok {
		return
	}

	post, err := h.posts.Remove(r.Context(), existing.ID)
	if err != nil {
		respondStoreError(w, r, err, MsgPostNotFound, "The post could not be removed.")
		return
	}

	log.Info("post removed", slog.Int64("post_id", post.ID))
	shared.RespondSuccess(w, r, http.StatusOK, keyPost, post)
}
