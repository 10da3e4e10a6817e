package api

import (
	"log/slog"
	"net/http"

	"github.com/dave-vazquez/lambda-posts/internal/api/shared"
	"github.com/dave-vazquez/lambda-posts/internal/domain"
	"github.com/dave-vazquez/lambda-posts/internal/platform/logger"
	"github.com/dave-vazquez/lambda-posts/internal/store"
)

// UserHandler handles the /users routes.
type UserHandler struct {
	users  store.UserStore
	posts  store.PostStore
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users store.UserStore, posts store.PostStore, logger *slog.Logger) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		users:  users,
		posts:  posts,
		logger: logger.With(slog.String("component", "user_handler")),
	}
}

// List handles GET /users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.Get(r.Context())
	if err != nil {
		respondStoreError(w, r, err, MsgUserNotFound, "The users information could not be retrieved.")
		return
	}

	shared.RespondSuccess(w, r, http.StatusOK, keyUsers, users)
}

// Get handles GET /users/{id}. The user was resolved by ValidateUserID.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := fromContext[*domain.User](w, r)
	if !ok {
		return
	}

	shared.RespondSuccess(w, r, http.StatusOK, keyUser, user)
}

// ListPosts handles GET /users/{id}/posts
func (h *UserHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	user, ok := fromContext[*domain.User](w, r)
	if !ok {
		return
	}

	posts, err := h.users.GetUserPosts(r.Context(), user.ID)
	if err != nil {
		respondStoreError(w, r, err, MsgUserNotFound, "The user's posts could not be retrieved.")
		return
	}

	shared.RespondSuccess(w, r, http.StatusOK, keyPosts, posts)
}

// Create handles POST /users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	body, ok := fromContext[*NewUserBody](w, r)
	if !ok {
		return
	}

	user, err := domain.NewUser(body.Name)
	if err == nil {
		user, err = h.users.Insert(r.Context(), user)
	}
	if err != nil {
		respondStoreError(w, r, err, MsgUserNotFound, "There was an error while saving the user.")
		return
	}

	log.Info("user created", slog.Int64("user_id", user.ID))
	shared.RespondSuccess(w, r, http.StatusCreated, keyUser, user)
}

// CreatePost handles POST /users/{id}/posts. The owner is taken from the
// path and is not checked for existence here.
func (h *UserHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	body, ok := fromContext[*NewPostBody](w, r)
	if !ok {
		return
	}

	userID, ok := getPathID(r, "id")
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, MsgUserNotFound)
		return
	}

	post, err := domain.NewPost(body.Text, userID)
	if err == nil {
		post, err = h.posts.Insert(r.Context(), post)
	}
	if err != nil {
		respondStoreError(w, r, err, MsgUserNotFound, "There was an error while saving the post.")
		return
	}

	log.Info("post created",
		slog.Int64("post_id", post.ID),
		slog.Int64("user_id", post.UserID))
	shared.RespondSuccess(w, r, http.StatusCreated, keyPost, post)
}

// Update handles PUT /users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	existing, ok := fromContext[*domain.User](w, r)
	if !ok {
		return
	}
	body, ok := fromContext[*NewUserBody](w, r)
	if !ok {
		return
	}

	user, err := domain.NewUser(body.Name)
	if err == nil {
		user, err = h.users.Update(r.Context(), existing.ID, user)
	}
	if err != nil {
		respondStoreError(w, r, err, MsgUserNotFound, "The user information could not be modified.")
		return
	}

	log.Info("user updated", slog.Int64("user_id", user.ID))
	shared.RespondSuccess(w, r, http.StatusOK, keyUser, user)
}

// Delete handles DELETE /users/{id} and returns the removed user.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	existing, ok := fromContext[*domain.User](w, r)
	if !ok {
		return
	}

	user, err := h.users.Remove(r.Context(), existing.ID)
	if err != nil {
		respondStoreError(w, r, err, MsgUserNotFound, "The user could not be removed.")
		return
	}

	log.Info("user removed", slog.Int64("user_id", user.ID))
	shared.RespondSuccess(w, r, http.StatusOK, keyUser, user)
}
