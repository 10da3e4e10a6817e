package store

import (
	"context"

	"github.com/dave-vazquez/lambda-posts/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Implementations must be safe for concurrent use.
type UserStore interface {
	// Get returns every user ordered by ID.
	Get(ctx context.Context) ([]domain.User, error)

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Insert validates and saves a new user, returning it with its assigned ID.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)

	// Update replaces the stored fields of the user with the given ID and
	// returns the updated user.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, id int64, user *domain.User) (*domain.User, error)

	// Remove deletes the user with the given ID and returns it as it was
	// before deletion. The user's posts are removed with it.
	// Returns ErrUserNotFound if the user does not exist.
	Remove(ctx context.Context, id int64) (*domain.User, error)

	// GetUserPosts returns the posts written by the given user ordered by ID.
	// An unknown user yields an empty list, not an error.
	GetUserPosts(ctx context.Context, userID int64) ([]domain.Post, error)
}
