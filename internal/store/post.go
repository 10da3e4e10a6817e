package store

import (
	"context"

	"github.com/dave-vazquez/lambda-posts/internal/domain"
)

// PostStore defines the interface for post data persistence.
// Implementations must be safe for concurrent use.
type PostStore interface {
	// Get returns every post ordered by ID.
	Get(ctx context.Context) ([]domain.Post, error)

	// GetByID retrieves a post by ID.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// Insert validates and saves a new post, returning it with its assigned ID.
	// Whether the referenced user must exist is up to the implementation.
	Insert(ctx context.Context, post *domain.Post) (*domain.Post, error)

	// Update replaces the text and owner of the post with the given ID and
	// returns the updated post.
	// Returns ErrPostNotFound if the post does not exist.
	Update(ctx context.Context, id int64, post *domain.Post) (*domain.Post, error)

	// Remove deletes the post with the given ID and returns it as it was
	// before deletion.
	// Returns ErrPostNotFound if the post does not exist.
	Remove(ctx context.Context, id int64) (*domain.Post, error)
}
