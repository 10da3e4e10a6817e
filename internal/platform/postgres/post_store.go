package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dave-vazquez/lambda-posts/internal/domain"
	"github.com/dave-vazquez/lambda-posts/internal/platform/logger"
	"github.com/dave-vazquez/lambda-posts/internal/store"
)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the PostStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// WithTx returns a store that runs its queries inside tx.
func (s *PostgresPostStore) WithTx(tx *sql.Tx) *PostgresPostStore {
	return &PostgresPostStore{
		db:     tx,
		logger: s.logger,
	}
}

// Get implements store.PostStore.Get
func (s *PostgresPostStore) Get(ctx context.Context) ([]domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, text, user_id FROM posts ORDER BY id`)
	if err != nil {
		log.Error("failed to list posts", slog.String("error", err.Error()))
		return nil, store.NewStoreError("post", "get", "failed to list posts", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	return scanPosts(rows)
}

// GetByID implements store.PostStore.GetByID
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var p domain.Post
	err := s.db.QueryRowContext(ctx,
		`SELECT id, text, user_id FROM posts WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Text, &p.UserID)
	if err != nil {
		mapped := notFound(err, store.ErrPostNotFound)
		if store.IsNotFoundError(mapped) {
			log.Debug("post not found", slog.Int64("post_id", id))
			return nil, mapped
		}
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, store.NewStoreError("post", "get_by_id", "failed to get post", mapped)
	}

	return &p, nil
}

// Insert implements store.PostStore.Insert
// A post for a user that does not exist fails the foreign key and returns an
// error wrapping store.ErrInvalidEntity.
func (s *PostgresPostStore) Insert(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during insert", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	var created domain.Post
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO posts (text, user_id) VALUES ($1, $2) RETURNING id, text, user_id`,
		post.Text,
		post.UserID,
	).Scan(&created.ID, &created.Text, &created.UserID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during post insert",
				slog.String("error", err.Error()),
				slog.Int64("user_id", post.UserID))
			return nil, fmt.Errorf("%w: user with ID %d not found",
				store.ErrInvalidEntity, post.UserID)
		}
		log.Error("failed to insert post",
			slog.String("error", err.Error()),
			slog.Int64("user_id", post.UserID))
		return nil, store.NewStoreError("post", "insert", "failed to insert post", MapError(err))
	}

	log.Info("post inserted",
		slog.Int64("post_id", created.ID),
		slog.Int64("user_id", created.UserID))
	return &created, nil
}

// Update implements store.PostStore.Update
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) Update(
	ctx context.Context,
	id int64,
	post *domain.Post,
) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	var updated domain.Post
	err := s.db.QueryRowContext(ctx,
		`UPDATE posts SET text = $1, user_id = $2 WHERE id = $3 RETURNING id, text, user_id`,
		post.Text,
		post.UserID,
		id,
	).Scan(&updated.ID, &updated.Text, &updated.UserID)
	if err != nil {
		mapped := notFound(err, store.ErrPostNotFound)
		if store.IsNotFoundError(mapped) {
			return nil, mapped
		}
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, store.NewStoreError("post", "update", "failed to update post", mapped)
	}

	log.Info("post updated", slog.Int64("post_id", id))
	return &updated, nil
}

// Remove implements store.PostStore.Remove
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) Remove(ctx context.Context, id int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var removed domain.Post
	err := s.db.QueryRowContext(ctx,
		`DELETE FROM posts WHERE id = $1 RETURNING id, text, user_id`,
		id,
	).Scan(&removed.ID, &removed.Text, &removed.UserID)
	if err != nil {
		mapped := notFound(err, store.ErrPostNotFound)
		if store.IsNotFoundError(mapped) {
			return nil, mapped
		}
		log.Error("failed to remove post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, store.NewStoreError("post", "remove", "failed to remove post", mapped)
	}

	log.Info("post removed", slog.Int64("post_id", id))
	return &removed, nil
}

// scanPosts drains rows into a non-nil slice so empty results encode as [].
func scanPosts(rows *sql.Rows) ([]domain.Post, error) {
	posts := make([]domain.Post, 0)
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Text, &p.UserID); err != nil {
			return nil, store.NewStoreError("post", "scan", "failed to scan post", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("post", "scan", "failed to iterate posts", err)
	}
	return posts, nil
}
