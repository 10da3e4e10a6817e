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

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx returns a store that runs its queries inside tx.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) *PostgresUserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}

// Get implements store.UserStore.Get
func (s *PostgresUserStore) Get(ctx context.Context) ([]domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM users ORDER BY id`)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "get", "failed to list users", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, store.NewStoreError("user", "get", "failed to scan user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("user", "get", "failed to iterate users", err)
	}

	log.Debug("users listed", slog.Int("count", len(users)))
	return users, nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var u domain.User
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Name)
	if err != nil {
		mapped := notFound(err, store.ErrUserNotFound)
		if store.IsNotFoundError(mapped) {
			log.Debug("user not found", slog.Int64("user_id", id))
			return nil, mapped
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, store.NewStoreError("user", "get_by_id", "failed to get user", mapped)
	}

	return &u, nil
}

// Insert implements store.UserStore.Insert
// Returns an error wrapping store.ErrInvalidEntity if the user fails validation.
func (s *PostgresUserStore) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during insert", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	var created domain.User
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO users (name) VALUES ($1) RETURNING id, name`,
		user.Name,
	).Scan(&created.ID, &created.Name)
	if err != nil {
		log.Error("failed to insert user", slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "insert", "failed to insert user", MapError(err))
	}

	log.Info("user inserted", slog.Int64("user_id", created.ID))
	return &created, nil
}

// Update implements store.UserStore.Update
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) Update(
	ctx context.Context,
	id int64,
	user *domain.User,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	var updated domain.User
	err := s.db.QueryRowContext(ctx,
		`UPDATE users SET name = $1 WHERE id = $2 RETURNING id, name`,
		user.Name,
		id,
	).Scan(&updated.ID, &updated.Name)
	if err != nil {
		mapped := notFound(err, store.ErrUserNotFound)
		if store.IsNotFoundError(mapped) {
			return nil, mapped
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, store.NewStoreError("user", "update", "failed to update user", mapped)
	}

	log.Info("user updated", slog.Int64("user_id", id))
	return &updated, nil
}

// Remove implements store.UserStore.Remove
// The user's posts are removed by the ON DELETE CASCADE foreign key.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) Remove(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var removed domain.User
	err := s.db.QueryRowContext(ctx,
		`DELETE FROM users WHERE id = $1 RETURNING id, name`,
		id,
	).Scan(&removed.ID, &removed.Name)
	if err != nil {
		mapped := notFound(err, store.ErrUserNotFound)
		if store.IsNotFoundError(mapped) {
			return nil, mapped
		}
		log.Error("failed to remove user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, store.NewStoreError("user", "remove", "failed to remove user", mapped)
	}

	log.Info("user removed", slog.Int64("user_id", id))
	return &removed, nil
}

// GetUserPosts implements store.UserStore.GetUserPosts
func (s *PostgresUserStore) GetUserPosts(ctx context.Context, userID int64) ([]domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, text, user_id FROM posts WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		log.Error("failed to list user posts",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, store.NewStoreError("user", "get_user_posts", "failed to list posts", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	return scanPosts(rows)
}
