package mocks

import (
	"context"

	"github.com/dave-vazquez/lambda-posts/internal/domain"
	"github.com/dave-vazquez/lambda-posts/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	GetFn          func(ctx context.Context) ([]domain.User, error)
	GetByIDFn      func(ctx context.Context, id int64) (*domain.User, error)
	InsertFn       func(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateFn       func(ctx context.Context, id int64, user *domain.User) (*domain.User, error)
	RemoveFn       func(ctx context.Context, id int64) (*domain.User, error)
	GetUserPostsFn func(ctx context.Context, userID int64) ([]domain.Post, error)
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Get(ctx context.Context) ([]domain.User, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx)
	}
	return []domain.User{}, nil
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, user)
	}
	created := *user
	created.ID = 1
	return &created, nil
}

func (m *MockUserStore) Update(ctx context.Context, id int64, user *domain.User) (*domain.User, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, user)
	}
	updated := *user
	updated.ID = id
	return &updated, nil
}

func (m *MockUserStore) Remove(ctx context.Context, id int64) (*domain.User, error) {
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) GetUserPosts(ctx context.Context, userID int64) ([]domain.Post, error) {
	if m.GetUserPostsFn != nil {
		return m.GetUserPostsFn(ctx, userID)
	}
	return []domain.Post{}, nil
}
