package mocks

import (
	"context"

	"github.com/dave-vazquez/lambda-posts/internal/domain"
	"github.com/dave-vazquez/lambda-posts/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockPostStore implements store.PostStore for testing
type MockPostStore struct {
	GetFn     func(ctx context.Context) ([]domain.Post, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Post, error)
	InsertFn  func(ctx context.Context, post *domain.Post) (*domain.Post, error)
	UpdateFn  func(ctx context.Context, id int64, post *domain.Post) (*domain.Post, error)
	RemoveFn  func(ctx context.Context, id int64) (*domain.Post, error)
}

var _ store.PostStore = (*MockPostStore)(nil)

func (m *MockPostStore) Get(ctx context.Context) ([]domain.Post, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx)
	}
	return []domain.Post{}, nil
}

func (m *MockPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrPostNotFound
}

func (m *MockPostStore) Insert(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, post)
	}
	created := *post
	created.ID = 1
	return &created, nil
}

func (m *MockPostStore) Update(ctx context.Context, id int64, post *domain.Post) (*domain.Post, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, post)
	}
	updated := *post
	updated.ID = id
	return &updated, nil
}

func (m *MockPostStore) Remove(ctx context.Context, id int64) (*domain.Post, error) {
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, id)
	}
	return nil, store.ErrPostNotFound
}

// TestifyMockPostStore is a mock of store.PostStore interface for use with testify/mock
type TestifyMockPostStore struct {
	mock.Mock
}

var _ store.PostStore = (*TestifyMockPostStore)(nil)

func (m *TestifyMockPostStore) Get(ctx context.Context) ([]domain.Post, error) {
	args := m.Called(ctx)
	if posts, ok := args.Get(0).([]domain.Post); ok {
		return posts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	return postArg(args, 0), args.Error(1)
}

func (m *TestifyMockPostStore) Insert(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	args := m.Called(ctx, post)
	return postArg(args, 0), args.Error(1)
}

func (m *TestifyMockPostStore) Update(ctx context.Context, id int64, post *domain.Post) (*domain.Post, error) {
	args := m.Called(ctx, id, post)
	return postArg(args, 0), args.Error(1)
}

func (m *TestifyMockPostStore) Remove(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	return postArg(args, 0), args.Error(1)
}

func postArg(args mock.Arguments, i int) *domain.Post {
	if post, ok := args.Get(i).(*domain.Post); ok {
		return post
	}
	return nil
}
