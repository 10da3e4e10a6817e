package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/dave-vazquez/lambda-posts/internal/domain"
	"github.com/dave-vazquez/lambda-posts/internal/platform/memory"
	"github.com/dave-vazquez/lambda-posts/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	users := memory.New().Users()

	empty, err := users.Get(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	frodo, err := users.Insert(ctx, &domain.User{Name: "Frodo"})
	require.NoError(t, err)
	sam, err := users.Insert(ctx, &domain.User{Name: "Sam"})
	require.NoError(t, err)
	assert.NotEqual(t, frodo.ID, sam.ID)

	got, err := users.GetByID(ctx, frodo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Frodo", got.Name)

	updated, err := users.Update(ctx, frodo.ID, &domain.User{Name: "Mr. Underhill"})
	require.NoError(t, err)
	assert.Equal(t, frodo.ID, updated.ID)

	all, err := users.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.User{
		{ID: frodo.ID, Name: "Mr. Underhill"},
		{ID: sam.ID, Name: "Sam"},
	}, all)

	removed, err := users.Remove(ctx, sam.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sam", removed.Name)

	_, err = users.Remove(ctx, sam.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	_, err = users.GetByID(ctx, sam.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	_, err = users.Update(ctx, sam.ID, &domain.User{Name: "x"})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserStoreRejectsInvalidUser(t *testing.T) {
	users := memory.New().Users()

	_, err := users.Insert(context.Background(), &domain.User{})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestIDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	users := memory.New().Users()

	first, err := users.Insert(ctx, &domain.User{Name: "a"})
	require.NoError(t, err)
	_, err = users.Remove(ctx, first.ID)
	require.NoError(t, err)

	second, err := users.Insert(ctx, &domain.User{Name: "b"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestRemoveUserRemovesPosts(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	users, posts := s.Users(), s.Posts()

	frodo, err := users.Insert(ctx, &domain.User{Name: "Frodo"})
	require.NoError(t, err)
	sam, err := users.Insert(ctx, &domain.User{Name: "Sam"})
	require.NoError(t, err)

	_, err = posts.Insert(ctx, &domain.Post{Text: "one", UserID: frodo.ID})
	require.NoError(t, err)
	kept, err := posts.Insert(ctx, &domain.Post{Text: "two", UserID: sam.ID})
	require.NoError(t, err)
	_, err = posts.Insert(ctx, &domain.Post{Text: "three", UserID: frodo.ID})
	require.NoError(t, err)

	frodoPosts, err := users.GetUserPosts(ctx, frodo.ID)
	require.NoError(t, err)
	assert.Len(t, frodoPosts, 2)

	_, err = users.Remove(ctx, frodo.ID)
	require.NoError(t, err)

	remaining, err := posts.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Post{*kept}, remaining)
}

func TestPostStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	posts := memory.New().Posts()

	// The user is not required to exist.
	created, err := posts.Insert(ctx, &domain.Post{Text: "hello", UserID: 3})
	require.NoError(t, err)
	assert.Equal(t, &domain.Post{ID: 1, Text: "hello", UserID: 3}, created)

	updated, err := posts.Update(ctx, created.ID, &domain.Post{Text: "edited", UserID: 4})
	require.NoError(t, err)
	assert.Equal(t, &domain.Post{ID: created.ID, Text: "edited", UserID: 4}, updated)

	_, err = posts.Update(ctx, created.ID, &domain.Post{Text: "edited"})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	removed, err := posts.Remove(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", removed.Text)

	_, err = posts.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
	_, err = posts.Remove(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := memory.New().Users().Get(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	users := memory.New().Users()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := users.Insert(ctx, &domain.User{Name: fmt.Sprintf("user-%d", i)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := users.Get(ctx)
	require.NoError(t, err)
	require.Len(t, all, n)
	for i := 1; i < n; i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}
}
