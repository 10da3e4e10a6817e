package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dave-vazquez/lambda-posts/internal/domain"
	"github.com/dave-vazquez/lambda-posts/internal/store"
)

// Store holds users and posts in maps guarded by a single lock, so removing a
// user and its posts happens atomically.
type Store struct {
	mu         sync.RWMutex
	users      map[int64]domain.User
	posts      map[int64]domain.Post
	nextUserID int64
	nextPostID int64
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		users:      make(map[int64]domain.User),
		posts:      make(map[int64]domain.Post),
		nextUserID: 1,
		nextPostID: 1,
	}
}

// Users returns a store.UserStore view of s.
func (s *Store) Users() *UserStore { return &UserStore{s: s} }

// Posts returns a store.PostStore view of s.
func (s *Store) Posts() *PostStore { return &PostStore{s: s} }

// UserStore implements store.UserStore on top of a Store.
type UserStore struct{ s *Store }

// PostStore implements store.PostStore on top of a Store.
type PostStore struct{ s *Store }

var (
	_ store.UserStore = (*UserStore)(nil)
	_ store.PostStore = (*PostStore)(nil)
)

func (u *UserStore) Get(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	users := make([]domain.User, 0, len(u.s.users))
	for _, user := range u.s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (u *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	user, ok := u.s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

func (u *UserStore) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	created := domain.User{ID: u.s.nextUserID, Name: user.Name}
	u.s.nextUserID++
	u.s.users[created.ID] = created
	return &created, nil
}

func (u *UserStore) Update(ctx context.Context, id int64, user *domain.User) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	if _, ok := u.s.users[id]; !ok {
		return nil, store.ErrUserNotFound
	}
	updated := domain.User{ID: id, Name: user.Name}
	u.s.users[id] = updated
	return &updated, nil
}

// Remove deletes the user and every post it owns.
func (u *UserStore) Remove(ctx context.Context, id int64) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	user, ok := u.s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	delete(u.s.users, id)
	for postID, post := range u.s.posts {
		if post.UserID == id {
			delete(u.s.posts, postID)
		}
	}
	return &user, nil
}

func (u *UserStore) GetUserPosts(ctx context.Context, userID int64) ([]domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	return u.s.sortedPosts(func(p domain.Post) bool { return p.UserID == userID }), nil
}

func (p *PostStore) Get(ctx context.Context) ([]domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	return p.s.sortedPosts(func(domain.Post) bool { return true }), nil
}

func (p *PostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	post, ok := p.s.posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	return &post, nil
}

// Insert saves the post without checking that its user exists.
func (p *PostStore) Insert(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	created := domain.Post{ID: p.s.nextPostID, Text: post.Text, UserID: post.UserID}
	p.s.nextPostID++
	p.s.posts[created.ID] = created
	return &created, nil
}

func (p *PostStore) Update(ctx context.Context, id int64, post *domain.Post) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	if _, ok := p.s.posts[id]; !ok {
		return nil, store.ErrPostNotFound
	}
	updated := domain.Post{ID: id, Text: post.Text, UserID: post.UserID}
	p.s.posts[id] = updated
	return &updated, nil
}

func (p *PostStore) Remove(ctx context.Context, id int64) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	post, ok := p.s.posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	delete(p.s.posts, id)
	return &post, nil
}

// sortedPosts must be called with mu held.
func (s *Store) sortedPosts(keep func(domain.Post) bool) []domain.Post {
	posts := make([]domain.Post, 0)
	for _, post := range s.posts {
		if keep(post) {
			posts = append(posts, post)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts
}
