package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/Apurer/go-users-api/internal/users/domain"
	"github.com/Apurer/go-users-api/internal/users/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory user persistence adapter. It assigns
// surrogate ids the way the database would and backs the API when no
// Postgres DSN is configured, as well as the application-level tests.
type Repository struct {
	mu     sync.RWMutex
	users  map[int64]*domain.User
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{users: map[int64]*domain.User{}}
}

func (r *Repository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	clone := cloneUser(user)
	clone.ID = r.nextID
	r.users[clone.ID] = clone
	return cloneUser(clone), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneUser(user), nil
}

func (r *Repository) Update(_ context.Context, id int64, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return nil, ports.ErrNotFound
	}
	clone := cloneUser(user)
	clone.ID = id
	r.users[id] = clone
	return cloneUser(clone), nil
}

// Delete is idempotent: removing an unknown id succeeds.
func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		list = append(list, cloneUser(user))
	}
	return list, nil
}

func cloneUser(user *domain.User) *domain.User {
	clone := *user
	if user.Phone != nil {
		phone := *user.Phone
		clone.Phone = &phone
	}
	if user.Picture != nil {
		picture := *user.Picture
		clone.Picture = &picture
	}
	return &clone
}
