package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-users-api/internal/users/domain"
)

var ErrNotFound = errors.New("user not found")

// Repository persists users. Delete is idempotent: removing an id that
// never existed reports success.
type Repository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.User, error)
}
