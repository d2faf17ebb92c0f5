package ports

import (
	"context"

	"github.com/Apurer/go-users-api/internal/users/domain"
)

// Service exposes user bounded context use cases to adapters.
type Service interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, updated *domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
