package application

import (
	"context"
	"errors"

	"github.com/Apurer/go-users-api/internal/users/domain"
	"github.com/Apurer/go-users-api/internal/users/ports"
)

// Service exposes user bounded context use cases. Every operation issues
// exactly one repository call; there is no multi-step workflow to wrap in
// a transaction.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	if err := user.Validate(); err != nil {
		return nil, mapError(err)
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, mapError(err)
	}
	return created, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

func (s *Service) UpdateUser(ctx context.Context, id int64, updated *domain.User) (*domain.User, error) {
	if updated == nil {
		return nil, errors.New("user is nil")
	}
	if err := updated.Validate(); err != nil {
		return nil, mapError(err)
	}
	user, err := s.repo.Update(ctx, id, updated)
	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

// DeleteUser removes a user by id. Deleting an id with no matching row is
// not an error.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return users, nil
}

var _ ports.Service = (*Service)(nil)
