package auth

import (
	"context"

	"eventspace/internal/domain"
)

// UserRepositoryInterface narrows the user repository to the methods the
// auth service uses.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}
