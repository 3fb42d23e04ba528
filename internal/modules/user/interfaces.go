package user

import (
	"context"

	"scraply/internal/domain"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) error
}
