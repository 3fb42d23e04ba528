package pledge

import (
	"context"

	"scraply/internal/domain"
)

type PledgeRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Pledge) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Pledge, error)
}
