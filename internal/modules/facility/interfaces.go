package facility

import (
	"context"

	"scraply/internal/domain"
)

type FacilityRepository interface {
	Create(ctx context.Context, f *domain.Facility) error
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
	List(ctx context.Context) ([]domain.Facility, error)
}
