package facility

import (
	"context"
	"errors"

	"scraply/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	facilities FacilityRepository
}

func NewService(facilities FacilityRepository) *Service {
	return &Service{facilities: facilities}
}

// Create stores a submitted facility. Submissions start unverified until
// an admin reviews them.
func (s *Service) Create(ctx context.Context, req CreateFacilityRequest) (*domain.Facility, error) {
	f := &domain.Facility{
		Name:     req.Name,
		Capacity: req.Capacity,
		Lon:      req.Lon,
		Lat:      req.Lat,
		Contact:  req.Contact,
		Time:     req.Time,
		Verified: false,
	}
	if err := s.facilities.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Facility, error) {
	f, err := s.facilities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Facility, error) {
	return s.facilities.List(ctx)
}
