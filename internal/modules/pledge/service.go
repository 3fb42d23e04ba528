package pledge

import (
	"context"
	"strings"

	"scraply/internal/domain"

	"github.com/google/uuid"
)

type Service struct {
	pledges PledgeRepositoryInterface
}

func NewService(pledges PledgeRepositoryInterface) *Service {
	return &Service{pledges: pledges}
}

// CreatePledge records a pledge and assigns a certificate number. The
// number is server-generated so certificates cannot be forged by replaying
// client input.
func (s *Service) CreatePledge(ctx context.Context, userID int64, req CreatePledgeRequest) (*domain.Pledge, error) {
	p := &domain.Pledge{
		UserID:            userID,
		Name:              strings.TrimSpace(req.Name),
		ItemCount:         req.ItemCount,
		CertificateNumber: uuid.NewString(),
	}
	if err := s.pledges.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListMyPledges(ctx context.Context, userID int64) ([]domain.Pledge, error) {
	return s.pledges.ListByUser(ctx, userID)
}
