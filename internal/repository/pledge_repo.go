package repository

import (
	"context"
	"time"

	"scraply/internal/domain"

	"gorm.io/gorm"
)

type PledgeRepository struct {
	db *gorm.DB
}

func NewPledgeRepository(db *gorm.DB) *PledgeRepository {
	return &PledgeRepository{db: db}
}

type pledgeModel struct {
	ID                int64     `gorm:"column:id;primaryKey"`
	UserID            int64     `gorm:"column:user_id;index"`
	Name              string    `gorm:"column:name"`
	ItemCount         int       `gorm:"column:item_count"`
	CertificateNumber string    `gorm:"column:certificate_number;uniqueIndex"`
	CreatedAt         time.Time `gorm:"column:created_at"`
}

func (pledgeModel) TableName() string { return "pledges" }

func toDomainPledge(m pledgeModel) *domain.Pledge {
	return &domain.Pledge{
		ID:                m.ID,
		UserID:            m.UserID,
		Name:              m.Name,
		ItemCount:         m.ItemCount,
		CertificateNumber: m.CertificateNumber,
		CreatedAt:         m.CreatedAt,
	}
}

func (r *PledgeRepository) Create(ctx context.Context, p *domain.Pledge) error {
	m := pledgeModel{
		UserID:            p.UserID,
		Name:              p.Name,
		ItemCount:         p.ItemCount,
		CertificateNumber: p.CertificateNumber,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPledge(m)
	return nil
}

func (r *PledgeRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Pledge, error) {
	var ms []pledgeModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Pledge, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainPledge(m))
	}
	return out, nil
}
