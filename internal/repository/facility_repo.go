package repository

import (
	"context"
	"time"

	"scraply/internal/domain"

	"gorm.io/gorm"
)

type FacilityRepository struct {
	db *gorm.DB
}

func NewFacilityRepository(db *gorm.DB) *FacilityRepository {
	return &FacilityRepository{db: db}
}

type facilityModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;index"`
	Capacity  string    `gorm:"column:capacity"`
	Lon       float64   `gorm:"column:lon"`
	Lat       float64   `gorm:"column:lat"`
	Contact   string    `gorm:"column:contact"`
	Time      string    `gorm:"column:time"`
	Verified  bool      `gorm:"column:verified"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (facilityModel) TableName() string { return "facilities" }

func toDomainFacility(m facilityModel) *domain.Facility {
	return &domain.Facility{
		ID:        m.ID,
		Name:      m.Name,
		Capacity:  m.Capacity,
		Lon:       m.Lon,
		Lat:       m.Lat,
		Contact:   m.Contact,
		Time:      m.Time,
		Verified:  m.Verified,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *FacilityRepository) Create(ctx context.Context, f *domain.Facility) error {
	m := facilityModel{
		Name:     f.Name,
		Capacity: f.Capacity,
		Lon:      f.Lon,
		Lat:      f.Lat,
		Contact:  f.Contact,
		Time:     f.Time,
		Verified: f.Verified,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*f = *toDomainFacility(m)
	return nil
}

func (r *FacilityRepository) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	var m facilityModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainFacility(m), nil
}

func (r *FacilityRepository) List(ctx context.Context) ([]domain.Facility, error) {
	var ms []facilityModel
	tx := r.db.WithContext(ctx).Order("name ASC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Facility, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainFacility(m))
	}
	return out, nil
}
