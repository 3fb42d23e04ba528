package repository

import (
	"context"
	"time"

	"scraply/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID               int64      `gorm:"column:id;primaryKey"`
	UserID           int64      `gorm:"column:user_id;index"`
	UserEmail        *string    `gorm:"column:user_email"`
	RecycleItem      string     `gorm:"column:recycle_item"`
	RecycleItemPrice float64    `gorm:"column:recycle_item_price"`
	Facility         *string    `gorm:"column:facility"`
	PickupDate       time.Time  `gorm:"column:pickup_date"`
	PickupTime       string     `gorm:"column:pickup_time"`
	FullName         string     `gorm:"column:full_name"`
	Address          string     `gorm:"column:address"`
	Phone            string     `gorm:"column:phone"`
	Status           string     `gorm:"column:book_status"`
	StatusAt         *time.Time `gorm:"column:book_status_at"`
	StatusBy         *string    `gorm:"column:book_status_by"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var email, facility, statusBy string
	if m.UserEmail != nil {
		email = *m.UserEmail
	}
	if m.Facility != nil {
		facility = *m.Facility
	}
	if m.StatusBy != nil {
		statusBy = *m.StatusBy
	}

	return &domain.Booking{
		ID:               m.ID,
		UserID:           m.UserID,
		UserEmail:        email,
		RecycleItem:      m.RecycleItem,
		RecycleItemPrice: m.RecycleItemPrice,
		Facility:         facility,
		PickupDate:       m.PickupDate,
		PickupTime:       m.PickupTime,
		FullName:         m.FullName,
		Address:          m.Address,
		Phone:            m.Phone,
		Status:           domain.BookingStatus(m.Status),
		StatusAt:         m.StatusAt,
		StatusBy:         statusBy,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var email, facility, statusBy *string
	if b.UserEmail != "" {
		v := b.UserEmail
		email = &v
	}
	if b.Facility != "" {
		v := b.Facility
		facility = &v
	}
	if b.StatusBy != "" {
		v := b.StatusBy
		statusBy = &v
	}

	return bookingModel{
		ID:               b.ID,
		UserID:           b.UserID,
		UserEmail:        email,
		RecycleItem:      b.RecycleItem,
		RecycleItemPrice: b.RecycleItemPrice,
		Facility:         facility,
		PickupDate:       b.PickupDate,
		PickupTime:       b.PickupTime,
		FullName:         b.FullName,
		Address:          b.Address,
		Phone:            b.Phone,
		Status:           string(b.Status),
		StatusAt:         b.StatusAt,
		StatusBy:         statusBy,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, actor string, at time.Time) error {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"book_status":    string(status),
			"book_status_at": at,
			"book_status_by": actor,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
