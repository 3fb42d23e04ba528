package booking

import (
	"context"
	"time"

	"scraply/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, actor string, at time.Time) error
}
