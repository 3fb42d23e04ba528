package booking

import (
	"context"
	"errors"
	"time"

	"scraply/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
}

func NewService(bookings BookingRepository) *Service {
	return &Service{bookings: bookings}
}

func (s *Service) CreateBooking(ctx context.Context, userID int64, userEmail string, req CreateBookingRequest) (*domain.Booking, error) {
	if req.RecycleItemPrice < 0 {
		return nil, ErrValidation
	}

	b := &domain.Booking{
		UserID:           userID,
		UserEmail:        userEmail,
		RecycleItem:      req.RecycleItem,
		RecycleItemPrice: req.RecycleItemPrice,
		Facility:         req.Facility,
		PickupDate:       req.PickupDate,
		PickupTime:       req.PickupTime,
		FullName:         req.FullName,
		Address:          req.Address,
		Phone:            req.Phone,
		Status:           domain.BookingPending,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, actorID int64, actorRole domain.UserRole, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.UserID != actorID && actorRole != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *Service) ListUserBookings(ctx context.Context, actorID int64, actorRole domain.UserRole, userID int64) ([]domain.Booking, error) {
	if userID != actorID && actorRole != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.bookings.ListByUser(ctx, userID)
}

// UpdateStatus advances the booking lifecycle. Transitions are strict:
// pending -> in-progress -> completed, one step at a time, no reversals.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, actor string, newStatus string) (*domain.Booking, error) {
	target := domain.BookingStatus(newStatus)
	switch target {
	case domain.BookingPending, domain.BookingInProgress, domain.BookingCompleted:
	default:
		return nil, ErrUnknownStatus
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !b.Status.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	if err := s.bookings.UpdateStatus(ctx, bookingID, target, actor, now); err != nil {
		return nil, err
	}

	b.Status = target
	b.StatusAt = &now
	b.StatusBy = actor
	return b, nil
}
