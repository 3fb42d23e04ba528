package booking

import (
	"context"
	"testing"
	"time"

	"scraply/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, actor string, at time.Time) error {
	args := m.Called(ctx, id, status, actor, at)
	return args.Error(0)
}

func TestService_CreateBooking_StartsPending(t *testing.T) {
	repo := new(mockBookingRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)

	b, err := service.CreateBooking(context.Background(), 7, "user@example.com", CreateBookingRequest{
		RecycleItem:      "Laptop",
		RecycleItemPrice: 3500,
		Facility:         "GreenCycle Hub",
		PickupDate:       time.Now().AddDate(0, 0, 3),
		PickupTime:       "10:00",
		FullName:         "Test User",
		Address:          "14 Hill Road",
		Phone:            "+91 98765 43210",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, int64(7), b.UserID)
	repo.AssertExpectations(t)
}

func TestService_CreateBooking_NegativePrice(t *testing.T) {
	repo := new(mockBookingRepo)
	service := NewService(repo)

	_, err := service.CreateBooking(context.Background(), 7, "user@example.com", CreateBookingRequest{
		RecycleItem:      "Laptop",
		RecycleItemPrice: -1,
	})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_ForwardStep(t *testing.T) {
	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:     1,
		Status: domain.BookingPending,
	}, nil)
	repo.On("UpdateStatus", mock.Anything, int64(1), domain.BookingInProgress, "admin@scraply.io", mock.Anything).Return(nil)

	service := NewService(repo)

	b, err := service.UpdateStatus(context.Background(), 1, "admin@scraply.io", "in-progress")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingInProgress, b.Status)
	assert.Equal(t, "admin@scraply.io", b.StatusBy)
	assert.NotNil(t, b.StatusAt)
	repo.AssertExpectations(t)
}

func TestService_UpdateStatus_SkipRejected(t *testing.T) {
	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:     1,
		Status: domain.BookingPending,
	}, nil)

	service := NewService(repo)

	// pending -> completed skips in-progress
	_, err := service.UpdateStatus(context.Background(), 1, "admin@scraply.io", "completed")

	assert.ErrorIs(t, err, ErrInvalidTransition)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_ReversalRejected(t *testing.T) {
	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, int64(2)).Return(&domain.Booking{
		ID:     2,
		Status: domain.BookingInProgress,
	}, nil)

	service := NewService(repo)

	_, err := service.UpdateStatus(context.Background(), 2, "admin@scraply.io", "pending")

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_UpdateStatus_CompletedIsTerminal(t *testing.T) {
	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Booking{
		ID:     3,
		Status: domain.BookingCompleted,
	}, nil)

	service := NewService(repo)

	_, err := service.UpdateStatus(context.Background(), 3, "admin@scraply.io", "in-progress")

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_UpdateStatus_UnknownStatus(t *testing.T) {
	repo := new(mockBookingRepo)
	service := NewService(repo)

	_, err := service.UpdateStatus(context.Background(), 1, "admin@scraply.io", "cancelled")

	assert.ErrorIs(t, err, ErrUnknownStatus)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo)

	_, err := service.UpdateStatus(context.Background(), 99, "admin@scraply.io", "in-progress")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_GetBooking_OwnerOnly(t *testing.T) {
	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:     1,
		UserID: 7,
		Status: domain.BookingPending,
	}, nil)

	service := NewService(repo)

	_, err := service.GetBooking(context.Background(), 8, domain.RoleUser, 1)
	assert.ErrorIs(t, err, ErrForbidden)

	b, err := service.GetBooking(context.Background(), 8, domain.RoleAdmin, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), b.ID)
}
