package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingInProgress BookingStatus = "in-progress"
	BookingCompleted  BookingStatus = "completed"
)

// CanTransitionTo reports whether target is the legal next step from s.
// Transitions only move forward one step at a time.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	switch s {
	case BookingPending:
		return target == BookingInProgress
	case BookingInProgress:
		return target == BookingCompleted
	default:
		return false
	}
}

type Booking struct {
	ID               int64   `json:"id"`
	UserID           int64   `json:"userId"`
	UserEmail        string  `json:"userEmail,omitempty"`
	RecycleItem      string  `json:"recycleItem" validate:"required"`
	RecycleItemPrice float64 `json:"recycleItemPrice"`
	// Facility is referenced by name, matching the booking form. There is
	// no foreign key; facility names must stay unique for lookups to work.
	Facility   string        `json:"facility"`
	PickupDate time.Time     `json:"pickupDate"`
	PickupTime string        `json:"pickupTime"`
	FullName   string        `json:"fullName" validate:"required"`
	Address    string        `json:"address" validate:"required"`
	Phone      string        `json:"phone" validate:"required"`
	Status     BookingStatus `json:"bookStatus"`
	StatusAt   *time.Time    `json:"bookStatusAt,omitempty"`
	StatusBy   string        `json:"bookStatusBy,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}
