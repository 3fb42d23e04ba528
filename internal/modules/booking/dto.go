package booking

import "time"

type CreateBookingRequest struct {
	RecycleItem      string    `json:"recycleItem" binding:"required"`
	RecycleItemPrice float64   `json:"recycleItemPrice" binding:"required"`
	Facility         string    `json:"facility" binding:"required"`
	PickupDate       time.Time `json:"pickupDate" binding:"required"`
	PickupTime       string    `json:"pickupTime" binding:"required"`
	FullName         string    `json:"fullName" binding:"required"`
	Address          string    `json:"address" binding:"required"`
	Phone            string    `json:"phone" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"bookStatus" binding:"required"`
}
