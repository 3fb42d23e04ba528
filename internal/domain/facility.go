package domain

import "time"

type Facility struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Capacity  string    `json:"capacity"`
	Lon       float64   `json:"lon"`
	Lat       float64   `json:"lat"`
	Contact   string    `json:"contact"`
	Time      string    `json:"time"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
