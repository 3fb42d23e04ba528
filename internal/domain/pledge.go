package domain

import "time"

// Pledge records a recycling pledge made by a user. The certificate itself
// is rendered client-side; the server keeps the number and the facts.
type Pledge struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"userId"`
	Name              string    `json:"name" validate:"required"`
	ItemCount         int       `json:"itemCount"`
	CertificateNumber string    `json:"certificateNumber"`
	CreatedAt         time.Time `json:"createdAt"`
}
