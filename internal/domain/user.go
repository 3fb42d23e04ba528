package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" validate:"required"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email" validate:"required,email"`
	PhoneNumber  string    `json:"phoneNumber,omitempty"`
	PasswordHash string    `json:"-"`
	Photo        string    `json:"photo,omitempty"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
