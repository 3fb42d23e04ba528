package auth

type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Photo       string `json:"photo"`
	// Role may be set to "admin" at creation; anything else means "user".
	Role string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the profile payload the frontend stores in its
// session. The full name is duplicated under two keys for client
// compatibility.
type LoginResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Fullname    string `json:"fullname"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
	Token       string `json:"token"`
}
