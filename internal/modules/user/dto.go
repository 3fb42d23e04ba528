package user

type CreateUserRequest struct {
	Username    string `json:"username" binding:"required"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Photo       string `json:"photo"`
	Role        string `json:"role"`
}

type UpdateUserRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Photo       string `json:"photo"`
	Password    string `json:"password"`
}
