package auth

import (
	"errors"
	"net/http"
	"time"

	"scraply/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

// NewHandler creates a new auth handler with injected service
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

// Register creates a new platform account.
// @Summary		Register a user
// @Description	Creates a new account. Email and username must both be unique; the role defaults to "user" and may be set to "admin" at creation.
// @Tags		Auth
// @Param		request	body	RegisterRequest	true	"Registration data"
// @Success		201	{object}	map[string]interface{} "User registered"
// @Failure		400	{object}	map[string]interface{} "Validation error"
// @Failure		409	{object}	map[string]interface{} "Email or username already taken"
// @Router		/auth/register [POST]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "Email already exists")
		case errors.Is(err, ErrUsernameExists):
			response.Error(c, http.StatusConflict, "USERNAME_EXISTS", "Username already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register user")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user": user,
	})
}

// Login authenticates a user and issues a bearer token.
// @Summary		Log in
// @Description	Looks the account up by email and verifies the password. Returns the profile payload together with a token valid for 15 days.
// @Tags		Auth
// @Param		request	body	LoginRequest	true	"Credentials"
// @Success		200	{object}	map[string]interface{} "Profile payload with token"
// @Failure		401	{object}	map[string]interface{} "Wrong password"
// @Failure		404	{object}	map[string]interface{} "Unknown email"
// @Router		/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		}
		return
	}

	response.Success(c, http.StatusOK, LoginResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Fullname:    user.FullName,
		FullName:    user.FullName,
		PhoneNumber: user.PhoneNumber,
		Role:        string(user.Role),
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   user.UpdatedAt.Format(time.RFC3339),
		Token:       token,
	})
}
