package booking

import (
	"errors"
	"net/http"
	"strconv"

	"scraply/internal/domain"
	"scraply/internal/middleware"
	"scraply/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	bookings := protected.Group("/booking")
	{
		bookings.POST("", middleware.UserOnly(), h.Create)
		bookings.GET("", middleware.AdminOnly(), h.List)
		bookings.GET("/user/:userId", h.ListByUser)
		bookings.GET("/:id", h.Get)
		bookings.PUT("/:id", middleware.AdminOnly(), h.UpdateStatus)
	}
}

// Create submits a recycling pickup booking.
// @Summary		Create booking
// @Description	Creates a pickup booking for the authenticated user. The facility is referenced by name; the status starts at "pending".
// @Tags		Bookings
// @Security	BearerAuth
// @Param		request	body	CreateBookingRequest	true	"Booking data"
// @Success		201	{object}	map[string]interface{} "Booking created"
// @Failure		400	{object}	map[string]interface{} "Validation error"
// @Router		/booking [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	var userEmail string
	if u, exists := c.Get("user"); exists {
		userEmail = u.(*domain.User).Email
	}

	b, err := h.service.CreateBooking(c.Request.Context(), userID, userEmail, req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking data")
			return
		}
		response.Error(c, http.StatusInternalServerError, "BOOKING_FAILED", "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

// List returns all bookings for the admin dashboard.
// @Summary		List bookings
// @Tags		Bookings
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{} "All bookings"
// @Router		/booking [GET]
func (h *Handler) List(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

// ListByUser returns a user's bookings for the tracking page.
// @Summary		List bookings by user
// @Tags		Bookings
// @Security	BearerAuth
// @Param		userId	path	int	true	"User ID"
// @Success		200	{object}	map[string]interface{} "User's bookings"
// @Failure		403	{object}	map[string]interface{} "Not the owner"
// @Router		/booking/user/{userId} [GET]
func (h *Handler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	bookings, err := h.service.ListUserBookings(
		c.Request.Context(),
		c.GetInt64("user_id"),
		domain.UserRole(c.GetString("role")),
		userID,
	)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

// Get returns a single booking.
// @Summary		Get booking
// @Tags		Bookings
// @Security	BearerAuth
// @Param		id	path	int	true	"Booking ID"
// @Success		200	{object}	map[string]interface{} "Booking"
// @Failure		404	{object}	map[string]interface{} "Unknown booking"
// @Router		/booking/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.GetBooking(
		c.Request.Context(),
		c.GetInt64("user_id"),
		domain.UserRole(c.GetString("role")),
		id,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
		default:
			response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to get booking")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

// UpdateStatus advances a booking through its lifecycle.
// @Summary		Update booking status
// @Description	Moves the booking one step forward: pending to in-progress, or in-progress to completed. Skips and reversals are rejected.
// @Tags		Bookings
// @Security	BearerAuth
// @Param		id	path	int	true	"Booking ID"
// @Param		request	body	UpdateStatusRequest	true	"Target status"
// @Success		200	{object}	map[string]interface{} "Updated booking"
// @Failure		409	{object}	map[string]interface{} "Illegal transition"
// @Router		/booking/{id} [PUT]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	actor := c.GetString("role")
	if u, exists := c.Get("user"); exists {
		actor = u.(*domain.User).Username
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, actor, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrUnknownStatus):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown booking status")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking status can only move forward")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update booking")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}
