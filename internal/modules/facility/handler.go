package facility

import (
	"errors"
	"net/http"
	"strconv"

	"scraply/internal/pkg/response"
	"scraply/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public facility surface. Submission is open,
// matching the original public submission form.
func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	facilities := v1.Group("/facility")
	{
		facilities.POST("", h.Create)
		facilities.GET("", h.List)
		facilities.GET("/:id", h.Get)
	}
}

// Create submits a facility.
// @Summary		Submit facility
// @Tags		Facilities
// @Param		request	body	CreateFacilityRequest	true	"Facility data"
// @Success		201	{object}	map[string]interface{} "Facility created, unverified"
// @Router		/facility [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fieldErrors := validator.Validate(&req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid facility data", fieldErrors)
		return
	}

	f, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create facility")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"facility": f})
}

// List returns all facilities for the map and booking form.
// @Summary		List facilities
// @Tags		Facilities
// @Success		200	{object}	map[string]interface{} "All facilities"
// @Router		/facility [GET]
func (h *Handler) List(c *gin.Context) {
	facilities, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list facilities")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"facilities": facilities})
}

// Get returns a single facility.
// @Summary		Get facility
// @Tags		Facilities
// @Param		id	path	int	true	"Facility ID"
// @Success		200	{object}	map[string]interface{} "Facility"
// @Failure		404	{object}	map[string]interface{} "Unknown facility"
// @Router		/facility/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid facility ID")
		return
	}

	f, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Facility not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to get facility")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"facility": f})
}
