package pledge

import (
	"net/http"

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

// RegisterRoutes mounts the pledge endpoints on the authenticated group.
// Pledges belong to regular users; admins do not pledge.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	pledges := protected.Group("/pledge")
	pledges.Use(middleware.UserOnly())
	{
		pledges.POST("", h.Create)
		pledges.GET("/me", h.ListMine)
	}
}

// Create records a recycling pledge for the caller.
// @Summary		Make a pledge
// @Description	Records a recycling pledge and returns it with a server-assigned certificate number.
// @Tags		Pledge
// @Accept		json
// @Produce		json
// @Security	BearerAuth
// @Param		request	body	CreatePledgeRequest	true	"Pledge data"
// @Success		201	{object}	map[string]interface{} "Pledge created"
// @Failure		400	{object}	map[string]interface{} "Validation error"
// @Router		/pledge [POST]
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req CreatePledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name and a positive item count are required")
		return
	}

	p, err := h.service.CreatePledge(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to record pledge")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"pledge": p})
}

// ListMine returns the caller's pledges, newest first.
// @Summary		List my pledges
// @Tags		Pledge
// @Produce		json
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{} "Pledges"
// @Router		/pledge/me [GET]
func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetInt64("user_id")

	pledges, err := h.service.ListMyPledges(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Failed to fetch pledges")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"pledges": pledges})
}
