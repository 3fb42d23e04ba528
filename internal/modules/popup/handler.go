package popup

import (
	"errors"
	"net/http"
	"strconv"

	"scraply/internal/domain"
	"scraply/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the routes the popup component calls without
// authentication: selection, detail and the view/click tracking pings.
func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	popups := v1.Group("/popups")
	{
		popups.GET("/active", h.GetActive)
		popups.GET("/:id", h.Get)
		popups.POST("/:id/view", h.TrackView)
		popups.POST("/:id/click", h.TrackClick)
	}
}

// RegisterAdminRoutes mounts the management CRUD behind the admin gate.
func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	popups := admin.Group("/popups")
	{
		popups.POST("", h.Create)
		popups.GET("/admin/all", h.List)
		popups.PUT("/:id", h.Update)
		popups.DELETE("/:id", h.Delete)
	}
}

// GetActive returns the single highest-priority active popup for a page.
// @Summary		Get active popup
// @Description	Filters active popups targeting the page (or "all"), ranks by priority then creation time, and returns at most one.
// @Tags		Popups
// @Param		page	query	string	false	"Page tag (default all)"
// @Success		200	{object}	map[string]interface{} "Zero or one popup"
// @Router		/popups/active [GET]
func (h *Handler) GetActive(c *gin.Context) {
	page := c.DefaultQuery("page", "all")

	p, err := h.service.SelectActive(c.Request.Context(), page)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SELECT_FAILED", "Failed to fetch popups")
		return
	}

	// The client expects a list with zero or one element.
	popups := []domain.Popup{}
	if p != nil {
		popups = append(popups, *p)
	}
	response.Success(c, http.StatusOK, gin.H{"popups": popups})
}

// Get returns popup detail content for the education detail page.
// @Summary		Get popup
// @Tags		Popups
// @Param		id	path	int	true	"Popup ID"
// @Success		200	{object}	map[string]interface{} "Popup"
// @Failure		404	{object}	map[string]interface{} "Unknown popup"
// @Router		/popups/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to fetch popup")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"popup": p})
}

// TrackView counts one display of the popup.
// @Summary		Track popup view
// @Tags		Popups
// @Param		id	path	int	true	"Popup ID"
// @Success		200	{object}	map[string]interface{} "Counted"
// @Router		/popups/{id}/view [POST]
func (h *Handler) TrackView(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.service.TrackView(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Failed to track view")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tracked": true})
}

// TrackClick counts one "learn more" follow.
// @Summary		Track popup click
// @Tags		Popups
// @Param		id	path	int	true	"Popup ID"
// @Success		200	{object}	map[string]interface{} "Counted"
// @Router		/popups/{id}/click [POST]
func (h *Handler) TrackClick(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.service.TrackClick(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Failed to track click")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tracked": true})
}

// Create stores a new popup.
// @Summary		Create popup
// @Tags		Popups
// @Security	BearerAuth
// @Param		request	body	CreatePopupRequest	true	"Popup data"
// @Success		201	{object}	map[string]interface{} "Popup created"
// @Router		/popups [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid popup data")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create popup")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"popup": p})
}

// List returns every popup for the management dashboard.
// @Summary		List popups
// @Tags		Popups
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{} "All popups"
// @Router		/popups/admin/all [GET]
func (h *Handler) List(c *gin.Context) {
	popups, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list popups")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"popups": popups})
}

// Update modifies a popup.
// @Summary		Update popup
// @Tags		Popups
// @Security	BearerAuth
// @Param		id	path	int	true	"Popup ID"
// @Param		request	body	UpdatePopupRequest	true	"Fields to update"
// @Success		200	{object}	map[string]interface{} "Updated popup"
// @Router		/popups/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req UpdatePopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid popup data")
			return
		}
		h.writeError(c, err, "Failed to update popup")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"popup": p})
}

// Delete removes a popup.
// @Summary		Delete popup
// @Tags		Popups
// @Security	BearerAuth
// @Param		id	path	int	true	"Popup ID"
// @Success		200	{object}	map[string]interface{} "Deleted"
// @Router		/popups/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Failed to delete popup")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid popup ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, ErrNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Popup not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "POPUP_ERROR", fallback)
}
