package user

import (
	"errors"
	"net/http"
	"strconv"

	"scraply/internal/domain"
	"scraply/internal/middleware"
	"scraply/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages the HTTP surface for user management
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the users router on an authenticated group. The
// role gates mirror the disjoint predicates of the admin/user split:
// admins manage the collection, users manage their own record.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	users := protected.Group("/users")
	{
		users.GET("", middleware.AdminOnly(), h.List)
		users.POST("", middleware.AdminOnly(), h.Create)

		users.GET("/:id", middleware.UserOnly(), h.Get)
		users.PUT("/:id", middleware.UserOnly(), h.Update)
		users.DELETE("/:id", middleware.UserOnly(), h.Delete)
	}
}

// List returns every registered user.
// @Summary		List users
// @Tags		Users
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{} "All users"
// @Router		/users [GET]
func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// Create registers a user on behalf of an admin.
// @Summary		Create user
// @Tags		Users
// @Security	BearerAuth
// @Param		request	body	CreateUserRequest	true	"User data"
// @Success		201	{object}	map[string]interface{} "User created"
// @Failure		409	{object}	map[string]interface{} "Email or username already taken"
// @Router		/users [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "Email already exists")
		case errors.Is(err, ErrUsernameExists):
			response.Error(c, http.StatusConflict, "USERNAME_EXISTS", "Username already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create user")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": u})
}

// Get returns a single user record.
// @Summary		Get user
// @Tags		Users
// @Security	BearerAuth
// @Param		id	path	int	true	"User ID"
// @Success		200	{object}	map[string]interface{} "User"
// @Failure		403	{object}	map[string]interface{} "Not the owner"
// @Failure		404	{object}	map[string]interface{} "Unknown user"
// @Router		/users/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	id, actorID, actorRole, ok := h.parseTarget(c)
	if !ok {
		return
	}

	u, err := h.service.Get(c.Request.Context(), actorID, actorRole, id)
	if err != nil {
		h.writeError(c, err, "Failed to get user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u})
}

// Update modifies a user's profile fields; a submitted password is
// re-hashed, the role is never touched here.
// @Summary		Update user
// @Tags		Users
// @Security	BearerAuth
// @Param		id	path	int	true	"User ID"
// @Param		request	body	UpdateUserRequest	true	"Fields to update"
// @Success		200	{object}	map[string]interface{} "Updated user"
// @Router		/users/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	id, actorID, actorRole, ok := h.parseTarget(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, err := h.service.Update(c.Request.Context(), actorID, actorRole, id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u})
}

// Delete removes a user record.
// @Summary		Delete user
// @Tags		Users
// @Security	BearerAuth
// @Param		id	path	int	true	"User ID"
// @Success		200	{object}	map[string]interface{} "Deleted"
// @Router		/users/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	id, actorID, actorRole, ok := h.parseTarget(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorID, actorRole, id); err != nil {
		h.writeError(c, err, "Failed to delete user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) parseTarget(c *gin.Context) (id, actorID int64, actorRole domain.UserRole, ok bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return 0, 0, "", false
	}
	return id, c.GetInt64("user_id"), domain.UserRole(c.GetString("role")), true
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	default:
		response.Error(c, http.StatusInternalServerError, "USER_ERROR", fallback)
	}
}
