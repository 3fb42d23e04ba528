package blog

import (
	"errors"
	"net/http"
	"strconv"

	"scraply/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	blogs := v1.Group("/blogs")
	{
		blogs.POST("", h.CreatePost)
		blogs.GET("", h.ListPosts)
		blogs.GET("/:id", h.GetPost)
		blogs.POST("/:id/comments", h.AddComment)
	}
}

// CreatePost publishes a blog post.
// @Summary		Create blog post
// @Tags		Blog
// @Param		request	body	CreatePostRequest	true	"Post data"
// @Success		201	{object}	map[string]interface{} "Post created"
// @Router		/blogs [POST]
func (h *Handler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.CreatePost(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create post")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"post": p})
}

// ListPosts returns all posts, featured ones first.
// @Summary		List blog posts
// @Tags		Blog
// @Success		200	{object}	map[string]interface{} "All posts"
// @Router		/blogs [GET]
func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.service.ListPosts(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list posts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"posts": posts})
}

// GetPost returns one post with its comments.
// @Summary		Get blog post
// @Tags		Blog
// @Param		id	path	int	true	"Post ID"
// @Success		200	{object}	map[string]interface{} "Post with comments"
// @Failure		404	{object}	map[string]interface{} "Unknown post"
// @Router		/blogs/{id} [GET]
func (h *Handler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	p, err := h.service.GetPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to get post")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"post": p})
}

// AddComment appends a comment to a post.
// @Summary		Comment on a post
// @Tags		Blog
// @Param		id	path	int	true	"Post ID"
// @Param		request	body	AddCommentRequest	true	"Comment"
// @Success		201	{object}	map[string]interface{} "Comment added"
// @Failure		404	{object}	map[string]interface{} "Unknown post"
// @Router		/blogs/{id}/comments [POST]
func (h *Handler) AddComment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "COMMENT_FAILED", "Failed to add comment")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"comment": comment})
}
