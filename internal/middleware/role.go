package middleware

import (
	"net/http"

	"scraply/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated user has exactly the given
// role. Checks are disjoint: an admin is not permitted on user-only routes.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly middleware requires admin role
func AdminOnly() gin.HandlerFunc {
	return RequireRole("admin")
}

// UserOnly middleware requires user role
func UserOnly() gin.HandlerFunc {
	return RequireRole("user")
}
