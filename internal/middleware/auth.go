package middleware

import (
	"context"
	"net/http"
	"strings"

	"scraply/internal/domain"
	jwtsvc "scraply/internal/pkg/jwt"
	"scraply/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserGetter resolves the user referenced by a token.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Auth validates the bearer token and re-fetches the referenced user on
// every request. The role attached to the context is the user's current
// role, not the snapshot embedded in the token, so role changes take
// effect on the next request without re-login.
func Auth(jwt *jwtsvc.Service, users UserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			abortUnauthorized(c, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortUnauthorized(c, "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set("user_id", user.ID)
		c.Set("role", string(user.Role))
		c.Set("user", user)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
	c.Abort()
}
