package middleware

import (
	"net/http"

	"apiaryadmin/internal/domain"
	"apiaryadmin/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated user carries the given role
func RequireRole(requiredRole domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := CurrentActor(c)
		if len(actor.Roles) == 0 {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Roles not found in token")
			c.Abort()
			return
		}

		if !actor.HasRole(requiredRole) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly middleware requires the admin role
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}
