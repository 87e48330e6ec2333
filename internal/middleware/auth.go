package middleware

import (
	"net/http"
	"strings"

	"apiaryadmin/internal/domain"
	"apiaryadmin/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

// JWTAuth validates the Bearer access token and stores the caller's
// identity in the gin context for downstream handlers.
func JWTAuth(codec *token.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Missing Authorization header",
				},
			})
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid Authorization header",
				},
			})
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Empty token",
				},
			})
			return
		}

		claims, err := codec.ParseAccessToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid token",
				},
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("roles", claims.Roles)

		c.Next()
	}
}

// CurrentActor reads the identity JWTAuth stored in the context.
// Returns a zero Actor when called outside a protected route.
func CurrentActor(c *gin.Context) domain.Actor {
	actor := domain.Actor{
		UserID:   c.GetInt64("user_id"),
		Username: c.GetString("username"),
	}
	if v, ok := c.Get("roles"); ok {
		if roles, ok := v.([]string); ok {
			actor.Roles = roles
		}
	}
	return actor
}
