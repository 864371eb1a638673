package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "hr-agent-service/internal/domain/employee"
)

// RequireRole rejects requests whose authenticated actor does not hold one
// of the given roles. It must run after Auth.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			unauthorized(c, "authentication required")
			return
		}

		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":   "forbidden",
			"message": "insufficient role for this operation",
		})
	}
}
