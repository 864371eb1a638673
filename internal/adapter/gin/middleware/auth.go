package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "hr-agent-service/internal/domain/employee"
	"hr-agent-service/internal/usecase/access"
	"hr-agent-service/pkg/logger"
	"hr-agent-service/pkg/token"
)

// ActorKey is the gin context key holding the authenticated access.Actor.
const ActorKey = "actor"

// TokenValidator verifies a bearer token and returns its claims.
type TokenValidator interface {
	Validate(tokenString string) (*token.Claims, error)
}

// EmployeeGetter re-checks the token subject against the employee store.
type EmployeeGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
}

// Auth authenticates requests with a Bearer token. The employee record is
// re-loaded on every request so role changes and deletions take effect
// before the token expires.
func Auth(tokens TokenValidator, employees EmployeeGetter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c, "authorization header must be a bearer token")
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			log.Warn("token validation failed", zap.Error(err))
			unauthorized(c, "invalid or expired token")
			return
		}

		emp, err := employees.GetByID(c.Request.Context(), claims.EmployeeID)
		if err != nil {
			log.Warn("token subject no longer exists", zap.Int64("employee_id", claims.EmployeeID))
			unauthorized(c, "account no longer active")
			return
		}

		actor := access.Actor{ID: emp.ID, Role: emp.Role}
		c.Set(ActorKey, actor)

		ctx := context.WithValue(c.Request.Context(), logger.EmployeeIDKey, emp.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ActorFrom extracts the authenticated actor set by Auth.
func ActorFrom(c *gin.Context) (access.Actor, bool) {
	v, ok := c.Get(ActorKey)
	if !ok {
		return access.Actor{}, false
	}
	actor, ok := v.(access.Actor)
	return actor, ok
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   "unauthorized",
		"message": msg,
	})
}
