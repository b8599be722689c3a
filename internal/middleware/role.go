package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/queueworks/queue-booking-api/internal/httperr"
)

// RequireRole runs after AuthMiddleware and gates the group to one role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != role {
			httperr.Forbidden(c, "insufficient_role", "this action requires another role")
			c.Abort()
			return
		}
		c.Next()
	}
}
