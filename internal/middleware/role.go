package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole must run after AuthMiddleware. It blocks callers whose token
// role does not match.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}
