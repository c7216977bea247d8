package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// ServiceKey authorizes machine callers of the export endpoint by comparing
// the X-Service-Key header against a bcrypt hash from configuration. An
// empty hash disables the header path entirely.
func ServiceKey(keyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if keyHash == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "service key auth disabled"})
			return
		}
		key := c.GetHeader("X-Service-Key")
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing service key"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid service key"})
			return
		}
		c.Next()
	}
}
