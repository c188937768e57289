package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// principalKey is the gin context key holding the authenticated owner ID.
const principalKey = "principal"

// Middleware verifies the bearer token and stores the principal's identifier
// in the request context. Requests without a valid token are rejected before
// reaching any handler.
func Middleware(tm *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		// Query parameter fallback for downloads where headers can't be set
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := tm.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(principalKey, claims.UserID)
		c.Next()
	}
}

// Principal returns the authenticated owner ID from the request context, or
// empty when the request is unauthenticated.
func Principal(c *gin.Context) string {
	return c.GetString(principalKey)
}
