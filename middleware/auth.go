package middleware

import (
	"net/http"
	"strings"

	"realty-server/repositories"
	"realty-server/utils"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey is the gin context key under which RequireUser stores
// the authenticated user record.
const CurrentUserKey = "currentUser"

// RequireUser resolves the caller from a bearer token:
// missing/malformed header -> 401, bad signature or expired -> 403,
// token without a usable sub claim -> 401, unknown user -> 404.
func RequireUser(userRepo repositories.UserRepository, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ParseAccessToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token is invalid or expired"})
			return
		}

		username, ok := claims["sub"].(string)
		if !ok || username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token contents"})
			return
		}

		user, err := userRepo.GetByUsername(username)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}
