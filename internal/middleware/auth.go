package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kweenDev/alx-files-manager/internal/auth"
	"github.com/kweenDev/alx-files-manager/internal/logger"
)

// TokenHeader is the transport field carrying the session token.
const TokenHeader = "X-Token"

// userIDKey is the gin context key the middleware stores the
// authenticated user id under.
const userIDKey = "userID"

// UserID extracts the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// RequireAuth resolves the X-Token header to a user id before the
// handler runs. A missing or unknown token ends the request with 401;
// a session-store failure ends it with 500.
func RequireAuth(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)

		userID, err := authService.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}

			logger.Error("session lookup failed", map[string]any{
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}
