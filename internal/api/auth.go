package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kweenDev/alx-files-manager/internal/auth"
	"github.com/kweenDev/alx-files-manager/internal/middleware"
)

// GetConnect signs a user in from a Basic Authorization header and
// returns a fresh session token.
func (h *Handler) GetConnect(c *gin.Context) {
	token, err := h.auth.SignIn(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		if errors.Is(err, auth.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetDisconnect revokes the token carried in X-Token. A second call
// with the same token reports Unauthorized again.
func (h *Handler) GetDisconnect(c *gin.Context) {
	err := h.auth.SignOut(c.Request.Context(), c.GetHeader(middleware.TokenHeader))
	if err != nil {
		if errors.Is(err, auth.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		internalError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
