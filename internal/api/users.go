package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kweenDev/alx-files-manager/internal/middleware"
	"github.com/kweenDev/alx-files-manager/internal/user"
)

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PostNew registers a new user. Malformed bodies fall through to the
// missing-field checks.
func (h *Handler) PostNew(c *gin.Context) {
	var req createUserRequest
	_ = c.ShouldBindJSON(&req)

	u, err := h.users.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email"})
		case errors.Is(err, user.ErrMissingPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing password"})
		case errors.Is(err, user.ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already exist"})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    u.ID.Hex(),
		"email": u.Email,
	})
}

// GetMe returns the profile of the token holder.
func (h *Handler) GetMe(c *gin.Context) {
	userID := middleware.UserID(c)

	u, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    u.ID.Hex(),
		"email": u.Email,
	})
}
