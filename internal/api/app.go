package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStatus reports whether both backing stores answer right now.
func (h *Handler) GetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	c.JSON(http.StatusOK, gin.H{
		"redis": h.kv.Alive(ctx),
		"db":    h.docs.Alive(ctx),
	})
}

// GetStats reports how many users and files the document store holds.
func (h *Handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.docs.NbUsers(ctx)
	if err != nil {
		internalError(c, err)
		return
	}

	files, err := h.docs.NbFiles(ctx)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"files": files,
	})
}
