package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kweenDev/alx-files-manager/internal/auth"
	"github.com/kweenDev/alx-files-manager/internal/files"
	"github.com/kweenDev/alx-files-manager/internal/logger"
	"github.com/kweenDev/alx-files-manager/internal/user"
)

// DocumentStore is the slice of the document-store client the API
// needs for status and stats reporting.
type DocumentStore interface {
	Alive(ctx context.Context) bool
	NbUsers(ctx context.Context) (int64, error)
	NbFiles(ctx context.Context) (int64, error)
}

// KeyValueStore is the slice of the session store client the API
// needs for status reporting.
type KeyValueStore interface {
	Alive(ctx context.Context) bool
}

type Handler struct {
	auth  *auth.Service
	users *user.Service
	files *files.Service
	docs  DocumentStore
	kv    KeyValueStore
}

func NewHandler(
	authService *auth.Service,
	userService *user.Service,
	fileService *files.Service,
	docs DocumentStore,
	kv KeyValueStore,
) *Handler {
	return &Handler{
		auth:  authService,
		users: userService,
		files: fileService,
		docs:  docs,
		kv:    kv,
	}
}

// RegisterRoutes mounts the full HTTP surface. requireAuth guards the
// token-protected endpoints; /disconnect performs its own token check
// because revocation and resolution share the same lookup.
func (h *Handler) RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc) {
	r.GET("/status", h.GetStatus)
	r.GET("/stats", h.GetStats)

	r.POST("/users", h.PostNew)
	r.GET("/connect", h.GetConnect)
	r.GET("/disconnect", h.GetDisconnect)

	protected := r.Group("/")
	protected.Use(requireAuth)

	protected.GET("/users/me", h.GetMe)
	protected.POST("/files", h.PostUpload)
	protected.GET("/files", h.GetIndex)
	protected.GET("/files/:id", h.GetShow)
	protected.PUT("/files/:id/publish", h.PutPublish)
	protected.PUT("/files/:id/unpublish", h.PutUnpublish)
}

// internalError hides store failures behind a generic 500.
func internalError(c *gin.Context, err error) {
	logger.Error("unexpected store failure", map[string]any{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
		"error":  err.Error(),
	})
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
