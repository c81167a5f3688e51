package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kweenDev/alx-files-manager/internal/files"
	"github.com/kweenDev/alx-files-manager/internal/middleware"
)

type uploadRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID any    `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
}

// parentID normalizes the client-supplied parent reference; clients
// send either the hex string or the numeric root sentinel.
func (r uploadRequest) parentID() string {
	switch v := r.ParentID.(type) {
	case nil:
		return files.RootParent
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// PostUpload creates a folder or materializes an uploaded payload.
func (h *Handler) PostUpload(c *gin.Context) {
	var req uploadRequest
	_ = c.ShouldBindJSON(&req)

	rec, err := h.files.Create(c.Request.Context(), middleware.UserID(c), files.CreateParams{
		Name:     req.Name,
		Type:     req.Type,
		ParentID: req.parentID(),
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		fileError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// GetShow returns one record, owner only.
func (h *Handler) GetShow(c *gin.Context) {
	rec, err := h.files.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		fileError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// GetIndex lists one page of the owner's records under parentId.
func (h *Handler) GetIndex(c *gin.Context) {
	parentID := c.DefaultQuery("parentId", files.RootParent)

	page, err := strconv.ParseInt(c.DefaultQuery("page", "0"), 10, 64)
	if err != nil {
		page = 0
	}

	records, err := h.files.List(c.Request.Context(), middleware.UserID(c), parentID, page)
	if err != nil {
		fileError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// PutPublish marks a record public.
func (h *Handler) PutPublish(c *gin.Context) {
	h.setVisibility(c, true)
}

// PutUnpublish marks a record private.
func (h *Handler) PutUnpublish(c *gin.Context) {
	h.setVisibility(c, false)
}

func (h *Handler) setVisibility(c *gin.Context, public bool) {
	rec, err := h.files.SetVisibility(c.Request.Context(), middleware.UserID(c), c.Param("id"), public)
	if err != nil {
		fileError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// fileError maps registry failures to their HTTP shape.
func fileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, files.ErrMissingName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing name"})
	case errors.Is(err, files.ErrMissingType), errors.Is(err, files.ErrInvalidType):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing type"})
	case errors.Is(err, files.ErrMissingData):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data"})
	case errors.Is(err, files.ErrInvalidData):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
	case errors.Is(err, files.ErrParentNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parent not found"})
	case errors.Is(err, files.ErrParentNotFolder):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parent is not a folder"})
	case errors.Is(err, files.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		internalError(c, err)
	}
}
