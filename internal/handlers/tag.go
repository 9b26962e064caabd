package handlers

import (
	"errors"
	"net/http"

	apierrors "github.com/classpoint/classroom-api/internal/errors"
	"github.com/classpoint/classroom-api/internal/services"
	"github.com/gin-gonic/gin"
)

// TagHandler coordinates tag HTTP handlers.
type TagHandler struct {
	tagService *services.TagService
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// ListTags returns all tags.
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.ListTags()
	if err != nil {
		respondTagError(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

// CreateTag adds a tag with a unique name.
func (h *TagHandler) CreateTag(c *gin.Context) {
	type CreateTagRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	tag, err := h.tagService.CreateTag(req.Name)
	if err != nil {
		respondTagError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

func respondTagError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTagNameEmpty):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTagExists):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
