package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/classpoint/classroom-api/internal/dto"
	apierrors "github.com/classpoint/classroom-api/internal/errors"
	"github.com/classpoint/classroom-api/internal/middleware"
	"github.com/classpoint/classroom-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ParentHandler coordinates guardianship HTTP handlers.
type ParentHandler struct {
	parentService *services.ParentService
}

// NewParentHandler creates a new ParentHandler.
func NewParentHandler(parentService *services.ParentService) *ParentHandler {
	return &ParentHandler{parentService: parentService}
}

// ListChildren returns the requesting parent's children.
func (h *ParentHandler) ListChildren(c *gin.Context) {
	parentID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	children, err := h.parentService.ListChildren(parentID)
	if err != nil {
		respondParentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(children))
}

// AddChild links an existing student to the requesting parent.
func (h *ParentHandler) AddChild(c *gin.Context) {
	type AddChildRequest struct {
		ChildID uint64 `json:"child_id" binding:"required"`
	}

	parentID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req AddChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.parentService.AddChild(parentID, req.ChildID); err != nil {
		respondParentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Child linked successfully",
	})
}

// RemoveChild unlinks a child from the requesting parent.
func (h *ParentHandler) RemoveChild(c *gin.Context) {
	parentID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	childID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid child ID")
		return
	}

	if err := h.parentService.RemoveChild(parentID, childID); err != nil {
		respondParentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Child unlinked successfully",
	})
}

func respondParentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrChildNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrChildNotAStudent):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
