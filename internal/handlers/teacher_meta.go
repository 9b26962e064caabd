package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/classpoint/classroom-api/internal/dto"
	apierrors "github.com/classpoint/classroom-api/internal/errors"
	"github.com/classpoint/classroom-api/internal/middleware"
	"github.com/classpoint/classroom-api/internal/services"
	"github.com/gin-gonic/gin"
)

// TeacherMetaHandler coordinates teacher profile HTTP handlers.
type TeacherMetaHandler struct {
	metaService *services.TeacherMetaService
}

// NewTeacherMetaHandler creates a new TeacherMetaHandler.
func NewTeacherMetaHandler(metaService *services.TeacherMetaService) *TeacherMetaHandler {
	return &TeacherMetaHandler{metaService: metaService}
}

// teacherMetaRequest is shared by create and update.
type teacherMetaRequest struct {
	TagIDs       []uint64 `json:"tag_ids"`
	AboutTeacher string   `json:"about_teacher"`
	CanHelpWith  string   `json:"can_help_with"`
	Resume       string   `json:"resume"`
}

// GetProfile returns the requesting teacher's profile.
func (h *TeacherMetaHandler) GetProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	meta, err := h.metaService.GetProfile(userID)
	if err != nil {
		respondTeacherMetaError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeacherMetaDTO(*meta))
}

// CreateProfile creates the requesting teacher's profile.
func (h *TeacherMetaHandler) CreateProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req teacherMetaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	meta, err := h.metaService.CreateProfile(userID, services.TeacherMetaInput{
		TagIDs:       req.TagIDs,
		AboutTeacher: req.AboutTeacher,
		CanHelpWith:  req.CanHelpWith,
		Resume:       req.Resume,
	})
	if err != nil {
		respondTeacherMetaError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeacherMetaDTO(*meta))
}

// UpdateProfile updates the requesting teacher's profile.
func (h *TeacherMetaHandler) UpdateProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req teacherMetaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	meta, err := h.metaService.UpdateProfile(userID, services.TeacherMetaInput{
		TagIDs:       req.TagIDs,
		AboutTeacher: req.AboutTeacher,
		CanHelpWith:  req.CanHelpWith,
		Resume:       req.Resume,
	})
	if err != nil {
		respondTeacherMetaError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeacherMetaDTO(*meta))
}

// DeleteProfile removes the requesting teacher's profile.
func (h *TeacherMetaHandler) DeleteProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.metaService.DeleteProfile(userID); err != nil {
		respondTeacherMetaError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Teacher profile deleted successfully",
	})
}

// Search returns teachers whose profile tags match any of the comma-separated
// tag names in the `tags` query parameter.
func (h *TeacherMetaHandler) Search(c *gin.Context) {
	raw := c.Query("tags")

	var names []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	metas, err := h.metaService.SearchByTagNames(names)
	if err != nil {
		respondTeacherMetaError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeacherSearchResultDTOs(metas))
}

func respondTeacherMetaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTeacherMetaNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTeacherMetaExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrNoTagsProvided):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
