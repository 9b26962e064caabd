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

// ClassroomHandler coordinates classroom HTTP handlers.
type ClassroomHandler struct {
	classroomService *services.ClassroomService
}

// NewClassroomHandler creates a new ClassroomHandler.
func NewClassroomHandler(classroomService *services.ClassroomService) *ClassroomHandler {
	return &ClassroomHandler{
		classroomService: classroomService,
	}
}

// CreateClassroom creates a classroom with the requesting teacher as admin.
func (h *ClassroomHandler) CreateClassroom(c *gin.Context) {
	type CreateClassroomRequest struct {
		Name string `json:"name" binding:"required"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req CreateClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	classroom, members, err := h.classroomService.CreateClassroom(req.Name, userID)
	if err != nil {
		respondClassroomError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClassroomDTO(*classroom, members))
}

// DeleteClassroom removes a classroom and all of its membership state.
func (h *ClassroomHandler) DeleteClassroom(c *gin.Context) {
	classroomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid classroom ID")
		return
	}

	if err := h.classroomService.DeleteClassroom(classroomID); err != nil {
		respondClassroomError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Classroom deleted successfully",
	})
}

// AddMembers adds users to the classroom by role.
func (h *ClassroomHandler) AddMembers(c *gin.Context) {
	type AddMembersRequest struct {
		UserIDs []uint64 `json:"user_ids" binding:"required"`
	}

	classroomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid classroom ID")
		return
	}

	var req AddMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.classroomService.AddMembers(classroomID, req.UserIDs); err != nil {
		respondClassroomError(c, err)
		return
	}

	classroom, members, err := h.classroomService.GetClassroomWithMembers(classroomID)
	if err != nil {
		respondClassroomError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClassroomDTO(*classroom, members))
}

// RemoveMembers removes users from the classroom.
func (h *ClassroomHandler) RemoveMembers(c *gin.Context) {
	type RemoveMembersRequest struct {
		UserIDs []uint64 `json:"user_ids" binding:"required"`
	}

	classroomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid classroom ID")
		return
	}

	var req RemoveMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.classroomService.RemoveMembers(classroomID, req.UserIDs); err != nil {
		respondClassroomError(c, err)
		return
	}

	classroom, members, err := h.classroomService.GetClassroomWithMembers(classroomID)
	if err != nil {
		respondClassroomError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClassroomDTO(*classroom, members))
}

// GetClassroomDetails returns a classroom with resolved member details.
func (h *ClassroomHandler) GetClassroomDetails(c *gin.Context) {
	classroomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid classroom ID")
		return
	}

	classroom, members, err := h.classroomService.GetClassroomWithMembers(classroomID)
	if err != nil {
		respondClassroomError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClassroomDetailDTO(*classroom, members))
}

// ListAdministered returns the classrooms administered by the teacher.
func (h *ClassroomHandler) ListAdministered(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	classrooms, err := h.classroomService.ListAdministered(userID)
	if err != nil {
		respondClassroomError(c, err)
		return
	}

	result := make([]dto.ClassroomDTO, 0, len(classrooms))
	for _, classroom := range classrooms {
		_, members, err := h.classroomService.GetClassroomWithMembers(classroom.ID)
		if err != nil {
			respondClassroomError(c, err)
			return
		}
		result = append(result, dto.ToClassroomDTO(classroom, members))
	}

	c.JSON(http.StatusOK, result)
}

func respondClassroomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrClassroomNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidClassroomName),
		errors.Is(err, services.ErrNoUserIDsProvided):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
