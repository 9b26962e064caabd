package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/classpoint/classroom-api/internal/dto"
	apierrors "github.com/classpoint/classroom-api/internal/errors"
	"github.com/classpoint/classroom-api/internal/middleware"
	"github.com/classpoint/classroom-api/internal/models"
	"github.com/classpoint/classroom-api/internal/services"
	"github.com/gin-gonic/gin"
)

// LessonHandler coordinates lesson and summary-file HTTP handlers.
type LessonHandler struct {
	lessonService    *services.LessonService
	classroomService *services.ClassroomService
}

// NewLessonHandler creates a new LessonHandler.
func NewLessonHandler(lessonService *services.LessonService, classroomService *services.ClassroomService) *LessonHandler {
	return &LessonHandler{
		lessonService:    lessonService,
		classroomService: classroomService,
	}
}

// CreateLesson creates a lesson in a classroom.
func (h *LessonHandler) CreateLesson(c *gin.Context) {
	type CreateLessonRequest struct {
		Name        string   `json:"name" binding:"required"`
		Description string   `json:"description"`
		ClassroomID uint64   `json:"classroom_id" binding:"required"`
		GameIDs     []uint64 `json:"game_ids"`
	}

	var req CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	lesson, err := h.lessonService.CreateLesson(services.CreateLessonInput{
		Name:        req.Name,
		Description: req.Description,
		ClassroomID: req.ClassroomID,
		GameIDs:     req.GameIDs,
	})
	if err != nil {
		respondLessonError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLessonDTO(*lesson))
}

// UpdateLesson applies partial updates to a lesson.
func (h *LessonHandler) UpdateLesson(c *gin.Context) {
	type UpdateLessonRequest struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		GameIDs     []uint64 `json:"game_ids"`
	}

	lessonID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid lesson ID")
		return
	}

	var req UpdateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	lesson, err := h.lessonService.UpdateLesson(lessonID, services.UpdateLessonInput{
		Name:        req.Name,
		Description: req.Description,
		GameIDs:     req.GameIDs,
	})
	if err != nil {
		respondLessonError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLessonDTO(*lesson))
}

// DeleteLesson removes a lesson along with its summary file.
func (h *LessonHandler) DeleteLesson(c *gin.Context) {
	lessonID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid lesson ID")
		return
	}

	if err := h.lessonService.DeleteLesson(lessonID); err != nil {
		respondLessonError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Lesson deleted successfully",
	})
}

// GetLesson returns a lesson to members of its classroom.
func (h *LessonHandler) GetLesson(c *gin.Context) {
	lesson, ok := h.memberLesson(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.ToLessonDTO(*lesson))
}

// ListClassroomLessons returns the lessons of a classroom.
func (h *LessonHandler) ListClassroomLessons(c *gin.Context) {
	classroomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid classroom ID")
		return
	}

	lessons, err := h.lessonService.ListClassroomLessons(classroomID)
	if err != nil {
		respondLessonError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLessonDTOs(lessons))
}

// UploadSummary stores a summary file for the lesson, replacing any previous one.
func (h *LessonHandler) UploadSummary(c *gin.Context) {
	lessonID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid lesson ID")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "A file is required")
		return
	}

	summary, err := h.lessonService.UploadSummary(lessonID, file)
	if err != nil {
		respondLessonError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"lesson_id": summary.LessonID,
		"file_name": summary.FileName,
		"file_type": summary.FileType,
	})
}

// DownloadSummary streams the lesson's summary file to a classroom member.
func (h *LessonHandler) DownloadSummary(c *gin.Context) {
	lesson, ok := h.memberLesson(c)
	if !ok {
		return
	}

	summary, path, err := h.lessonService.GetSummary(lesson.ID)
	if err != nil {
		respondLessonError(c, err)
		return
	}

	c.Header("Content-Type", summary.FileType)
	c.FileAttachment(path, summary.FileName)
}

// DeleteSummary removes the lesson's summary record and file.
func (h *LessonHandler) DeleteSummary(c *gin.Context) {
	lessonID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid lesson ID")
		return
	}

	if err := h.lessonService.DeleteSummary(lessonID); err != nil {
		respondLessonError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Summary deleted successfully",
	})
}

// memberLesson resolves the :id lesson and enforces that the requester is a
// member of its classroom. The classroom check runs against the lesson's
// classroom, not a URL parameter, so a missing lesson is a 404 first.
func (h *LessonHandler) memberLesson(c *gin.Context) (*models.Lesson, bool) {
	lessonID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid lesson ID")
		return nil, false
	}

	lesson, err := h.lessonService.GetLesson(lessonID)
	if err != nil {
		respondLessonError(c, err)
		return nil, false
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return nil, false
	}

	member, err := h.classroomService.IsMember(lesson.ClassroomID, userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to check classroom membership")
		return nil, false
	}
	if !member {
		apierrors.Forbidden(c, "You are not a member of this lesson's classroom")
		return nil, false
	}

	return lesson, true
}

func respondLessonError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrLessonNotFound),
		errors.Is(err, services.ErrSummaryNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrLessonNameEmpty),
		errors.Is(err, services.ErrGamesNotFound):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
