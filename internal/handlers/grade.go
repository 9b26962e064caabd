package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/classpoint/classroom-api/internal/dto"
	apierrors "github.com/classpoint/classroom-api/internal/errors"
	"github.com/classpoint/classroom-api/internal/services"
	"github.com/gin-gonic/gin"
)

// GradeHandler coordinates grading HTTP handlers.
type GradeHandler struct {
	gradeService *services.GradeService
}

// NewGradeHandler creates a new GradeHandler.
func NewGradeHandler(gradeService *services.GradeService) *GradeHandler {
	return &GradeHandler{gradeService: gradeService}
}

// SetGrade creates or updates a student's grade for the lesson.
func (h *GradeHandler) SetGrade(c *gin.Context) {
	type SetGradeRequest struct {
		StudentID uint64 `json:"student_id" binding:"required"`
		Grade     int    `json:"grade" binding:"required"`
		Comment   string `json:"comment"`
	}

	lessonID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid lesson ID")
		return
	}

	var req SetGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	grade, err := h.gradeService.SetGrade(services.SetGradeInput{
		LessonID:  lessonID,
		StudentID: req.StudentID,
		Grade:     req.Grade,
		Comment:   req.Comment,
	})
	if err != nil {
		respondGradeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGradeDTO(*grade))
}

// GetStudentGrades returns every grade of the student named by :id.
func (h *GradeHandler) GetStudentGrades(c *gin.Context) {
	studentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	grades, err := h.gradeService.GetStudentGrades(studentID)
	if err != nil {
		respondGradeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGradeDTOs(grades))
}

// GetLessonGrades returns every grade given for the lesson.
func (h *GradeHandler) GetLessonGrades(c *gin.Context) {
	lessonID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid lesson ID")
		return
	}

	grades, err := h.gradeService.GetLessonGrades(lessonID)
	if err != nil {
		respondGradeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGradeDTOs(grades))
}

// GetClassroomGrades returns every grade given in a classroom's lessons.
func (h *GradeHandler) GetClassroomGrades(c *gin.Context) {
	classroomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid classroom ID")
		return
	}

	grades, err := h.gradeService.GetClassroomGrades(classroomID)
	if err != nil {
		respondGradeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGradeDTOs(grades))
}

// DeleteGrade removes a student's grade for the lesson.
func (h *GradeHandler) DeleteGrade(c *gin.Context) {
	lessonID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid lesson ID")
		return
	}

	studentID, err := strconv.ParseUint(c.Param("sid"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid student ID")
		return
	}

	if err := h.gradeService.DeleteGrade(lessonID, studentID); err != nil {
		respondGradeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Grade deleted successfully",
	})
}

func respondGradeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrGradeOutOfRange):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrLessonNotFound),
		errors.Is(err, services.ErrGradeNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
