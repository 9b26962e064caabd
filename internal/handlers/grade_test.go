package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/classpoint/classroom-api/internal/constants"
	"github.com/classpoint/classroom-api/internal/database"
	"github.com/classpoint/classroom-api/internal/dto"
	"github.com/classpoint/classroom-api/internal/models"
	"github.com/classpoint/classroom-api/internal/repository"
	"github.com/classpoint/classroom-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type gradeTestEnv struct {
	db      *gorm.DB
	handler *GradeHandler
	lesson  *models.Lesson
	student *models.User
	teacher *models.User
}

func setupGradeTestEnv(t *testing.T) gradeTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Classroom{},
		&models.ClassroomMember{},
		&models.Lesson{},
		&models.Grade{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	gradeRepo := repository.NewGradeRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	gradeService := services.NewGradeService(gradeRepo, lessonRepo)
	handler := NewGradeHandler(gradeService)

	teacher := &models.User{Username: "teacher1", PasswordHash: "hashed", Role: models.RoleTeacher}
	require.NoError(t, db.Create(teacher).Error)
	student := &models.User{Username: "student1", PasswordHash: "hashed", Role: models.RoleStudent}
	require.NoError(t, db.Create(student).Error)

	classroom := &models.Classroom{Name: "Math"}
	require.NoError(t, db.Create(classroom).Error)
	lesson := &models.Lesson{Name: "Fractions", ClassroomID: classroom.ID}
	require.NoError(t, db.Create(lesson).Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return gradeTestEnv{
		db:      db,
		handler: handler,
		lesson:  lesson,
		student: student,
		teacher: teacher,
	}
}

func gradeTestContext(method, url string, body []byte, userID uint64, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = params
	c.Set(constants.ContextKeyUserID, userID)

	return c, w
}

func (env gradeTestEnv) setGrade(t *testing.T, grade int, comment string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{
		"student_id": env.student.ID,
		"grade":      grade,
		"comment":    comment,
	})
	require.NoError(t, err)

	url := fmt.Sprintf("/grades/lesson/%d", env.lesson.ID)
	params := gin.Params{{Key: "id", Value: fmt.Sprint(env.lesson.ID)}}
	c, w := gradeTestContext(http.MethodPost, url, body, env.teacher.ID, params)
	env.handler.SetGrade(c)
	return w
}

func TestGradeHandler_SetGrade(t *testing.T) {
	env := setupGradeTestEnv(t)

	w := env.setGrade(t, 4, "good work")
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.GradeDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, 4, response.Grade)
	require.Equal(t, env.student.ID, response.StudentID)
}

func TestGradeHandler_SetGradeBounds(t *testing.T) {
	env := setupGradeTestEnv(t)

	require.Equal(t, http.StatusBadRequest, env.setGrade(t, 0, "").Code)
	require.Equal(t, http.StatusBadRequest, env.setGrade(t, 6, "").Code)
	require.Equal(t, http.StatusOK, env.setGrade(t, 1, "").Code)
	require.Equal(t, http.StatusOK, env.setGrade(t, 5, "").Code)
}

func TestGradeHandler_SetGradeUpserts(t *testing.T) {
	env := setupGradeTestEnv(t)

	require.Equal(t, http.StatusOK, env.setGrade(t, 3, "first try").Code)
	require.Equal(t, http.StatusOK, env.setGrade(t, 5, "improved").Code)

	// One row per (lesson, student), updated in place
	var grades []models.Grade
	require.NoError(t, env.db.Find(&grades).Error)
	require.Len(t, grades, 1)
	require.Equal(t, 5, grades[0].Grade)
	require.Equal(t, "improved", grades[0].Comment)
}

func TestGradeHandler_SetGradeMissingLesson(t *testing.T) {
	env := setupGradeTestEnv(t)

	body, err := json.Marshal(map[string]interface{}{
		"student_id": env.student.ID,
		"grade":      3,
	})
	require.NoError(t, err)

	params := gin.Params{{Key: "id", Value: "999"}}
	c, w := gradeTestContext(http.MethodPost, "/grades/lesson/999", body, env.teacher.ID, params)
	env.handler.SetGrade(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGradeHandler_GetStudentGrades(t *testing.T) {
	env := setupGradeTestEnv(t)

	require.Equal(t, http.StatusOK, env.setGrade(t, 4, "").Code)

	url := fmt.Sprintf("/grades/student/%d", env.student.ID)
	params := gin.Params{{Key: "id", Value: fmt.Sprint(env.student.ID)}}
	c, w := gradeTestContext(http.MethodGet, url, nil, env.teacher.ID, params)
	env.handler.GetStudentGrades(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response []dto.GradeDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	require.Equal(t, "Fractions", response[0].LessonName)
}

func TestGradeHandler_GetStudentGradesEmpty(t *testing.T) {
	env := setupGradeTestEnv(t)

	url := fmt.Sprintf("/grades/student/%d", env.student.ID)
	params := gin.Params{{Key: "id", Value: fmt.Sprint(env.student.ID)}}
	c, w := gradeTestContext(http.MethodGet, url, nil, env.teacher.ID, params)
	env.handler.GetStudentGrades(c)

	// No grades is an empty list, not an error
	require.Equal(t, http.StatusOK, w.Code)

	var response []dto.GradeDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Empty(t, response)
}

func TestGradeHandler_DeleteGrade(t *testing.T) {
	env := setupGradeTestEnv(t)

	require.Equal(t, http.StatusOK, env.setGrade(t, 2, "").Code)

	params := gin.Params{
		{Key: "id", Value: fmt.Sprint(env.lesson.ID)},
		{Key: "sid", Value: fmt.Sprint(env.student.ID)},
	}
	c, w := gradeTestContext(http.MethodDelete, "/grades/lesson/1/student/2", nil, env.teacher.ID, params)
	env.handler.DeleteGrade(c)
	require.Equal(t, http.StatusOK, w.Code)

	// A second delete finds nothing
	c, w = gradeTestContext(http.MethodDelete, "/grades/lesson/1/student/2", nil, env.teacher.ID, params)
	env.handler.DeleteGrade(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGradeHandler_GetClassroomGrades(t *testing.T) {
	env := setupGradeTestEnv(t)

	require.Equal(t, http.StatusOK, env.setGrade(t, 4, "").Code)

	params := gin.Params{{Key: "id", Value: fmt.Sprint(env.lesson.ClassroomID)}}
	c, w := gradeTestContext(http.MethodGet, "/grades/classroom/1", nil, env.teacher.ID, params)
	env.handler.GetClassroomGrades(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response []dto.GradeDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
}
