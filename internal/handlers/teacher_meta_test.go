package handlers

import (
	"bytes"
	"encoding/json"
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

type teacherMetaTestEnv struct {
	db          *gorm.DB
	handler     *TeacherMetaHandler
	tagHandler  *TagHandler
	metaService *services.TeacherMetaService
	tagService  *services.TagService
}

func setupTeacherMetaTestEnv(t *testing.T) teacherMetaTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.TeacherMeta{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	metaRepo := repository.NewTeacherMetaRepository(db)
	tagRepo := repository.NewTagRepository(db)
	metaService := services.NewTeacherMetaService(metaRepo, tagRepo)
	tagService := services.NewTagService(tagRepo)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return teacherMetaTestEnv{
		db:          db,
		handler:     NewTeacherMetaHandler(metaService),
		tagHandler:  NewTagHandler(tagService),
		metaService: metaService,
		tagService:  tagService,
	}
}

func teacherMetaTestContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)

	return c, w
}

func createTeacherMetaTestUser(t *testing.T, db *gorm.DB, username, name string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		PasswordHash: "hashed",
		Role:         models.RoleTeacher,
		Name:         name,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestTagHandler_CreateAndList(t *testing.T) {
	env := setupTeacherMetaTestEnv(t)

	body, err := json.Marshal(map[string]string{"name": "math"})
	require.NoError(t, err)

	c, w := teacherMetaTestContext(http.MethodPost, "/tags", body, 1)
	env.tagHandler.CreateTag(c)
	require.Equal(t, http.StatusCreated, w.Code)

	// Same name again conflicts
	c, w = teacherMetaTestContext(http.MethodPost, "/tags", body, 1)
	env.tagHandler.CreateTag(c)
	require.Equal(t, http.StatusConflict, w.Code)

	c, w = teacherMetaTestContext(http.MethodGet, "/tags", nil, 1)
	env.tagHandler.ListTags(c)
	require.Equal(t, http.StatusOK, w.Code)

	var tags []models.Tag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
	require.Len(t, tags, 1)
}

func TestTeacherMetaHandler_ProfileLifecycle(t *testing.T) {
	env := setupTeacherMetaTestEnv(t)

	teacher := createTeacherMetaTestUser(t, env.db, "teacher1", "Maria")

	body, err := json.Marshal(map[string]interface{}{
		"tag_ids":       []uint64{1, 2},
		"about_teacher": "15 years of experience",
		"can_help_with": "algebra",
	})
	require.NoError(t, err)

	c, w := teacherMetaTestContext(http.MethodPost, "/teacher-info", body, teacher.ID)
	env.handler.CreateProfile(c)
	require.Equal(t, http.StatusCreated, w.Code)

	// Second create conflicts: at most one profile per teacher
	c, w = teacherMetaTestContext(http.MethodPost, "/teacher-info", body, teacher.ID)
	env.handler.CreateProfile(c)
	require.Equal(t, http.StatusConflict, w.Code)

	updateBody, err := json.Marshal(map[string]interface{}{"resume": "MSc Mathematics"})
	require.NoError(t, err)

	c, w = teacherMetaTestContext(http.MethodPut, "/teacher-info", updateBody, teacher.ID)
	env.handler.UpdateProfile(c)
	require.Equal(t, http.StatusOK, w.Code)

	var profile dto.TeacherMetaDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	require.Equal(t, "MSc Mathematics", profile.Resume)
	require.Equal(t, "15 years of experience", profile.AboutTeacher)

	c, w = teacherMetaTestContext(http.MethodDelete, "/teacher-info", nil, teacher.ID)
	env.handler.DeleteProfile(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = teacherMetaTestContext(http.MethodGet, "/teacher-info", nil, teacher.ID)
	env.handler.GetProfile(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTeacherMetaHandler_Search(t *testing.T) {
	env := setupTeacherMetaTestEnv(t)

	mathTag, err := env.tagService.CreateTag("math")
	require.NoError(t, err)
	artTag, err := env.tagService.CreateTag("art")
	require.NoError(t, err)

	mathTeacher := createTeacherMetaTestUser(t, env.db, "teacher1", "Maria")
	artTeacher := createTeacherMetaTestUser(t, env.db, "teacher2", "Jan")

	_, err = env.metaService.CreateProfile(mathTeacher.ID, services.TeacherMetaInput{TagIDs: []uint64{mathTag.ID}})
	require.NoError(t, err)
	_, err = env.metaService.CreateProfile(artTeacher.ID, services.TeacherMetaInput{TagIDs: []uint64{artTag.ID}})
	require.NoError(t, err)

	c, w := teacherMetaTestContext(http.MethodGet, "/teacher-info/search?tags=math", nil, mathTeacher.ID)
	env.handler.Search(c)

	require.Equal(t, http.StatusOK, w.Code)

	var results []dto.TeacherSearchResultDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	require.Equal(t, mathTeacher.ID, results[0].UserID)
	require.Equal(t, "Maria", results[0].TeacherName)
}

func TestTeacherMetaHandler_SearchUnknownTag(t *testing.T) {
	env := setupTeacherMetaTestEnv(t)

	c, w := teacherMetaTestContext(http.MethodGet, "/teacher-info/search?tags=nonexistent", nil, 1)
	env.handler.Search(c)

	// Unknown tag names match nobody
	require.Equal(t, http.StatusOK, w.Code)

	var results []dto.TeacherSearchResultDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Empty(t, results)
}

func TestTeacherMetaHandler_SearchNoTags(t *testing.T) {
	env := setupTeacherMetaTestEnv(t)

	c, w := teacherMetaTestContext(http.MethodGet, "/teacher-info/search", nil, 1)
	env.handler.Search(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
