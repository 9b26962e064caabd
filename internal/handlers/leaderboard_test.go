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

type leaderboardTestEnv struct {
	db      *gorm.DB
	handler *LeaderboardHandler
	game    *models.Game
	student *models.User
}

func setupLeaderboardTestEnv(t *testing.T) leaderboardTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Classroom{},
		&models.ClassroomMember{},
		&models.Game{},
		&models.LeaderboardEntry{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	leaderboardRepo := repository.NewLeaderboardRepository(db)
	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepository(db)
	leaderboardService := services.NewLeaderboardService(leaderboardRepo, userRepo, gameRepo)
	handler := NewLeaderboardHandler(leaderboardService)

	classroom := &models.Classroom{Name: "Math"}
	require.NoError(t, db.Create(classroom).Error)

	student := &models.User{
		Username:     "student1",
		PasswordHash: "hashed",
		Role:         models.RoleStudent,
		ClassroomID:  &classroom.ID,
	}
	require.NoError(t, db.Create(student).Error)

	game := &models.Game{Name: "Times Tables"}
	require.NoError(t, db.Create(game).Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return leaderboardTestEnv{
		db:      db,
		handler: handler,
		game:    game,
		student: student,
	}
}

func leaderboardTestContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
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

func TestLeaderboardHandler_SubmitScore(t *testing.T) {
	env := setupLeaderboardTestEnv(t)

	body, err := json.Marshal(map[string]interface{}{
		"game_id": env.game.ID,
		"score":   120,
	})
	require.NoError(t, err)

	c, w := leaderboardTestContext(http.MethodPost, "/leaderboard", body, env.student.ID)
	env.handler.SubmitScore(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.LeaderboardEntryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, int64(120), response.Score)
	require.Equal(t, *env.student.ClassroomID, response.ClassroomID)
}

func TestLeaderboardHandler_SubmitScoreWithoutClassroom(t *testing.T) {
	env := setupLeaderboardTestEnv(t)

	loner := &models.User{Username: "loner", PasswordHash: "hashed", Role: models.RoleStudent}
	require.NoError(t, env.db.Create(loner).Error)

	body, err := json.Marshal(map[string]interface{}{
		"game_id": env.game.ID,
		"score":   50,
	})
	require.NoError(t, err)

	c, w := leaderboardTestContext(http.MethodPost, "/leaderboard", body, loner.ID)
	env.handler.SubmitScore(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeaderboardHandler_SubmitScoreUnknownGame(t *testing.T) {
	env := setupLeaderboardTestEnv(t)

	body, err := json.Marshal(map[string]interface{}{
		"game_id": 999,
		"score":   50,
	})
	require.NoError(t, err)

	c, w := leaderboardTestContext(http.MethodPost, "/leaderboard", body, env.student.ID)
	env.handler.SubmitScore(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeaderboardHandler_GameLeaderboardPagination(t *testing.T) {
	env := setupLeaderboardTestEnv(t)

	for i := 0; i < 15; i++ {
		require.NoError(t, env.db.Create(&models.LeaderboardEntry{
			GameID:      env.game.ID,
			UserID:      env.student.ID,
			ClassroomID: *env.student.ClassroomID,
			Value:       int64(i + 1),
		}).Error)
	}

	c, w := leaderboardTestContext(http.MethodGet, "/leaderboard/game/1?page=2&limit=10", nil, env.student.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	env.handler.GameLeaderboard(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.LeaderboardPageDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Data, 5)
	require.Equal(t, 2, response.Pagination.Page)
	require.Equal(t, 10, response.Pagination.Limit)
	require.Equal(t, int64(15), response.Pagination.Total)
}

func TestLeaderboardHandler_GameLeaderboardOrdering(t *testing.T) {
	env := setupLeaderboardTestEnv(t)

	for _, value := range []int64{30, 90, 60} {
		require.NoError(t, env.db.Create(&models.LeaderboardEntry{
			GameID:      env.game.ID,
			UserID:      env.student.ID,
			ClassroomID: *env.student.ClassroomID,
			Value:       value,
		}).Error)
	}

	c, w := leaderboardTestContext(http.MethodGet, "/leaderboard/game/1", nil, env.student.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	env.handler.GameLeaderboard(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.LeaderboardPageDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Data, 3)
	require.Equal(t, int64(90), response.Data[0].Score)
	require.Equal(t, int64(60), response.Data[1].Score)
	require.Equal(t, int64(30), response.Data[2].Score)
}

func TestLeaderboardHandler_LimitCapped(t *testing.T) {
	env := setupLeaderboardTestEnv(t)

	c, w := leaderboardTestContext(http.MethodGet, "/leaderboard/user/1?limit=1000", nil, env.student.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	env.handler.UserScores(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.LeaderboardPageDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, constants.MaxPageSize, response.Pagination.Limit)
}
