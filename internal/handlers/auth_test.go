package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/classpoint/classroom-api/internal/auth"
	"github.com/classpoint/classroom-api/internal/constants"
	"github.com/classpoint/classroom-api/internal/database"
	"github.com/classpoint/classroom-api/internal/models"
	"github.com/classpoint/classroom-api/internal/repository"
	"github.com/classpoint/classroom-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db          *gorm.DB
	handler     *AuthHandler
	authService *services.AuthService
	tokens      *auth.TokenManager
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.ParentChild{},
		&models.Classroom{},
		&models.ClassroomMember{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo)
	tokens := auth.NewTokenManager("test-secret")
	handler := NewAuthHandler(authService, tokens)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		handler:     handler,
		authService: authService,
		tokens:      tokens,
	}
}

func authTestContext(method, url string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

func TestAuthHandler_Signup(t *testing.T) {
	env := setupAuthTestEnv(t)

	payload := map[string]string{
		"username": "teacher1",
		"password": "password123",
		"name":     "Maria",
		"surname":  "Nowak",
		"role":     "teacher",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := authTestContext(http.MethodPost, "/auth/signup", body)
	env.handler.Signup(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Token string `json:"token"`
		User  struct {
			ID       uint64 `json:"id"`
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	require.Equal(t, "teacher1", response.User.Username)
	require.Equal(t, "teacher", response.User.Role)

	// Token must verify against the issuing manager
	claims, err := env.tokens.Verify(response.Token)
	require.NoError(t, err)
	require.Equal(t, response.User.ID, claims.UserID)

	// Password is stored hashed, never echoed
	var stored models.User
	require.NoError(t, env.db.First(&stored, response.User.ID).Error)
	require.NotEqual(t, "password123", stored.PasswordHash)
	require.NotContains(t, w.Body.String(), "password123")
}

func TestAuthHandler_SignupRejectsStudentRole(t *testing.T) {
	env := setupAuthTestEnv(t)

	payload := map[string]string{
		"username": "kid1",
		"password": "password123",
		"name":     "Jan",
		"surname":  "Nowak",
		"role":     "student",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := authTestContext(http.MethodPost, "/auth/signup", body)
	env.handler.Signup(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_SignupDuplicateUsername(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Signup(services.SignupInput{
		Username: "taken",
		Password: "password123",
		Role:     models.RoleTeacher,
	})
	require.NoError(t, err)

	payload := map[string]string{
		"username": "taken",
		"password": "password123",
		"name":     "Other",
		"surname":  "Person",
		"role":     "parent",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := authTestContext(http.MethodPost, "/auth/signup", body)
	env.handler.Signup(c)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_SignupShortPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	payload := map[string]string{
		"username": "shorty",
		"password": "short",
		"name":     "A",
		"surname":  "B",
		"role":     "teacher",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := authTestContext(http.MethodPost, "/auth/signup", body)
	env.handler.Signup(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.User{
		Username:     "parent1",
		PasswordHash: string(hash),
		Role:         models.RoleParent,
	}
	require.NoError(t, env.db.Create(user).Error)

	payload := map[string]string{"username": "parent1", "password": "password123"}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := authTestContext(http.MethodPost, "/auth/login", body)
	env.handler.Login(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	claims, err := env.tokens.Verify(response.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, env.db.Create(&models.User{
		Username:     "parent1",
		PasswordHash: string(hash),
		Role:         models.RoleParent,
	}).Error)

	payload := map[string]string{"username": "parent1", "password": "wrong-password"}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := authTestContext(http.MethodPost, "/auth/login", body)
	env.handler.Login(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_RegisterChild(t *testing.T) {
	env := setupAuthTestEnv(t)

	parent, err := env.authService.Signup(services.SignupInput{
		Username: "parent1",
		Password: "password123",
		Role:     models.RoleParent,
	})
	require.NoError(t, err)

	payload := map[string]string{
		"username": "child1",
		"password": "password123",
		"name":     "Ola",
		"surname":  "Nowak",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := authTestContext(http.MethodPost, "/auth/register-child", body)
	c.Set(constants.ContextKeyUserID, parent.ID)
	env.handler.RegisterChild(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var child models.User
	require.NoError(t, env.db.Where("username = ?", "child1").First(&child).Error)
	require.Equal(t, models.RoleStudent, child.Role)

	// The guardianship edge is created in the same transaction
	var count int64
	require.NoError(t, env.db.Model(&models.ParentChild{}).
		Where("parent_id = ? AND child_id = ?", parent.ID, child.ID).
		Count(&count).Error)
	require.Equal(t, int64(1), count)
}
