package auth

import (
	"testing"
	"time"

	"github.com/classpoint/classroom-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager("test-secret")

	user := &models.User{ID: 42, Username: "teacher1", Role: models.RoleTeacher}
	token, err := m.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), claims.UserID)
	require.Equal(t, "teacher1", claims.Username)
	require.Equal(t, models.RoleTeacher, claims.Role)
}

func TestTokenManager_VerifyWrongSecret(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.Issue(&models.User{ID: 1, Username: "u", Role: models.RoleStudent})
	require.NoError(t, err)

	other := NewTokenManager("other-secret")
	_, err = other.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_VerifyExpired(t *testing.T) {
	m := NewTokenManager("test-secret")

	claims := Claims{
		UserID:   1,
		Username: "u",
		Role:     models.RoleStudent,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = m.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_VerifyMalformed(t *testing.T) {
	m := NewTokenManager("test-secret")

	_, err := m.Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
