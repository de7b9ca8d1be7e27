package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/constants"
	userModel "schoolku_backend/internals/features/users/user/model"
)

func TestIssueTokenClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &userModel.UserModel{
		ID:       uuid.New(),
		UserName: "Bu Sari",
		Role:     constants.RoleTeacher,
	}

	tokenString, err := issueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	parsed, err := jwt.Parse(tokenString, func(tok *jwt.Token) (interface{}, error) {
		require.IsType(t, &jwt.SigningMethodHMAC{}, tok.Method)
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)

	assert.Equal(t, user.ID.String(), claims["id"])
	assert.Equal(t, constants.RoleTeacher, claims["role"])
	assert.Equal(t, "Bu Sari", claims["user_name"])

	// masa berlaku 12 jam
	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	remaining := time.Until(time.Unix(int64(exp), 0))
	assert.InDelta(t, tokenTTL.Seconds(), remaining.Seconds(), 60)
}

func TestIssueTokenMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := issueToken(&userModel.UserModel{ID: uuid.New(), Role: constants.RoleStudent})
	assert.Error(t, err)
}
