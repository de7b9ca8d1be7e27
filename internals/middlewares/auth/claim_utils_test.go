package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTokenExpiry(t *testing.T) {
	future := time.Now().Add(1 * time.Hour).Unix()
	past := time.Now().Add(-1 * time.Hour).Unix()

	t.Run("valid future exp", func(t *testing.T) {
		claims := jwt.MapClaims{"exp": float64(future)}
		assert.NoError(t, validateTokenExpiry(claims, 30*time.Second))
	})

	t.Run("expired", func(t *testing.T) {
		claims := jwt.MapClaims{"exp": float64(past)}
		assert.Error(t, validateTokenExpiry(claims, 30*time.Second))
	})

	t.Run("within skew", func(t *testing.T) {
		justExpired := time.Now().Add(-10 * time.Second).Unix()
		claims := jwt.MapClaims{"exp": float64(justExpired)}
		assert.NoError(t, validateTokenExpiry(claims, 30*time.Second))
	})

	t.Run("exp as non-numeric string", func(t *testing.T) {
		claims := jwt.MapClaims{"exp": "besok"}
		assert.Error(t, validateTokenExpiry(claims, 0))
	})

	t.Run("exp as numeric string", func(t *testing.T) {
		claims := jwt.MapClaims{"exp": "9999999999"}
		assert.NoError(t, validateTokenExpiry(claims, 0))
	})

	t.Run("missing exp", func(t *testing.T) {
		assert.Error(t, validateTokenExpiry(jwt.MapClaims{}, 0))
	})
}

func TestExtractUserID(t *testing.T) {
	id := uuid.New()

	got, err := extractUserID(jwt.MapClaims{"id": id.String()})
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = extractUserID(jwt.MapClaims{"id": 12345})
	assert.Error(t, err)

	_, err = extractUserID(jwt.MapClaims{})
	assert.Error(t, err)

	_, err = extractUserID(jwt.MapClaims{"id": "bukan-uuid"})
	assert.Error(t, err)
}
