package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-banget")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "rahasia-banget", hash)

	assert.NoError(t, CheckPasswordHash(hash, "rahasia-banget"))
	assert.Error(t, CheckPasswordHash(hash, "password-salah"))
}

func TestValidatePasswordStrength(t *testing.T) {
	assert.NoError(t, ValidatePasswordStrength("12345678"))
	assert.Error(t, ValidatePasswordStrength("pendek"))
	assert.Error(t, ValidatePasswordStrength("        "))
}
