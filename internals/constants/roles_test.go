package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleStudent))
	assert.True(t, IsValidRole(RoleTeacher))
	assert.True(t, IsValidRole(RoleAdmin))
	assert.False(t, IsValidRole("dkm"))
	assert.False(t, IsValidRole("Admin"))
	assert.False(t, IsValidRole(""))
}

func TestRoleErrorMessages(t *testing.T) {
	assert.Contains(t, RoleErrorAdmin("kelola user"), "kelola user")
	assert.Contains(t, RoleErrorTeacher("buat assignment"), "teacher")
	assert.Contains(t, RoleErrorStudent("submit"), "student")
}
