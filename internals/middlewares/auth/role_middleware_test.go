package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/constants"
	helper "schoolku_backend/internals/helpers"
)

func newRoleTestApp(role string, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/guarded",
		func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals(helper.LocUserRole, role)
			}
			return c.Next()
		},
		handler,
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)
	return app
}

func TestOnlyRolesAllows(t *testing.T) {
	app := newRoleTestApp(constants.RoleAdmin,
		OnlyRoles("❌ admin only", constants.RoleAdmin))

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOnlyRolesForbids(t *testing.T) {
	app := newRoleTestApp(constants.RoleStudent,
		OnlyRoles("❌ admin only", constants.RoleAdmin))

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestOnlyRolesMultipleRoles(t *testing.T) {
	app := newRoleTestApp(constants.RoleTeacher,
		OnlyRoles("❌ staff only", constants.RoleAdmin, constants.RoleTeacher))

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOnlyRolesMissingRole(t *testing.T) {
	app := newRoleTestApp("", OnlyRoles("❌ admin only", constants.RoleAdmin))

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOnlyRolesSlice(t *testing.T) {
	cases := []struct {
		name    string
		role    string
		allowed []string
		want    int
	}{
		{"admin lolos AdminOnly", constants.RoleAdmin, constants.AdminOnly, fiber.StatusOK},
		{"teacher lolos StaffRoles", constants.RoleTeacher, constants.StaffRoles, fiber.StatusOK},
		{"student ditolak StaffRoles", constants.RoleStudent, constants.StaffRoles, fiber.StatusForbidden},
		{"student lolos TeacherAndStudent", constants.RoleStudent, constants.TeacherAndStudent, fiber.StatusOK},
		{"admin ditolak TeacherAndStudent", constants.RoleAdmin, constants.TeacherAndStudent, fiber.StatusForbidden},
		{"tanpa role 401", "", constants.AdminOnly, fiber.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newRoleTestApp(tc.role, OnlyRolesSlice("❌ tidak boleh", tc.allowed))

			resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}
