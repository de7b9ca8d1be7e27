// file: internals/helpers/get_user_uuid.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Keys Locals yang diisi middleware auth (HARUS seragam di semua handler)
const (
	LocUserID   = "user_id"
	LocUserRole = "userRole"
)

// GetUserUUID mengambil user_id dari Locals dan memastikan format UUID valid.
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocUserID).(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user id missing")
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user id format")
	}
	return id, nil
}

// GetUserRole mengambil role dari Locals.
func GetUserRole(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals(LocUserRole).(string)
	if !ok || strings.TrimSpace(role) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - role missing")
	}
	return role, nil
}
