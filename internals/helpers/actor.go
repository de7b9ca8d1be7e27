package helper

import (
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/authz"
)

// GetActor merangkai Locals hasil AuthMiddleware menjadi authz.Actor.
func GetActor(c *fiber.Ctx) (authz.Actor, error) {
	id, err := GetUserUUID(c)
	if err != nil {
		return authz.Actor{}, err
	}
	role, err := GetUserRole(c)
	if err != nil {
		return authz.Actor{}, err
	}
	return authz.Actor{ID: id, Role: role}, nil
}
