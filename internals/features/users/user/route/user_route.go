// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	controller "schoolku_backend/internals/features/users/user/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	userController := controller.NewUserController(db)

	// Base: /api/users — semua butuh login
	users := app.Group("/api/users", authMiddleware.AuthMiddleware(db))

	users.Get("/me", userController.GetMe)
	users.Get("/:id", userController.GetUserByID)
	users.Patch("/:id/password", userController.UpdatePassword)

	// 🔒 Admin only
	adminOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola user"), constants.AdminOnly)
	users.Get("/", adminOnly, userController.GetUsers)
	users.Patch("/:id/role", adminOnly, userController.UpdateUserRole)
	users.Delete("/:id", adminOnly, userController.DeleteUser)
}
