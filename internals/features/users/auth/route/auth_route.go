// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	controller "schoolku_backend/internals/features/users/auth/controller"
	rateLimiter "schoolku_backend/internals/middlewares"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// Base: /api/auth
	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	// Bootstrap admin pertama: ditolak kalau sudah ada admin
	baseAuth.Post("/create-admin", rateLimiter.RegisterRateLimiter(), authController.CreateAdmin)

	// 🔒 Protected
	protectedAuth := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	protectedAuth.Post("/logout", authController.Logout)
	protectedAuth.Post("/change-password", authController.ChangePassword)
	protectedAuth.Post("/create-admin-secure",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("membuat admin baru"), constants.RoleAdmin),
		authController.CreateAdminSecure)
}
