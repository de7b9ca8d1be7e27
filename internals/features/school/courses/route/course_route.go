// file: internals/features/school/courses/route/course_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	controller "schoolku_backend/internals/features/school/courses/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func CourseRoutes(app *fiber.App, db *gorm.DB) {
	courseController := controller.NewCourseController(db)

	// Base: /api/courses — semua butuh login
	courses := app.Group("/api/courses", authMiddleware.AuthMiddleware(db))

	// List difilter per role di controller
	courses.Get("/", courseController.GetAllCourses)

	// Admin atau teacher pemilik course (dicek di controller)
	courses.Get("/:courseId/students",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorStaff("melihat daftar student course"), constants.StaffRoles),
		courseController.GetCourseStudents)

	// 🔒 Admin only
	adminOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola course"), constants.AdminOnly)
	courses.Post("/", adminOnly, courseController.CreateCourse)
	courses.Delete("/:courseId", adminOnly, courseController.DeleteCourse)
	courses.Patch("/:courseId/assign-teacher", adminOnly, courseController.AssignTeacher)
	courses.Patch("/:courseId/remove-teacher", adminOnly, courseController.RemoveTeacher)
	courses.Patch("/:courseId/add-student", adminOnly, courseController.AddStudent)
	courses.Delete("/:courseId/remove-student", adminOnly, courseController.RemoveStudent)
}
