// file: internals/features/school/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	controller "schoolku_backend/internals/features/school/attendance/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func AttendanceRoutes(app *fiber.App, db *gorm.DB) {
	attendanceController := controller.NewAttendanceController(db)

	// Base: /api/attendance — semua butuh login
	attendance := app.Group("/api/attendance", authMiddleware.AuthMiddleware(db))

	// List difilter per role di controller
	attendance.Get("/", attendanceController.GetAttendanceRecords)
	attendance.Get("/my-attendance",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("melihat attendance-nya"), constants.RoleStudent),
		attendanceController.GetStudentAttendance)

	// Admin atau teacher course (kepemilikan dicek di controller)
	staffOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorStaff("mengelola attendance"),
		constants.StaffRoles)
	attendance.Post("/:courseId/attendance", staffOnly, attendanceController.MarkAttendance)
	attendance.Get("/:courseId/attendance", staffOnly, attendanceController.GetCourseAttendance)
	attendance.Patch("/:courseId/attendance/:attendanceId", staffOnly, attendanceController.UpdateAttendance)
}
