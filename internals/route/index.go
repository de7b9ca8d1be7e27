// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentRoute "schoolku_backend/internals/features/school/assignments/route"
	attendanceRoute "schoolku_backend/internals/features/school/attendance/route"
	courseRoute "schoolku_backend/internals/features/school/courses/route"
	authRoute "schoolku_backend/internals/features/users/auth/route"
	userRoute "schoolku_backend/internals/features/users/user/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(app, db)

	log.Println("[INFO] Setting up CourseRoutes...")
	courseRoute.CourseRoutes(app, db)

	log.Println("[INFO] Setting up AssignmentRoutes...")
	assignmentRoute.AssignmentRoutes(app, db)

	log.Println("[INFO] Setting up AttendanceRoutes...")
	attendanceRoute.AttendanceRoutes(app, db)

	log.Println("[SUCCESS] All routes registered")
}
