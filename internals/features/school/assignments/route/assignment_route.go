// file: internals/features/school/assignments/route/assignment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	controller "schoolku_backend/internals/features/school/assignments/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func AssignmentRoutes(app *fiber.App, db *gorm.DB) {
	assignmentController := controller.NewAssignmentController(db)

	// Base: /api/assignments — semua butuh login
	assignments := app.Group("/api/assignments", authMiddleware.AuthMiddleware(db))

	// Path statis didaftarkan sebelum /:assignmentId
	assignments.Get("/submissions",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("melihat semua submission"), constants.AdminOnly),
		assignmentController.GetAllSubmissions)
	assignments.Get("/my-courses",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorStudent("melihat assignment course-nya"), constants.StudentOnly),
		assignmentController.GetStudentAssignments)

	assignments.Post("/course/:courseId",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorTeacher("membuat assignment"), constants.TeacherOnly),
		assignmentController.CreateAssignment)
	assignments.Get("/course/:courseId",
		authMiddleware.OnlyRolesSlice("❌ Hanya teacher atau student yang boleh melihat assignment course.",
			constants.TeacherAndStudent),
		assignmentController.GetAssignmentsByCourse)

	assignments.Get("/:assignmentId", assignmentController.GetAssignmentByID)
	assignments.Patch("/:assignmentId",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorTeacher("mengubah assignment"), constants.TeacherOnly),
		assignmentController.UpdateAssignment)
	assignments.Delete("/:assignmentId",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorTeacher("menghapus assignment"), constants.TeacherOnly),
		assignmentController.DeleteAssignment)

	assignments.Post("/:assignmentId/submit",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorStudent("mengumpulkan assignment"), constants.StudentOnly),
		assignmentController.SubmitAssignment)
	assignments.Get("/:assignmentId/submissions", assignmentController.GetAssignmentSubmissions)
	assignments.Patch("/:assignmentId/submissions/:submissionId",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorTeacher("menilai submission"), constants.TeacherOnly),
		assignmentController.GradeSubmission)
	assignments.Patch("/:assignmentId/feedback",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorTeacher("memberi feedback"), constants.TeacherOnly),
		assignmentController.GiveFeedback)
}
