// file: internals/features/school/assignments/controller/assignment_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/authz"
	"schoolku_backend/internals/features/school/assignments/dto"
	"schoolku_backend/internals/features/school/assignments/model"
	courseModel "schoolku_backend/internals/features/school/courses/model"
	helper "schoolku_backend/internals/helpers"
)

type AssignmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Facts    authz.Facts
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{
		DB:       db,
		Validate: validator.New(),
		Facts:    authz.NewGormFacts(db),
	}
}

func (ac *AssignmentController) findCourse(courseID uuid.UUID) (*courseModel.CourseModel, error) {
	var course courseModel.CourseModel
	if err := ac.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (ac *AssignmentController) findAssignment(assignmentID uuid.UUID) (*model.AssignmentModel, error) {
	var assignment model.AssignmentModel
	if err := ac.DB.First(&assignment, "assignment_id = ?", assignmentID).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

/* ========================= Create ========================= */

// POST /api/assignments/course/:courseId — hanya teacher course tersebut (admin TIDAK bypass).
func (ac *AssignmentController) CreateAssignment(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid courseId format")
	}
	actor, err := helper.GetActor(c)
	if err != nil {
		return err
	}

	course, err := ac.findCourse(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}

	if err := authz.Decide(actor, authz.ActionCourseTeach, authz.Resource{
		CourseTeacherID: course.CourseTeacherID,
	}); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	assignment, err := req.ToModel(courseID, actor.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Format tanggal harus YYYY-MM-DD")
	}

	if err := ac.DB.Create(assignment).Error; err != nil {
		log.Println("[ERROR] Failed to create assignment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create assignment")
	}

	log.Printf("[SUCCESS] Assignment %s dibuat di course %s\n", assignment.AssignmentID, courseID)
	return helper.JsonCreated(c, "Assignment created successfully", dto.ToAssignmentResponse(assignment))
}

/* ========================= Read ========================= */

// GET /api/assignments/course/:courseId — teacher pemilik atau student terdaftar.
func (ac *AssignmentController) GetAssignmentsByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid courseId format")
	}
	actor, err := helper.GetActor(c)
	if err != nil {
		return err
	}

	course, err := ac.findCourse(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}

	switch {
	case actor.IsTeacher():
		if course.CourseTeacherID == nil || *course.CourseTeacherID != actor.ID {
			return helper.JsonError(c, fiber.StatusForbidden, "Bukan teacher course ini")
		}
	case actor.IsStudent():
		enrolled, ferr := ac.Facts.IsEnrolled(c.Context(), courseID, actor.ID)
		if ferr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify enrollment")
		}
		if !enrolled {
			return helper.JsonError(c, fiber.StatusForbidden, "Tidak terdaftar di course ini")
		}
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Role tidak dikenal")
	}

	var assignments []model.AssignmentModel
	if err := ac.DB.Where("assignment_course_id = ?", courseID).
		Order("assignment_due_date ASC").
		Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve assignments")
	}

	return helper.JsonOK(c, "Assignments fetched successfully", dto.ToAssignmentResponses(assignments))
}

// GET /api/assignments/my-courses — assignment dari semua course yang diikuti student.
func (ac *AssignmentController) GetStudentAssignments(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return err
	}

	var assignments []model.AssignmentModel
	if err := ac.DB.
		Joins("JOIN enrollments ON enrollments.enrollment_course_id = assignments.assignment_course_id").
		Where("enrollments.enrollment_student_id = ?", actor.ID).
		Order("assignment_due_date ASC").
		Find(&assignments).Error; err != nil {
		log.Println("[ERROR] Failed to fetch student assignments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve assignments")
	}

	return helper.JsonOK(c, "Assignments fetched successfully", dto.ToAssignmentResponses(assignments))
}

// GET /api/assignments/:assignmentId — semua user terautentikasi.
func (ac *AssignmentController) GetAssignmentByID(c *fiber.Ctx) error {
	assignmentID, err := uuid.Parse(c.Params("assignmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignmentId format")
	}

	assignment, err := ac.findAssignment(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve assignment")
	}

	return helper.JsonOK(c, "Assignment fetched successfully", dto.ToAssignmentResponse(assignment))
}

/* ========================= Update / Delete (durable ownership) ========================= */

// PATCH /api/assignments/:assignmentId — hanya creator (meski sudah bukan teacher course-nya).
func (ac *AssignmentController) UpdateAssignment(c *fiber.Ctx) error {
	assignmentID, err := uuid.Parse(c.Params("assignmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignmentId format")
	}
	actor, err := helper.GetActor(c)
	if err != nil {
		return err
	}

	assignment, err := ac.findAssignment(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve assignment")
	}

	if err := authz.Decide(actor, authz.ActionOwnResource, authz.Resource{
		CreatedBy: assignment.AssignmentCreatedBy,
	}); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	var req dto.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	updates, err := req.ToUpdates()
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Format tanggal harus YYYY-MM-DD")
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ac.DB.Model(assignment).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update assignment")
	}

	// reload supaya response bawa nilai terbaru
	updated, err := ac.findAssignment(assignmentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload assignment")
	}

	return helper.JsonUpdated(c, "Assignment updated successfully", dto.ToAssignmentResponse(updated))
}

// DELETE /api/assignments/:assignmentId — hanya creator; submission ikut terhapus.
func (ac *AssignmentController) DeleteAssignment(c *fiber.Ctx) error {
	assignmentID, err := uuid.Parse(c.Params("assignmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignmentId format")
	}
	actor, err := helper.GetActor(c)
	if err != nil {
		return err
	}

	assignment, err := ac.findAssignment(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve assignment")
	}

	if err := authz.Decide(actor, authz.ActionOwnResource, authz.Resource{
		CreatedBy: assignment.AssignmentCreatedBy,
	}); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("submission_assignment_id = ?", assignmentID).
			Delete(&model.SubmissionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.AssignmentModel{}, "assignment_id = ?", assignmentID).Error
	})
	if err != nil {
		log.Println("[ERROR] Failed to delete assignment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete assignment")
	}

	return helper.JsonDeleted(c, "Assignment deleted successfully", fiber.Map{"assignment_id": assignmentID})
}
