// file: internals/features/school/courses/controller/course_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/authz"
	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/courses/dto"
	"schoolku_backend/internals/features/school/courses/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{
		DB:       db,
		Validate: validator.New(),
	}
}

/* --- PG error mapping --- */

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) (int, string) {
	// 23503 = foreign_key_violation, 23505 = unique_violation
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return fiber.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		case "23505":
			return fiber.StatusConflict, "Data duplikat (unique violation)."
		}
	}
	return fiber.StatusInternalServerError, "Internal server error"
}

func writePGError(c *fiber.Ctx, err error) error {
	code, msg := mapPGError(err)
	return helper.JsonError(c, code, msg)
}

func (cc *CourseController) findCourse(courseID uuid.UUID) (*model.CourseModel, error) {
	var course model.CourseModel
	if err := cc.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

/* ========================= List (role-filtered) ========================= */

// GET /api/courses — admin semua, teacher yang dia ajar, student yang dia ikuti.
func (cc *CourseController) GetAllCourses(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return err
	}
	scope, err := authz.ListScope(actor)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	q := cc.DB.Model(&model.CourseModel{}).Order("course_created_at DESC")
	switch scope {
	case authz.ScopeTaught:
		q = q.Where("course_teacher_id = ?", actor.ID)
	case authz.ScopeOwn:
		q = q.Joins("JOIN enrollments ON enrollments.enrollment_course_id = courses.course_id").
			Where("enrollments.enrollment_student_id = ?", actor.ID)
	}

	var courses []model.CourseModel
	if err := q.Find(&courses).Error; err != nil {
		log.Println("[ERROR] Failed to fetch courses:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve courses")
	}

	return helper.JsonOK(c, "Courses fetched successfully", dto.ToCourseResponses(courses))
}

/* ========================= Create ========================= */

// POST /api/courses — admin only (route-level)
func (cc *CourseController) CreateCourse(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return err
	}

	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := cc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	// teacher_id opsional, tapi kalau diisi harus user ber-role teacher
	if req.CourseTeacherID != nil {
		if err := cc.ensureTeacherRole(*req.CourseTeacherID); err != nil {
			return err
		}
	}

	course, err := req.ToModel(actor.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Format tanggal harus YYYY-MM-DD")
	}

	if err := cc.DB.Create(course).Error; err != nil {
		log.Println("[ERROR] Failed to create course:", err)
		return writePGError(c, err)
	}

	log.Printf("[SUCCESS] Course %s dibuat oleh %s\n", course.CourseID, actor.ID)
	return helper.JsonCreated(c, "Course created successfully", dto.ToCourseResponse(course))
}

func (cc *CourseController) ensureTeacherRole(teacherID uuid.UUID) error {
	var u userModel.UserModel
	if err := cc.DB.First(&u, "id = ?", teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Teacher tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify teacher")
	}
	if u.Role != constants.RoleTeacher {
		return fiber.NewError(fiber.StatusBadRequest, "User tersebut bukan teacher")
	}
	return nil
}

/* ========================= Delete (explicit cascade) ========================= */

// DELETE /api/courses/:courseId — admin only; hapus semua data turunan dalam satu transaksi.
func (cc *CourseController) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid courseId format")
	}

	if _, err := cc.findCourse(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}

	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM attendances WHERE attendance_course_id = ?`, courseID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM submissions
			WHERE submission_assignment_id IN
				(SELECT assignment_id FROM assignments WHERE assignment_course_id = ?)`, courseID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM assignments WHERE assignment_course_id = ?`, courseID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM enrollments WHERE enrollment_course_id = ?`, courseID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.CourseModel{}, "course_id = ?", courseID).Error
	})
	if err != nil {
		log.Println("[ERROR] Failed to delete course:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}

	log.Printf("[SUCCESS] Course %s beserta data turunannya dihapus\n", courseID)
	return helper.JsonDeleted(c, "Course deleted successfully", fiber.Map{"course_id": courseID})
}

/* ========================= Teacher assignment ========================= */

// PATCH /api/courses/:courseId/assign-teacher — admin only
func (cc *CourseController) AssignTeacher(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid courseId format")
	}

	var req dto.AssignTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := cc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "teacher_id wajib diisi")
	}

	course, err := cc.findCourse(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}

	// maksimal satu teacher per course
	if course.CourseTeacherID != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Course sudah punya teacher, lepas dulu sebelum assign")
	}
	if err := cc.ensureTeacherRole(req.TeacherID); err != nil {
		return err
	}

	if err := cc.DB.Model(course).Update("course_teacher_id", req.TeacherID).Error; err != nil {
		return writePGError(c, err)
	}
	course.CourseTeacherID = &req.TeacherID

	return helper.JsonUpdated(c, "Teacher assigned successfully", dto.ToCourseResponse(course))
}

// PATCH /api/courses/:courseId/remove-teacher — admin only
func (cc *CourseController) RemoveTeacher(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid courseId format")
	}

	var req dto.RemoveTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := cc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "teacher_id wajib diisi")
	}

	course, err := cc.findCourse(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}

	if course.CourseTeacherID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course belum punya teacher")
	}
	if *course.CourseTeacherID != req.TeacherID {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak cocok dengan teacher course ini")
	}

	if err := cc.DB.Model(course).Update("course_teacher_id", nil).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove teacher")
	}
	course.CourseTeacherID = nil

	return helper.JsonUpdated(c, "Teacher removed successfully", dto.ToCourseResponse(course))
}

/* ========================= Enrollment ========================= */

// PATCH /api/courses/:courseId/add-student — admin only
func (cc *CourseController) AddStudent(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid courseId format")
	}

	var req dto.AddStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := cc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "student_id wajib diisi")
	}

	if _, err := cc.findCourse(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}

	var student userModel.UserModel
	if err := cc.DB.First(&student, "id = ?", req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify student")
	}
	if student.Role != constants.RoleStudent {
		return helper.JsonError(c, fiber.StatusBadRequest, "User tersebut bukan student")
	}

	enrollment := model.EnrollmentModel{
		EnrollmentStudentID: req.StudentID,
		EnrollmentCourseID:  courseID,
	}
	if err := cc.DB.Create(&enrollment).Error; err != nil {
		// unique (student, course) → 409
		return writePGError(c, err)
	}

	log.Printf("[SUCCESS] Student %s ditambahkan ke course %s\n", req.StudentID, courseID)
	return helper.JsonCreated(c, "Student enrolled successfully", enrollment)
}

// DELETE /api/courses/:courseId/remove-student — admin only
func (cc *CourseController) RemoveStudent(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid courseId format")
	}

	var req dto.RemoveStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := cc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "student_id wajib diisi")
	}

	if _, err := cc.findCourse(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}

	res := cc.DB.Where("enrollment_course_id = ? AND enrollment_student_id = ?", courseID, req.StudentID).
		Delete(&model.EnrollmentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove student")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student tidak terdaftar di course ini")
	}

	return helper.JsonDeleted(c, "Student removed from course", fiber.Map{
		"course_id":  courseID,
		"student_id": req.StudentID,
	})
}

/* ========================= Students of a course ========================= */

// GET /api/courses/:courseId/students — admin atau teacher pemilik course.
func (cc *CourseController) GetCourseStudents(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid courseId format")
	}
	actor, err := helper.GetActor(c)
	if err != nil {
		return err
	}

	course, err := cc.findCourse(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}

	if err := authz.Decide(actor, authz.ActionCourseTeachOrAdmin, authz.Resource{
		CourseTeacherID: course.CourseTeacherID,
	}); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	var students []dto.EnrolledStudentResponse
	if err := cc.DB.Table("enrollments").
		Select("enrollments.enrollment_id, enrollments.enrollment_student_id, users.user_name, users.email, enrollments.enrollment_created_at").
		Joins("JOIN users ON users.id = enrollments.enrollment_student_id").
		Where("enrollments.enrollment_course_id = ?", courseID).
		Order("users.user_name ASC").
		Scan(&students).Error; err != nil {
		log.Println("[ERROR] Failed to fetch course students:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve students")
	}

	return helper.JsonOK(c, "Course students fetched successfully", students)
}
