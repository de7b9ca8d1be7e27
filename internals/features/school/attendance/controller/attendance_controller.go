// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/authz"
	"schoolku_backend/internals/features/school/attendance/dto"
	"schoolku_backend/internals/features/school/attendance/model"
	courseModel "schoolku_backend/internals/features/school/courses/model"
	helper "schoolku_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Facts    authz.Facts
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:       db,
		Validate: validator.New(),
		Facts:    authz.NewGormFacts(db),
	}
}

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func writePGError(c *fiber.Ctx, err error) error {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return helper.JsonError(c, fiber.StatusBadRequest, "Referensi tidak ditemukan (FK violation).")
		case "23505":
			return helper.JsonError(c, fiber.StatusConflict, "Data duplikat (unique violation).")
		}
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}

// resolveCourseForWrite cek course ada + actor boleh menulis attendance-nya
// (admin, atau teacher course tersebut).
func (ac *AttendanceController) resolveCourseForWrite(c *fiber.Ctx, actor authz.Actor) (*courseModel.CourseModel, error) {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid courseId format")
	}

	var course courseModel.CourseModel
	if err := ac.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}

	if err := authz.Decide(actor, authz.ActionCourseTeachOrAdmin, authz.Resource{
		CourseTeacherID: course.CourseTeacherID,
	}); err != nil {
		return nil, helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	return &course, nil
}

/* ========================= Mark ========================= */

// POST /api/attendance/:courseId/attendance — admin atau teacher course;
// student harus terdaftar; duplikat tanggal → 409.
func (ac *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return err
	}
	course, err := ac.resolveCourseForWrite(c, actor)
	if err != nil {
		return err
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	enrolled, err := ac.Facts.IsEnrolled(c.Context(), course.CourseID, req.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify enrollment")
	}
	if !enrolled {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student tidak terdaftar di course ini")
	}

	attendance, err := req.ToModel(course.CourseID, actor.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Format tanggal harus YYYY-MM-DD")
	}

	// satu baris per (course, student, tanggal)
	var count int64
	if err := ac.DB.Model(&model.AttendanceModel{}).
		Where("attendance_course_id = ? AND attendance_student_id = ? AND attendance_date = ?",
			course.CourseID, req.StudentID, time.Time(attendance.AttendanceDate)).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing attendance")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Attendance untuk tanggal itu sudah dicatat")
	}

	if err := ac.DB.Create(attendance).Error; err != nil {
		log.Println("[ERROR] Failed to create attendance:", err)
		return writePGError(c, err)
	}

	log.Printf("[SUCCESS] Attendance %s dicatat oleh %s\n", attendance.AttendanceID, actor.ID)
	return helper.JsonCreated(c, "Attendance marked successfully", dto.ToAttendanceResponse(attendance))
}

/* ========================= Read ========================= */

// GET /api/attendance/:courseId/attendance — admin atau teacher course.
func (ac *AttendanceController) GetCourseAttendance(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return err
	}
	course, err := ac.resolveCourseForWrite(c, actor)
	if err != nil {
		return err
	}

	var records []model.AttendanceModel
	if err := ac.DB.Where("attendance_course_id = ?", course.CourseID).
		Order("attendance_date DESC").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve attendance")
	}

	return helper.JsonOK(c, "Course attendance fetched successfully", dto.ToAttendanceResponses(records))
}

// GET /api/attendance/my-attendance — catatan milik student sendiri.
func (ac *AttendanceController) GetStudentAttendance(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return err
	}

	var records []model.AttendanceModel
	if err := ac.DB.Where("attendance_student_id = ?", actor.ID).
		Order("attendance_date DESC").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve attendance")
	}

	return helper.JsonOK(c, "Attendance fetched successfully", dto.ToAttendanceResponses(records))
}

// GET /api/attendance — admin semua (paginated), teacher course yang dia ajar,
// student miliknya sendiri.
func (ac *AttendanceController) GetAttendanceRecords(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return err
	}
	scope, err := authz.ListScope(actor)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ac.DB.Model(&model.AttendanceModel{})
	switch scope {
	case authz.ScopeTaught:
		q = q.Where(`attendance_course_id IN
			(SELECT course_id FROM courses WHERE course_teacher_id = ?)`, actor.ID)
	case authz.ScopeOwn:
		q = q.Where("attendance_student_id = ?", actor.ID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count attendance")
	}

	var records []model.AttendanceModel
	if err := q.Order("attendance_date DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve attendance")
	}

	return helper.JsonList(c, "Attendance records fetched successfully",
		dto.ToAttendanceResponses(records),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ========================= Update ========================= */

// PATCH /api/attendance/:courseId/attendance/:attendanceId — admin atau teacher course.
func (ac *AttendanceController) UpdateAttendance(c *fiber.Ctx) error {
	actor, err := helper.GetActor(c)
	if err != nil {
		return err
	}
	course, err := ac.resolveCourseForWrite(c, actor)
	if err != nil {
		return err
	}

	attendanceID, err := uuid.Parse(c.Params("attendanceId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attendanceId format")
	}

	var record model.AttendanceModel
	if err := ac.DB.First(&record,
		"attendance_id = ? AND attendance_course_id = ?", attendanceID, course.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve attendance")
	}

	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Status harus Present atau Absent")
	}

	if err := ac.DB.Model(&record).Updates(map[string]interface{}{
		"attendance_status":    req.Status,
		"attendance_marked_by": actor.ID,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update attendance")
	}
	record.AttendanceStatus = model.AttendanceStatus(req.Status)
	record.AttendanceMarkedBy = actor.ID

	return helper.JsonUpdated(c, "Attendance updated successfully", dto.ToAttendanceResponse(&record))
}
