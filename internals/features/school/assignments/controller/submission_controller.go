// file: internals/features/school/assignments/controller/submission_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/authz"
	"schoolku_backend/internals/features/school/assignments/dto"
	"schoolku_backend/internals/features/school/assignments/model"
	helper "schoolku_backend/internals/helpers"
)

/* --- PG error mapping --- */

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

// liveTeacherCheck memastikan actor adalah teacher course dari assignment SAAT INI.
// Grading dan feedback selalu dicek live, bukan ke creator.
func (ac *AssignmentController) liveTeacherCheck(c *fiber.Ctx, actor authz.Actor, assignment *model.AssignmentModel) error {
	course, err := ac.findCourse(assignment.AssignmentCourseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}
	if err := authz.Decide(actor, authz.ActionCourseTeach, authz.Resource{
		CourseTeacherID: course.CourseTeacherID,
	}); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	return nil
}

/* ========================= Submit ========================= */

// POST /api/assignments/:assignmentId/submit — student terdaftar; duplikat → 409.
func (ac *AssignmentController) SubmitAssignment(c *fiber.Ctx) error {
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

	enrolled, err := ac.Facts.IsEnrolled(c.Context(), assignment.AssignmentCourseID, actor.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify enrollment")
	}
	if err := authz.Decide(actor, authz.ActionStudentSubmit, authz.Resource{
		Enrolled: enrolled,
	}); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	var req dto.SubmitAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "submission_content wajib diisi")
	}

	// cek duplikat lebih dulu biar pesannya jelas; unique index tetap jaring terakhir
	var count int64
	if err := ac.DB.Model(&model.SubmissionModel{}).
		Where("submission_assignment_id = ? AND submission_student_id = ?", assignmentID, actor.ID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing submission")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Assignment ini sudah pernah dikumpulkan")
	}

	submission := model.SubmissionModel{
		SubmissionAssignmentID: assignmentID,
		SubmissionStudentID:    actor.ID,
		SubmissionContent:      req.SubmissionContent,
	}
	if err := ac.DB.Create(&submission).Error; err != nil {
		log.Println("[ERROR] Failed to create submission:", err)
		return writePGError(c, err)
	}

	log.Printf("[SUCCESS] Student %s submit assignment %s\n", actor.ID, assignmentID)
	return helper.JsonCreated(c, "Assignment submitted successfully", dto.ToSubmissionResponse(&submission))
}

/* ========================= Read ========================= */

// GET /api/assignments/:assignmentId/submissions — admin semua, teacher pengajar semua,
// student hanya miliknya sendiri.
func (ac *AssignmentController) GetAssignmentSubmissions(c *fiber.Ctx) error {
	assignmentID, err := uuid.Parse(c.Params("assignmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignmentId format")
	}
	actor, err := helper.GetActor(c)
	if err != nil {
		return err
	}

	if _, err := ac.findAssignment(assignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve assignment")
	}

	scope, err := authz.ListScope(actor)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	q := ac.DB.Where("submission_assignment_id = ?", assignmentID).
		Order("submission_submitted_at DESC")
	switch scope {
	case authz.ScopeTaught:
		teaches, ferr := ac.Facts.TeachesAssignment(c.Context(), assignmentID, actor.ID)
		if ferr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify teacher")
		}
		if !teaches {
			return helper.JsonError(c, fiber.StatusForbidden, "Bukan teacher course dari assignment ini")
		}
	case authz.ScopeOwn:
		q = q.Where("submission_student_id = ?", actor.ID)
	}

	var submissions []model.SubmissionModel
	if err := q.Find(&submissions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve submissions")
	}

	return helper.JsonOK(c, "Submissions fetched successfully", dto.ToSubmissionResponses(submissions))
}

// GET /api/assignments/submissions — admin only (route-level), paginated.
func (ac *AssignmentController) GetAllSubmissions(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ac.DB.Model(&model.SubmissionModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count submissions")
	}

	var submissions []model.SubmissionModel
	if err := ac.DB.Order("submission_submitted_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&submissions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve submissions")
	}

	return helper.JsonList(c, "Submissions fetched successfully",
		dto.ToSubmissionResponses(submissions),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ========================= Grade & Feedback ========================= */

// PATCH /api/assignments/:assignmentId/submissions/:submissionId — teacher course saat ini.
func (ac *AssignmentController) GradeSubmission(c *fiber.Ctx) error {
	assignmentID, err := uuid.Parse(c.Params("assignmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignmentId format")
	}
	submissionID, err := uuid.Parse(c.Params("submissionId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submissionId format")
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

	var submission model.SubmissionModel
	if err := ac.DB.First(&submission,
		"submission_id = ? AND submission_assignment_id = ?", submissionID, assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve submission")
	}

	if err := ac.liveTeacherCheck(c, actor, assignment); err != nil {
		return err
	}

	var req dto.GradeSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Grade wajib diisi dan harus antara 0 dan 100")
	}

	updates := map[string]interface{}{"submission_grade": *req.SubmissionGrade}
	if req.SubmissionFeedback != nil {
		updates["submission_feedback"] = *req.SubmissionFeedback
	}
	if err := ac.DB.Model(&submission).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to grade submission")
	}
	submission.SubmissionGrade = req.SubmissionGrade
	if req.SubmissionFeedback != nil {
		submission.SubmissionFeedback = req.SubmissionFeedback
	}

	log.Printf("[SUCCESS] Submission %s dinilai oleh %s\n", submissionID, actor.ID)
	return helper.JsonUpdated(c, "Submission graded successfully", dto.ToSubmissionResponse(&submission))
}

// PATCH /api/assignments/:assignmentId/feedback — teacher course saat ini, feedback saja.
func (ac *AssignmentController) GiveFeedback(c *fiber.Ctx) error {
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

	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "submission_id dan submission_feedback wajib diisi")
	}

	var submission model.SubmissionModel
	if err := ac.DB.First(&submission,
		"submission_id = ? AND submission_assignment_id = ?", req.SubmissionID, assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve submission")
	}

	if err := ac.liveTeacherCheck(c, actor, assignment); err != nil {
		return err
	}

	if err := ac.DB.Model(&submission).
		Update("submission_feedback", req.SubmissionFeedback).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save feedback")
	}
	submission.SubmissionFeedback = &req.SubmissionFeedback

	return helper.JsonUpdated(c, "Feedback saved successfully", dto.ToSubmissionResponse(&submission))
}
