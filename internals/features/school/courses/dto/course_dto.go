// file: internals/features/school/courses/dto/course_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/school/courses/model"
)

/* ===================== Requests ===================== */

type CreateCourseRequest struct {
	CourseName      string     `json:"course_name" validate:"required,min=3,max=100"`
	CourseStartDate string     `json:"course_start_date" validate:"required,datetime=2006-01-02"`
	CourseEndDate   string     `json:"course_end_date" validate:"required,datetime=2006-01-02"`
	CourseTime      string     `json:"course_time" validate:"max=50"`
	CourseCategory  string     `json:"course_category" validate:"max=50"`
	CourseZoom      *string    `json:"course_zoom,omitempty"`
	CourseTeacherID *uuid.UUID `json:"course_teacher_id,omitempty"`
}

func (r *CreateCourseRequest) ToModel(createdBy uuid.UUID) (*model.CourseModel, error) {
	start, err := time.Parse("2006-01-02", r.CourseStartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse("2006-01-02", r.CourseEndDate)
	if err != nil {
		return nil, err
	}
	return &model.CourseModel{
		CourseName:      r.CourseName,
		CourseStartDate: datatypes.Date(start),
		CourseEndDate:   datatypes.Date(end),
		CourseTime:      r.CourseTime,
		CourseCategory:  r.CourseCategory,
		CourseZoom:      r.CourseZoom,
		CourseTeacherID: r.CourseTeacherID,
		CourseCreatedBy: createdBy,
	}, nil
}

type AssignTeacherRequest struct {
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
}

type RemoveTeacherRequest struct {
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
}

type AddStudentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
}

type RemoveStudentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
}

/* ===================== Responses ===================== */

type CourseResponse struct {
	CourseID        uuid.UUID      `json:"course_id"`
	CourseName      string         `json:"course_name"`
	CourseStartDate datatypes.Date `json:"course_start_date"`
	CourseEndDate   datatypes.Date `json:"course_end_date"`
	CourseTime      string         `json:"course_time"`
	CourseCategory  string         `json:"course_category"`
	CourseZoom      *string        `json:"course_zoom,omitempty"`
	CourseTeacherID *uuid.UUID     `json:"course_teacher_id,omitempty"`
	CourseCreatedBy uuid.UUID      `json:"course_created_by"`
	CourseCreatedAt time.Time      `json:"course_created_at"`
}

func ToCourseResponse(m *model.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:        m.CourseID,
		CourseName:      m.CourseName,
		CourseStartDate: m.CourseStartDate,
		CourseEndDate:   m.CourseEndDate,
		CourseTime:      m.CourseTime,
		CourseCategory:  m.CourseCategory,
		CourseZoom:      m.CourseZoom,
		CourseTeacherID: m.CourseTeacherID,
		CourseCreatedBy: m.CourseCreatedBy,
		CourseCreatedAt: m.CourseCreatedAt,
	}
}

func ToCourseResponses(models []model.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(models))
	for i := range models {
		out = append(out, ToCourseResponse(&models[i]))
	}
	return out
}

// EnrolledStudentResponse dipakai GET /:courseId/students (join ke users).
type EnrolledStudentResponse struct {
	EnrollmentID uuid.UUID `json:"enrollment_id" gorm:"column:enrollment_id"`
	StudentID    uuid.UUID `json:"student_id" gorm:"column:enrollment_student_id"`
	UserName     string    `json:"user_name" gorm:"column:user_name"`
	Email        string    `json:"email" gorm:"column:email"`
	EnrolledAt   time.Time `json:"enrolled_at" gorm:"column:enrollment_created_at"`
}
