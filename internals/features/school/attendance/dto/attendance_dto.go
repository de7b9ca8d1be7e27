// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/school/attendance/model"
)

/* ===================== Requests ===================== */

type MarkAttendanceRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string    `json:"status" validate:"required,oneof=Present Absent"`
}

func (r *MarkAttendanceRequest) ToModel(courseID, markedBy uuid.UUID) (*model.AttendanceModel, error) {
	d, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, err
	}
	return &model.AttendanceModel{
		AttendanceCourseID:  courseID,
		AttendanceStudentID: r.StudentID,
		AttendanceDate:      datatypes.Date(d),
		AttendanceStatus:    model.AttendanceStatus(r.Status),
		AttendanceMarkedBy:  markedBy,
	}, nil
}

type UpdateAttendanceRequest struct {
	Status string `json:"status" validate:"required,oneof=Present Absent"`
}

/* ===================== Responses ===================== */

type AttendanceResponse struct {
	AttendanceID        uuid.UUID              `json:"attendance_id"`
	AttendanceCourseID  uuid.UUID              `json:"attendance_course_id"`
	AttendanceStudentID uuid.UUID              `json:"attendance_student_id"`
	AttendanceDate      datatypes.Date         `json:"attendance_date"`
	AttendanceStatus    model.AttendanceStatus `json:"attendance_status"`
	AttendanceMarkedBy  uuid.UUID              `json:"attendance_marked_by"`
	AttendanceCreatedAt time.Time              `json:"attendance_created_at"`
}

func ToAttendanceResponse(m *model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:        m.AttendanceID,
		AttendanceCourseID:  m.AttendanceCourseID,
		AttendanceStudentID: m.AttendanceStudentID,
		AttendanceDate:      m.AttendanceDate,
		AttendanceStatus:    m.AttendanceStatus,
		AttendanceMarkedBy:  m.AttendanceMarkedBy,
		AttendanceCreatedAt: m.AttendanceCreatedAt,
	}
}

func ToAttendanceResponses(models []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(models))
	for i := range models {
		out = append(out, ToAttendanceResponse(&models[i]))
	}
	return out
}
