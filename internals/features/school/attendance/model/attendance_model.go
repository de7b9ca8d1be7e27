// file: internals/features/school/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
)

func IsValidAttendanceStatus(s string) bool {
	return s == string(AttendancePresent) || s == string(AttendanceAbsent)
}

/* ======================================================
   Model: attendances
   Satu baris per (course, student, tanggal).
====================================================== */

type AttendanceModel struct {
	AttendanceID        uuid.UUID        `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceCourseID  uuid.UUID        `gorm:"column:attendance_course_id;type:uuid;not null;uniqueIndex:uq_attendance_course_student_date" json:"attendance_course_id"`
	AttendanceStudentID uuid.UUID        `gorm:"column:attendance_student_id;type:uuid;not null;uniqueIndex:uq_attendance_course_student_date;index" json:"attendance_student_id"`
	AttendanceDate      datatypes.Date   `gorm:"column:attendance_date;not null;uniqueIndex:uq_attendance_course_student_date" json:"attendance_date"`
	AttendanceStatus    AttendanceStatus `gorm:"column:attendance_status;type:varchar(10);not null" json:"attendance_status"`

	// siapa yang menandai (teacher course atau admin)
	AttendanceMarkedBy uuid.UUID `gorm:"column:attendance_marked_by;type:uuid;not null" json:"attendance_marked_by"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}
