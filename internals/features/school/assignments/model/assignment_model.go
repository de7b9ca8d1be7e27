// file: internals/features/school/assignments/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ======================================================
   Model: assignments
====================================================== */

type AssignmentModel struct {
	AssignmentID          uuid.UUID      `gorm:"column:assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"assignment_id"`
	AssignmentCourseID    uuid.UUID      `gorm:"column:assignment_course_id;type:uuid;not null;index" json:"assignment_course_id"`
	AssignmentTitle       string         `gorm:"column:assignment_title;type:varchar(150);not null" json:"assignment_title"`
	AssignmentDescription string         `gorm:"column:assignment_description;type:text" json:"assignment_description"`
	AssignmentStartDate   datatypes.Date `gorm:"column:assignment_start_date;not null" json:"assignment_start_date"`
	AssignmentDueDate     datatypes.Date `gorm:"column:assignment_due_date;not null" json:"assignment_due_date"`

	// identitas pembuat, dipakai untuk cek kepemilikan durable (update/delete)
	AssignmentCreatedBy uuid.UUID `gorm:"column:assignment_created_by;type:uuid;not null;index" json:"assignment_created_by"`

	AssignmentCreatedAt time.Time `gorm:"column:assignment_created_at;autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time `gorm:"column:assignment_updated_at;autoUpdateTime" json:"assignment_updated_at"`
}

func (AssignmentModel) TableName() string {
	return "assignments"
}

/* ======================================================
   Model: submissions
====================================================== */

type SubmissionModel struct {
	SubmissionID           uuid.UUID `gorm:"column:submission_id;type:uuid;default:gen_random_uuid();primaryKey" json:"submission_id"`
	SubmissionAssignmentID uuid.UUID `gorm:"column:submission_assignment_id;type:uuid;not null;uniqueIndex:uq_submission_assignment_student" json:"submission_assignment_id"`
	SubmissionStudentID    uuid.UUID `gorm:"column:submission_student_id;type:uuid;not null;uniqueIndex:uq_submission_assignment_student;index" json:"submission_student_id"`

	SubmissionContent string `gorm:"column:submission_content;type:text" json:"submission_content"`

	// diisi teacher course saat ini lewat grading
	SubmissionGrade    *float64 `gorm:"column:submission_grade;type:numeric(5,2)" json:"submission_grade,omitempty"`
	SubmissionFeedback *string  `gorm:"column:submission_feedback;type:text" json:"submission_feedback,omitempty"`

	SubmissionSubmittedAt time.Time `gorm:"column:submission_submitted_at;autoCreateTime" json:"submission_submitted_at"`
	SubmissionUpdatedAt   time.Time `gorm:"column:submission_updated_at;autoUpdateTime" json:"submission_updated_at"`
}

func (SubmissionModel) TableName() string {
	return "submissions"
}
