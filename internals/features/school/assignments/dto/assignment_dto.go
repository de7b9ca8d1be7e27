// file: internals/features/school/assignments/dto/assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/school/assignments/model"
)

/* ===================== Requests ===================== */

type CreateAssignmentRequest struct {
	AssignmentTitle       string `json:"assignment_title" validate:"required,min=3,max=150"`
	AssignmentDescription string `json:"assignment_description"`
	AssignmentStartDate   string `json:"assignment_start_date" validate:"required,datetime=2006-01-02"`
	AssignmentDueDate     string `json:"assignment_due_date" validate:"required,datetime=2006-01-02"`
}

func (r *CreateAssignmentRequest) ToModel(courseID, createdBy uuid.UUID) (*model.AssignmentModel, error) {
	start, err := time.Parse("2006-01-02", r.AssignmentStartDate)
	if err != nil {
		return nil, err
	}
	due, err := time.Parse("2006-01-02", r.AssignmentDueDate)
	if err != nil {
		return nil, err
	}
	return &model.AssignmentModel{
		AssignmentCourseID:    courseID,
		AssignmentTitle:       r.AssignmentTitle,
		AssignmentDescription: r.AssignmentDescription,
		AssignmentStartDate:   datatypes.Date(start),
		AssignmentDueDate:     datatypes.Date(due),
		AssignmentCreatedBy:   createdBy,
	}, nil
}

type UpdateAssignmentRequest struct {
	AssignmentTitle       *string `json:"assignment_title,omitempty" validate:"omitempty,min=3,max=150"`
	AssignmentDescription *string `json:"assignment_description,omitempty"`
	AssignmentStartDate   *string `json:"assignment_start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AssignmentDueDate     *string `json:"assignment_due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// ToUpdates membangun map kolom yang diubah saja.
func (r *UpdateAssignmentRequest) ToUpdates() (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if r.AssignmentTitle != nil {
		updates["assignment_title"] = *r.AssignmentTitle
	}
	if r.AssignmentDescription != nil {
		updates["assignment_description"] = *r.AssignmentDescription
	}
	if r.AssignmentStartDate != nil {
		t, err := time.Parse("2006-01-02", *r.AssignmentStartDate)
		if err != nil {
			return nil, err
		}
		updates["assignment_start_date"] = datatypes.Date(t)
	}
	if r.AssignmentDueDate != nil {
		t, err := time.Parse("2006-01-02", *r.AssignmentDueDate)
		if err != nil {
			return nil, err
		}
		updates["assignment_due_date"] = datatypes.Date(t)
	}
	return updates, nil
}

type SubmitAssignmentRequest struct {
	SubmissionContent string `json:"submission_content" validate:"required"`
}

// SubmissionGrade pointer: body tanpa grade harus ditolak, bukan dianggap nilai 0.
type GradeSubmissionRequest struct {
	SubmissionGrade    *float64 `json:"submission_grade" validate:"required,min=0,max=100"`
	SubmissionFeedback *string  `json:"submission_feedback,omitempty"`
}

type FeedbackRequest struct {
	SubmissionID       uuid.UUID `json:"submission_id" validate:"required"`
	SubmissionFeedback string    `json:"submission_feedback" validate:"required"`
}

/* ===================== Responses ===================== */

type AssignmentResponse struct {
	AssignmentID          uuid.UUID      `json:"assignment_id"`
	AssignmentCourseID    uuid.UUID      `json:"assignment_course_id"`
	AssignmentTitle       string         `json:"assignment_title"`
	AssignmentDescription string         `json:"assignment_description"`
	AssignmentStartDate   datatypes.Date `json:"assignment_start_date"`
	AssignmentDueDate     datatypes.Date `json:"assignment_due_date"`
	AssignmentCreatedBy   uuid.UUID      `json:"assignment_created_by"`
	AssignmentCreatedAt   time.Time      `json:"assignment_created_at"`
}

func ToAssignmentResponse(m *model.AssignmentModel) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID:          m.AssignmentID,
		AssignmentCourseID:    m.AssignmentCourseID,
		AssignmentTitle:       m.AssignmentTitle,
		AssignmentDescription: m.AssignmentDescription,
		AssignmentStartDate:   m.AssignmentStartDate,
		AssignmentDueDate:     m.AssignmentDueDate,
		AssignmentCreatedBy:   m.AssignmentCreatedBy,
		AssignmentCreatedAt:   m.AssignmentCreatedAt,
	}
}

func ToAssignmentResponses(models []model.AssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(models))
	for i := range models {
		out = append(out, ToAssignmentResponse(&models[i]))
	}
	return out
}

type SubmissionResponse struct {
	SubmissionID           uuid.UUID `json:"submission_id"`
	SubmissionAssignmentID uuid.UUID `json:"submission_assignment_id"`
	SubmissionStudentID    uuid.UUID `json:"submission_student_id"`
	SubmissionContent      string    `json:"submission_content"`
	SubmissionGrade        *float64  `json:"submission_grade,omitempty"`
	SubmissionFeedback     *string   `json:"submission_feedback,omitempty"`
	SubmissionSubmittedAt  time.Time `json:"submission_submitted_at"`
}

func ToSubmissionResponse(m *model.SubmissionModel) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID:           m.SubmissionID,
		SubmissionAssignmentID: m.SubmissionAssignmentID,
		SubmissionStudentID:    m.SubmissionStudentID,
		SubmissionContent:      m.SubmissionContent,
		SubmissionGrade:        m.SubmissionGrade,
		SubmissionFeedback:     m.SubmissionFeedback,
		SubmissionSubmittedAt:  m.SubmissionSubmittedAt,
	}
}

func ToSubmissionResponses(models []model.SubmissionModel) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(models))
	for i := range models {
		out = append(out, ToSubmissionResponse(&models[i]))
	}
	return out
}
