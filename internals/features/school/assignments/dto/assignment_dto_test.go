package dto

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdateAssignmentRequestToUpdates(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		req := UpdateAssignmentRequest{
			AssignmentTitle:   strPtr("Tugas Bab 3"),
			AssignmentDueDate: strPtr("2026-03-15"),
		}
		updates, err := req.ToUpdates()
		require.NoError(t, err)

		assert.Len(t, updates, 2)
		assert.Equal(t, "Tugas Bab 3", updates["assignment_title"])
		assert.Contains(t, updates, "assignment_due_date")
		assert.NotContains(t, updates, "assignment_start_date")
		assert.NotContains(t, updates, "assignment_description")
	})

	t.Run("empty request", func(t *testing.T) {
		updates, err := (&UpdateAssignmentRequest{}).ToUpdates()
		require.NoError(t, err)
		assert.Empty(t, updates)
	})

	t.Run("bad date", func(t *testing.T) {
		req := UpdateAssignmentRequest{AssignmentDueDate: strPtr("15/03/2026")}
		_, err := req.ToUpdates()
		assert.Error(t, err)
	})
}

func TestGradeSubmissionRequestValidation(t *testing.T) {
	validate := validator.New()

	parse := func(t *testing.T, body string) GradeSubmissionRequest {
		t.Helper()
		var req GradeSubmissionRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		return req
	}

	t.Run("body tanpa grade ditolak", func(t *testing.T) {
		// feedback-only tidak boleh lolos sebagai nilai 0
		req := parse(t, `{"submission_feedback":"bagus"}`)
		assert.Error(t, validate.Struct(&req))
	})

	t.Run("grade 0 sah", func(t *testing.T) {
		req := parse(t, `{"submission_grade":0}`)
		require.NoError(t, validate.Struct(&req))
		require.NotNil(t, req.SubmissionGrade)
		assert.Equal(t, float64(0), *req.SubmissionGrade)
	})

	t.Run("grade 100 sah", func(t *testing.T) {
		req := parse(t, `{"submission_grade":100,"submission_feedback":"sempurna"}`)
		assert.NoError(t, validate.Struct(&req))
	})

	t.Run("grade di luar rentang ditolak", func(t *testing.T) {
		req := parse(t, `{"submission_grade":150}`)
		assert.Error(t, validate.Struct(&req))

		req = parse(t, `{"submission_grade":-5}`)
		assert.Error(t, validate.Struct(&req))
	})
}
