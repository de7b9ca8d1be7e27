// file: internals/helpers/validation_test.go
package helper

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationMap(t *testing.T) {
	v := validator.New()

	type markInput struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
		Date      string `json:"date" validate:"required,datetime=2006-01-02"`
		Status    string `json:"status" validate:"required,oneof=Present Absent"`
	}

	t.Run("semua field kosong", func(t *testing.T) {
		err := v.Struct(&markInput{})
		require.Error(t, err)

		got := ValidationMap(err)
		assert.Contains(t, got["studentid"], "wajib diisi")
		assert.Contains(t, got["date"], "wajib diisi")
		assert.Contains(t, got["status"], "wajib diisi")
	})

	t.Run("tag dengan parameter", func(t *testing.T) {
		err := v.Struct(&markInput{
			StudentID: "bukan-uuid",
			Date:      "31-08-2026",
			Status:    "Late",
		})
		require.Error(t, err)

		got := ValidationMap(err)
		assert.Contains(t, got["date"], "format harus 2006-01-02")
		assert.Contains(t, got["status"], "harus salah satu dari: Present Absent")
	})

	t.Run("error selain validator masuk key body", func(t *testing.T) {
		got := ValidationMap(errors.New("unexpected EOF"))
		require.Len(t, got, 1)
		assert.Equal(t, []string{"unexpected EOF"}, got["body"])
	})
}
