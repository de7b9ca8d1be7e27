// file: internals/features/school/courses/controller/course_controller_test.go
package controller

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakePGErr struct {
	state string
	msg   string
}

func (e *fakePGErr) SQLState() string { return e.state }
func (e *fakePGErr) Error() string    { return e.msg }

func TestMapPGError(t *testing.T) {
	t.Run("unique violation jadi 409", func(t *testing.T) {
		code, msg := mapPGError(&fakePGErr{state: "23505", msg: "duplicate key value"})
		assert.Equal(t, fiber.StatusConflict, code)
		assert.Equal(t, "Data duplikat (unique violation).", msg)
	})

	t.Run("FK violation jadi 400", func(t *testing.T) {
		code, msg := mapPGError(&fakePGErr{state: "23503", msg: "violates foreign key constraint"})
		assert.Equal(t, fiber.StatusBadRequest, code)
		assert.Equal(t, "Referensi tidak ditemukan (FK violation).", msg)
	})

	t.Run("error terbungkus tetap terdeteksi", func(t *testing.T) {
		wrapped := fmt.Errorf("insert enrollment: %w", &fakePGErr{state: "23505", msg: "duplicate key value"})
		code, _ := mapPGError(wrapped)
		assert.Equal(t, fiber.StatusConflict, code)
	})

	t.Run("SQLState lain jadi 500", func(t *testing.T) {
		code, _ := mapPGError(&fakePGErr{state: "40001", msg: "serialization failure"})
		assert.Equal(t, fiber.StatusInternalServerError, code)
	})

	t.Run("error biasa jadi 500", func(t *testing.T) {
		code, msg := mapPGError(errors.New("connection refused"))
		assert.Equal(t, fiber.StatusInternalServerError, code)
		assert.Equal(t, "Internal server error", msg)
	})
}
