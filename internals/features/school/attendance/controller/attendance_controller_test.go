// file: internals/features/school/attendance/controller/attendance_controller_test.go
package controller

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePGErr struct {
	state string
	msg   string
}

func (e *fakePGErr) SQLState() string { return e.state }
func (e *fakePGErr) Error() string    { return e.msg }

func TestWritePGErrorAttendance(t *testing.T) {
	doMark := func(t *testing.T, err error) int {
		t.Helper()
		app := fiber.New()
		app.Post("/mark", func(c *fiber.Ctx) error {
			return writePGError(c, err)
		})
		resp, reqErr := app.Test(httptest.NewRequest("POST", "/mark", nil))
		require.NoError(t, reqErr)
		resp.Body.Close()
		return resp.StatusCode
	}

	t.Run("tanggal yang sama dua kali kena unique index jadi 409", func(t *testing.T) {
		status := doMark(t, &fakePGErr{
			state: "23505",
			msg:   `duplicate key value violates unique constraint "uq_attendance_course_student_date"`,
		})
		assert.Equal(t, fiber.StatusConflict, status)
	})

	t.Run("FK violation jadi 400", func(t *testing.T) {
		status := doMark(t, &fakePGErr{state: "23503", msg: "violates foreign key constraint"})
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("error biasa jadi 500", func(t *testing.T) {
		status := doMark(t, errors.New("connection refused"))
		assert.Equal(t, fiber.StatusInternalServerError, status)
	})
}
