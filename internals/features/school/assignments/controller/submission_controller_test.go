// file: internals/features/school/assignments/controller/submission_controller_test.go
package controller

import (
	"encoding/json"
	"io"
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

func newPGErrorTestApp(err error) *fiber.App {
	app := fiber.New()
	app.Post("/submit", func(c *fiber.Ctx) error {
		return writePGError(c, err)
	})
	return app
}

func TestWritePGErrorSubmission(t *testing.T) {
	type errBody struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		ErrorCode string `json:"error_code"`
	}

	doPost := func(t *testing.T, err error) (int, errBody) {
		t.Helper()
		app := newPGErrorTestApp(err)
		resp, reqErr := app.Test(httptest.NewRequest("POST", "/submit", nil))
		require.NoError(t, reqErr)
		defer resp.Body.Close()

		raw, readErr := io.ReadAll(resp.Body)
		require.NoError(t, readErr)

		var body errBody
		require.NoError(t, json.Unmarshal(raw, &body))
		return resp.StatusCode, body
	}

	t.Run("pengumpulan kedua kena unique index jadi 409", func(t *testing.T) {
		status, body := doPost(t, &fakePGErr{
			state: "23505",
			msg:   `duplicate key value violates unique constraint "uq_submission_assignment_student"`,
		})
		assert.Equal(t, fiber.StatusConflict, status)
		assert.False(t, body.Success)
		assert.Equal(t, "CONFLICT", body.ErrorCode)
		assert.Equal(t, "Data duplikat (unique violation).", body.Message)
	})

	t.Run("FK violation jadi 400", func(t *testing.T) {
		status, body := doPost(t, &fakePGErr{state: "23503", msg: "violates foreign key constraint"})
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "BAD_REQUEST", body.ErrorCode)
	})

	t.Run("error DB lain jadi 500", func(t *testing.T) {
		status, body := doPost(t, &fakePGErr{state: "40001", msg: "serialization failure"})
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "INTERNAL_ERROR", body.ErrorCode)
	})
}
