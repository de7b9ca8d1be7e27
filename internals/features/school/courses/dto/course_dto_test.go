package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCourseRequestToModel(t *testing.T) {
	teacherID := uuid.New()
	adminID := uuid.New()

	req := CreateCourseRequest{
		CourseName:      "Matematika Dasar",
		CourseStartDate: "2026-01-05",
		CourseEndDate:   "2026-06-30",
		CourseTime:      "19:30 - 21:00 WIB",
		CourseCategory:  "MIPA",
		CourseTeacherID: &teacherID,
	}

	m, err := req.ToModel(adminID)
	require.NoError(t, err)

	assert.Equal(t, "Matematika Dasar", m.CourseName)
	assert.Equal(t, adminID, m.CourseCreatedBy)
	require.NotNil(t, m.CourseTeacherID)
	assert.Equal(t, teacherID, *m.CourseTeacherID)

	start := time.Time(m.CourseStartDate)
	assert.Equal(t, 2026, start.Year())
	assert.Equal(t, time.January, start.Month())
	assert.Equal(t, 5, start.Day())
}

func TestCreateCourseRequestToModelBadDate(t *testing.T) {
	req := CreateCourseRequest{
		CourseName:      "Fisika",
		CourseStartDate: "05-01-2026",
		CourseEndDate:   "2026-06-30",
	}
	_, err := req.ToModel(uuid.New())
	assert.Error(t, err)
}
