package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAttendanceStatus(t *testing.T) {
	assert.True(t, IsValidAttendanceStatus("Present"))
	assert.True(t, IsValidAttendanceStatus("Absent"))
	assert.False(t, IsValidAttendanceStatus("present"))
	assert.False(t, IsValidAttendanceStatus("Late"))
	assert.False(t, IsValidAttendanceStatus(""))
}
