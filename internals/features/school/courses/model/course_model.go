// file: internals/features/school/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ======================================================
   Model: courses
====================================================== */

type CourseModel struct {
	CourseID        uuid.UUID      `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`
	CourseName      string         `gorm:"column:course_name;type:varchar(100);not null" json:"course_name"`
	CourseStartDate datatypes.Date `gorm:"column:course_start_date;not null" json:"course_start_date"`
	CourseEndDate   datatypes.Date `gorm:"column:course_end_date;not null" json:"course_end_date"`

	// jam tampilan, bukan timestamp (mis. "19:30 - 21:00 WIB")
	CourseTime     string  `gorm:"column:course_time;type:varchar(50)" json:"course_time"`
	CourseCategory string  `gorm:"column:course_category;type:varchar(50)" json:"course_category"`
	CourseZoom     *string `gorm:"column:course_zoom;type:text" json:"course_zoom,omitempty"`

	// maksimal satu teacher per course
	CourseTeacherID *uuid.UUID `gorm:"column:course_teacher_id;type:uuid;index" json:"course_teacher_id,omitempty"`
	CourseCreatedBy uuid.UUID  `gorm:"column:course_created_by;type:uuid;not null" json:"course_created_by"`

	CourseCreatedAt time.Time `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}

/* ======================================================
   Model: enrollments
====================================================== */

type EnrollmentModel struct {
	EnrollmentID        uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`
	EnrollmentStudentID uuid.UUID `gorm:"column:enrollment_student_id;type:uuid;not null;uniqueIndex:uq_enrollment_student_course" json:"enrollment_student_id"`
	EnrollmentCourseID  uuid.UUID `gorm:"column:enrollment_course_id;type:uuid;not null;uniqueIndex:uq_enrollment_student_course;index" json:"enrollment_course_id"`

	EnrollmentCreatedAt time.Time `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
