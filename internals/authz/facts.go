// file: internals/authz/facts.go
package authz

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Facts menyuplai fakta relasi untuk keputusan otorisasi.
// Dibaca live dari store, tanpa cache: teacher assignment bisa
// berubah kapan saja (assign/remove-teacher adalah operasi first-class).
type Facts interface {
	IsCourseTeacher(ctx context.Context, courseID, userID uuid.UUID) (bool, error)
	IsEnrolled(ctx context.Context, courseID, userID uuid.UUID) (bool, error)
	TeachesAssignment(ctx context.Context, assignmentID, userID uuid.UUID) (bool, error)
}

// GormFacts adalah implementasi Facts di atas *gorm.DB.
// Handle di-inject dari luar (bukan singleton) supaya gampang di-stub di test.
type GormFacts struct {
	DB *gorm.DB
}

var _ Facts = (*GormFacts)(nil)

func NewGormFacts(db *gorm.DB) *GormFacts {
	return &GormFacts{DB: db}
}

func (f *GormFacts) IsCourseTeacher(ctx context.Context, courseID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := f.DB.WithContext(ctx).Raw(
		`SELECT EXISTS(SELECT 1 FROM courses WHERE course_id = ? AND course_teacher_id = ?)`,
		courseID, userID,
	).Scan(&exists).Error
	return exists, err
}

func (f *GormFacts) IsEnrolled(ctx context.Context, courseID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := f.DB.WithContext(ctx).Raw(
		`SELECT EXISTS(SELECT 1 FROM enrollments WHERE enrollment_course_id = ? AND enrollment_student_id = ?)`,
		courseID, userID,
	).Scan(&exists).Error
	return exists, err
}

// TeacherAssignment lookup 2-hop: assignment → course → teacher.
func (f *GormFacts) TeachesAssignment(ctx context.Context, assignmentID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := f.DB.WithContext(ctx).Raw(
		`SELECT EXISTS(
			SELECT 1
			FROM assignments a
			JOIN courses c ON c.course_id = a.assignment_course_id
			WHERE a.assignment_id = ? AND c.course_teacher_id = ?
		)`,
		assignmentID, userID,
	).Scan(&exists).Error
	return exists, err
}
