package authz

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/constants"
)

func actor(role string) Actor {
	return Actor{ID: uuid.New(), Role: role}
}

func TestDecideSelfRead(t *testing.T) {
	student := actor(constants.RoleStudent)

	t.Run("owner allowed", func(t *testing.T) {
		assert.NoError(t, Decide(student, ActionSelfRead, Resource{OwnerID: student.ID}))
	})

	t.Run("admin allowed on others", func(t *testing.T) {
		admin := actor(constants.RoleAdmin)
		assert.NoError(t, Decide(admin, ActionSelfRead, Resource{OwnerID: student.ID}))
	})

	t.Run("other student forbidden", func(t *testing.T) {
		other := actor(constants.RoleStudent)
		err := Decide(other, ActionSelfRead, Resource{OwnerID: student.ID})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestDecideCourseTeach(t *testing.T) {
	teacher := actor(constants.RoleTeacher)

	t.Run("owning teacher allowed", func(t *testing.T) {
		assert.NoError(t, Decide(teacher, ActionCourseTeach, Resource{CourseTeacherID: &teacher.ID}))
	})

	t.Run("other teacher forbidden", func(t *testing.T) {
		otherID := uuid.New()
		err := Decide(teacher, ActionCourseTeach, Resource{CourseTeacherID: &otherID})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("course without teacher forbidden", func(t *testing.T) {
		err := Decide(teacher, ActionCourseTeach, Resource{CourseTeacherID: nil})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	// admin TIDAK bypass aksi khusus teacher
	t.Run("admin forbidden", func(t *testing.T) {
		admin := actor(constants.RoleAdmin)
		err := Decide(admin, ActionCourseTeach, Resource{CourseTeacherID: &admin.ID})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("student forbidden", func(t *testing.T) {
		student := actor(constants.RoleStudent)
		err := Decide(student, ActionCourseTeach, Resource{CourseTeacherID: &student.ID})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestDecideCourseTeachOrAdmin(t *testing.T) {
	teacher := actor(constants.RoleTeacher)

	t.Run("admin allowed", func(t *testing.T) {
		admin := actor(constants.RoleAdmin)
		assert.NoError(t, Decide(admin, ActionCourseTeachOrAdmin, Resource{CourseTeacherID: &teacher.ID}))
	})

	t.Run("owning teacher allowed", func(t *testing.T) {
		assert.NoError(t, Decide(teacher, ActionCourseTeachOrAdmin, Resource{CourseTeacherID: &teacher.ID}))
	})

	t.Run("other teacher forbidden", func(t *testing.T) {
		otherID := uuid.New()
		err := Decide(teacher, ActionCourseTeachOrAdmin, Resource{CourseTeacherID: &otherID})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("student forbidden", func(t *testing.T) {
		student := actor(constants.RoleStudent)
		err := Decide(student, ActionCourseTeachOrAdmin, Resource{CourseTeacherID: &teacher.ID})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestDecideAdminManage(t *testing.T) {
	assert.NoError(t, Decide(actor(constants.RoleAdmin), ActionAdminManage, Resource{}))
	assert.ErrorIs(t, Decide(actor(constants.RoleTeacher), ActionAdminManage, Resource{}), ErrForbidden)
	assert.ErrorIs(t, Decide(actor(constants.RoleStudent), ActionAdminManage, Resource{}), ErrForbidden)
}

func TestDecideOwnResource(t *testing.T) {
	creator := actor(constants.RoleTeacher)

	t.Run("creator allowed", func(t *testing.T) {
		assert.NoError(t, Decide(creator, ActionOwnResource, Resource{CreatedBy: creator.ID}))
	})

	// kepemilikan durable: teacher course saat ini yang BUKAN creator tetap ditolak
	t.Run("non-creator teacher forbidden", func(t *testing.T) {
		other := actor(constants.RoleTeacher)
		err := Decide(other, ActionOwnResource, Resource{CreatedBy: creator.ID})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin forbidden", func(t *testing.T) {
		admin := actor(constants.RoleAdmin)
		err := Decide(admin, ActionOwnResource, Resource{CreatedBy: creator.ID})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestDecideStudentSubmit(t *testing.T) {
	student := actor(constants.RoleStudent)

	t.Run("enrolled student allowed", func(t *testing.T) {
		assert.NoError(t, Decide(student, ActionStudentSubmit, Resource{Enrolled: true}))
	})

	t.Run("unenrolled student forbidden", func(t *testing.T) {
		err := Decide(student, ActionStudentSubmit, Resource{Enrolled: false})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("teacher forbidden even if enrolled", func(t *testing.T) {
		err := Decide(actor(constants.RoleTeacher), ActionStudentSubmit, Resource{Enrolled: true})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestDecideUnknownRole(t *testing.T) {
	err := Decide(actor("superuser"), ActionAdminManage, Resource{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownRole)
	assert.False(t, errors.Is(err, ErrForbidden))
}

func TestListScope(t *testing.T) {
	scope, err := ListScope(actor(constants.RoleAdmin))
	require.NoError(t, err)
	assert.Equal(t, ScopeAll, scope)

	scope, err = ListScope(actor(constants.RoleTeacher))
	require.NoError(t, err)
	assert.Equal(t, ScopeTaught, scope)

	scope, err = ListScope(actor(constants.RoleStudent))
	require.NoError(t, err)
	assert.Equal(t, ScopeOwn, scope)

	_, err = ListScope(actor("root"))
	assert.ErrorIs(t, err, ErrUnknownRole)
}
