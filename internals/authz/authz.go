// file: internals/authz/authz.go
//
// Keputusan otorisasi murni: tidak pegang state, tidak akses DB.
// Fakta relasi (teacher course? enrolled?) disuplai caller lewat Resource
// atau di-resolve dulu lewat Facts (facts.go).
//
// Urutan di controller HARUS: existence check dulu (404), baru Decide (403).
package authz

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

var (
	// ErrForbidden: actor terautentikasi tapi tidak berhak.
	ErrForbidden = errors.New("forbidden")
	// ErrUnknownRole: role di luar closed set {student, teacher, admin}.
	// Tidak boleh jatuh diam-diam ke allow/deny tanpa alasan.
	ErrUnknownRole = errors.New("unknown role")
)

// Actor adalah identitas terautentikasi dari token {id, role}.
type Actor struct {
	ID   uuid.UUID
	Role string
}

func (a Actor) IsAdmin() bool   { return a.Role == constants.RoleAdmin }
func (a Actor) IsTeacher() bool { return a.Role == constants.RoleTeacher }
func (a Actor) IsStudent() bool { return a.Role == constants.RoleStudent }

// Action tag per kelas aksi (spek kontrak otorisasi).
type Action int

const (
	// Baca data milik sendiri (profil, attendance sendiri, dst).
	ActionSelfRead Action = iota
	// Aksi teacher terikat course: create assignment, lihat students, dst.
	// Admin TIDAK mem-bypass ownership di sini.
	ActionCourseTeach
	// Aksi attendance: teacher pemilik course ATAU admin.
	ActionCourseTeachOrAdmin
	// Aksi khusus admin: kelola course, enrollment, users.
	ActionAdminManage
	// Aksi kepemilikan durable: update/delete assignment oleh creator-nya.
	ActionOwnResource
	// Submit assignment: student yang terdaftar di course terkait.
	ActionStudentSubmit
)

// Resource adalah konteks resource yang sudah di-resolve caller.
// Field yang tidak relevan untuk action tertentu boleh zero value.
type Resource struct {
	// OwnerID: pemilik untuk ActionSelfRead (user id dari record).
	OwnerID uuid.UUID
	// CourseTeacherID: teacher course saat ini (nil = belum ada teacher).
	CourseTeacherID *uuid.UUID
	// CreatedBy: identitas pembuat (assignment creator) untuk ActionOwnResource.
	CreatedBy uuid.UUID
	// Enrolled: actor punya enrollment aktif di course target.
	Enrolled bool
}

// Decide mengembalikan nil kalau diizinkan, ErrForbidden/ErrUnknownRole kalau tidak.
// Match role HARUS exhaustive; role tak dikenal selalu ditolak.
func Decide(actor Actor, action Action, res Resource) error {
	if !constants.IsValidRole(actor.Role) {
		return fmt.Errorf("%w: %q", ErrUnknownRole, actor.Role)
	}

	switch action {
	case ActionSelfRead:
		if actor.ID == res.OwnerID {
			return nil
		}
		// admin boleh baca data siapa pun
		if actor.IsAdmin() {
			return nil
		}
		return fmt.Errorf("%w: bukan pemilik resource", ErrForbidden)

	case ActionCourseTeach:
		if !actor.IsTeacher() {
			return fmt.Errorf("%w: hanya teacher", ErrForbidden)
		}
		if res.CourseTeacherID == nil || *res.CourseTeacherID != actor.ID {
			return fmt.Errorf("%w: bukan teacher course ini", ErrForbidden)
		}
		return nil

	case ActionCourseTeachOrAdmin:
		if actor.IsAdmin() {
			return nil
		}
		if actor.IsTeacher() && res.CourseTeacherID != nil && *res.CourseTeacherID == actor.ID {
			return nil
		}
		return fmt.Errorf("%w: bukan teacher course ini / bukan admin", ErrForbidden)

	case ActionAdminManage:
		if actor.IsAdmin() {
			return nil
		}
		return fmt.Errorf("%w: hanya admin", ErrForbidden)

	case ActionOwnResource:
		// kepemilikan durable: dicek ke creator, BUKAN ke teacher course saat ini
		if actor.IsTeacher() && actor.ID == res.CreatedBy {
			return nil
		}
		return fmt.Errorf("%w: bukan pembuat resource", ErrForbidden)

	case ActionStudentSubmit:
		if !actor.IsStudent() {
			return fmt.Errorf("%w: hanya student", ErrForbidden)
		}
		if !res.Enrolled {
			return fmt.Errorf("%w: tidak terdaftar di course ini", ErrForbidden)
		}
		return nil
	}

	return fmt.Errorf("%w: action tidak dikenal", ErrForbidden)
}

// Scope untuk list yang difilter per role (bukan allow/deny).
type Scope int

const (
	ScopeAll    Scope = iota // admin: semua baris
	ScopeTaught              // teacher: baris course yang dia ajar
	ScopeOwn                 // student: baris miliknya sendiri
)

// ListScope menentukan cakupan hasil list berdasarkan role actor.
func ListScope(actor Actor) (Scope, error) {
	switch actor.Role {
	case constants.RoleAdmin:
		return ScopeAll, nil
	case constants.RoleTeacher:
		return ScopeTaught, nil
	case constants.RoleStudent:
		return ScopeOwn, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, actor.Role)
}
