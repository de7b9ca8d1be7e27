// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/users/user/model"
)

/* =========================================================
   1) REQUEST DTO
========================================================= */

// PATCH /api/users/:id/role
type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=student teacher admin"`
}

// PATCH /api/users/:id/password
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

/* =========================================================
   2) RESPONSE DTO — tanpa field sensitif
========================================================= */

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserLite dipakai untuk embed di response course/attendance/submission
type UserLite struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"user_name"`
	Email    string    `json:"email,omitempty"`
}

func ToUserResponse(u *model.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func ToUserResponses(users []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out
}

func ToUserLite(u *model.UserModel) UserLite {
	return UserLite{ID: u.ID, UserName: u.UserName, Email: u.Email}
}
