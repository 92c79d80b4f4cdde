package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolpayment_backend/internals/features/users/user/model"
)

/* ======================= REQUEST ======================= */

type RegisterUserRequest struct {
	NIS             int64  `json:"nis" validate:"required"`
	Name            string `json:"name" validate:"required,max=255"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type LoginRequest struct {
	// Identifier boleh email atau NIS
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN STUDENT"`
}

type UpdateProfileRequest struct {
	Email           *string `form:"email" json:"email,omitempty" validate:"omitempty,email"`
	Password        *string `form:"password" json:"password,omitempty" validate:"omitempty,min=8"`
	ConfirmPassword *string `form:"confirm_password" json:"confirm_password,omitempty"`
}

/* ======================= RESPONSE ======================= */

type UserResponse struct {
	UserID         uuid.UUID  `json:"user_id"`
	NIS            *int64     `json:"nis,omitempty"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	Role           string     `json:"role"`
	ProfilePicture *string    `json:"profile_picture,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}

func FromModel(m model.UserModel) UserResponse {
	return UserResponse{
		UserID:         m.ID,
		NIS:            m.NIS,
		Email:          m.Email,
		Name:           m.Name,
		Role:           m.Role,
		ProfilePicture: m.ProfilePicture,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      m.DeletedAt,
	}
}

func FromModels(list []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
