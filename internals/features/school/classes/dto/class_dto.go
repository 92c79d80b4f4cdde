package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolpayment_backend/internals/features/school/classes/model"
)

type CreateClassRequest struct {
	Name         string     `json:"class_name" validate:"required,min=1,max=100"`
	SchoolYearID *uuid.UUID `json:"school_year_id" validate:"omitempty"`
}

type UpdateClassRequest struct {
	Name         *string    `json:"class_name" validate:"omitempty,min=1,max=100"`
	SchoolYearID *uuid.UUID `json:"school_year_id" validate:"omitempty"`
}

type ClassResponse struct {
	ID             uuid.UUID  `json:"class_id"`
	Name           string     `json:"class_name"`
	SchoolYearID   *uuid.UUID `json:"school_year_id,omitempty"`
	SchoolYearName string     `json:"school_year_name,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromModel(m model.ClassModel) ClassResponse {
	resp := ClassResponse{
		ID:           m.ID,
		Name:         m.Name,
		SchoolYearID: m.SchoolYearID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.SchoolYear != nil {
		resp.SchoolYearName = m.SchoolYear.Name
	}
	return resp
}

func FromModels(list []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
