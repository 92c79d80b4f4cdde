package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolpayment_backend/internals/features/school/school_years/model"
)

type CreateSchoolYearRequest struct {
	Name      string `json:"school_year_name" validate:"required,min=4,max=50"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type UpdateSchoolYearRequest struct {
	Name      *string `json:"school_year_name" validate:"omitempty,min=4,max=50"`
	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type SchoolYearResponse struct {
	ID        uuid.UUID `json:"school_year_id"`
	Name      string    `json:"school_year_name"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Deleted   bool      `json:"deleted"`
}

func FromModel(m model.SchoolYearModel) SchoolYearResponse {
	return SchoolYearResponse{
		ID:        m.ID,
		Name:      m.Name,
		StartDate: m.StartDate.Format("2006-01-02"),
		EndDate:   m.EndDate.Format("2006-01-02"),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Deleted:   m.DeletedAt != nil,
	}
}

func FromModels(list []model.SchoolYearModel) []SchoolYearResponse {
	out := make([]SchoolYearResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
