package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolpayment_backend/internals/features/finance/payment_types/model"
)

type CreatePaymentTypeRequest struct {
	Name        string  `json:"payment_type_name" validate:"required,min=2,max=50"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type UpdatePaymentTypeRequest struct {
	Name        *string `json:"payment_type_name" validate:"omitempty,min=2,max=50"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type PaymentTypeResponse struct {
	ID          uuid.UUID `json:"payment_type_id"`
	Name        string    `json:"payment_type_name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromModel(m model.PaymentTypeModel) PaymentTypeResponse {
	return PaymentTypeResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromModels(list []model.PaymentTypeModel) []PaymentTypeResponse {
	out := make([]PaymentTypeResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
