package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolpayment_backend/internals/features/school/students/model"
)

type CreateStudentRequest struct {
	NIS       int64      `json:"nis" validate:"required,gt=0"`
	Name      string     `json:"student_name" validate:"required,min=1,max=100"`
	Address   *string    `json:"address" validate:"omitempty,max=500"`
	Phone     *string    `json:"phone_number" validate:"omitempty,max=20"`
	Birthdate *string    `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	ClassID   *uuid.UUID `json:"class_id" validate:"omitempty"`
}

type UpdateStudentRequest struct {
	NIS       *int64     `json:"nis" validate:"omitempty,gt=0"`
	Name      *string    `json:"student_name" validate:"omitempty,min=1,max=100"`
	Address   *string    `json:"address" validate:"omitempty,max=500"`
	Phone     *string    `json:"phone_number" validate:"omitempty,max=20"`
	Birthdate *string    `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	ClassID   *uuid.UUID `json:"class_id" validate:"omitempty"`
}

type StudentResponse struct {
	ID        uuid.UUID  `json:"student_id"`
	NIS       int64      `json:"nis"`
	Name      string     `json:"student_name"`
	Address   *string    `json:"address,omitempty"`
	Phone     *string    `json:"phone_number,omitempty"`
	Birthdate *string    `json:"birthdate,omitempty"`
	ClassID   *uuid.UUID `json:"class_id,omitempty"`
	ClassName string     `json:"class_name,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func FromModel(m model.StudentModel) StudentResponse {
	resp := StudentResponse{
		ID:        m.ID,
		NIS:       m.NIS,
		Name:      m.Name,
		Address:   m.Address,
		Phone:     m.Phone,
		ClassID:   m.ClassID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Birthdate != nil {
		b := m.Birthdate.Format("2006-01-02")
		resp.Birthdate = &b
	}
	if m.Class != nil {
		resp.ClassName = m.Class.Name
	}
	return resp
}

func FromModels(list []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
