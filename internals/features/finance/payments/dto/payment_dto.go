package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolpayment_backend/internals/features/finance/payments/model"
	helper "schoolpayment_backend/internals/helpers"
)

type CreatePaymentRequest struct {
	PaymentTypeID uuid.UUID `json:"payment_type_id" validate:"required"`
	PaymentName   string    `json:"payment_name" validate:"required,min=3,max=100"`
	Description   *string   `json:"description" validate:"omitempty,max=500"`
	Amount        int64     `json:"amount" validate:"required,gt=0"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"payment_status" validate:"required"`
}

type PaymentResponse struct {
	ID            uuid.UUID  `json:"payment_id"`
	UserID        uuid.UUID  `json:"user_id"`
	UserName      string     `json:"user_name,omitempty"`
	StudentID     *uuid.UUID `json:"student_id,omitempty"`
	StudentName   string     `json:"student_name,omitempty"`
	PaymentTypeID uuid.UUID  `json:"payment_type_id"`
	PaymentType   string     `json:"payment_type_name,omitempty"`
	PaymentName   string     `json:"payment_name"`
	Description   *string    `json:"description,omitempty"`
	Amount        int64      `json:"amount"`
	Status        string     `json:"payment_status"`
	OrderID       string     `json:"order_id"`
	TransactionID *string    `json:"transaction_id,omitempty"`
	SnapToken     *string    `json:"snap_token,omitempty"`
	RedirectURL   *string    `json:"redirect_url,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromModel(m model.PaymentModel) PaymentResponse {
	resp := PaymentResponse{
		ID:            m.ID,
		UserID:        m.UserID,
		StudentID:     m.StudentID,
		PaymentTypeID: m.PaymentTypeID,
		PaymentName:   m.PaymentName,
		Description:   m.Description,
		Amount:        m.Amount,
		Status:        m.Status,
		OrderID:       m.OrderID,
		TransactionID: m.TransactionID,
		SnapToken:     m.SnapToken,
		RedirectURL:   m.RedirectURL,
		PaidAt:        m.PaidAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.User != nil {
		resp.UserName = m.User.Name
	}
	if m.Student != nil {
		resp.StudentName = m.Student.Name
	}
	if m.PaymentType != nil {
		resp.PaymentType = m.PaymentType.Name
	}
	return resp
}

func FromModels(list []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}

// FilterCriteria adalah kriteria listing admin, diparse dari query string.
// Filter tahun ajaran hanya aktif bila kedua tanggal terisi.
type FilterCriteria struct {
	StudentName   string
	PaymentName   string
	UserName      string
	PaymentStatus string

	SchoolYearStart *time.Time
	SchoolYearEnd   *time.Time

	SortBy        string
	SortDirection string

	Page int
	Size int
}

const dateLayout = "2006-01-02"

// ParseFilterCriteria membaca query params listing pembayaran.
// Tanggal tahun ajaran yang tidak valid dianggap kosong.
func ParseFilterCriteria(c *fiber.Ctx) FilterCriteria {
	paging := helper.ResolvePaging(c)

	crit := FilterCriteria{
		StudentName:   strings.TrimSpace(c.Query("studentName")),
		PaymentName:   strings.TrimSpace(c.Query("paymentName")),
		UserName:      strings.TrimSpace(c.Query("userName")),
		PaymentStatus: strings.TrimSpace(c.Query("paymentStatus")),
		SortBy:        strings.TrimSpace(c.Query("sortBy")),
		SortDirection: c.Query("sortDirection"),
		Page:          paging.Page,
		Size:          paging.Size,
	}

	if raw := strings.TrimSpace(c.Query("schoolYearStartDate")); raw != "" {
		if t, err := time.Parse(dateLayout, raw); err == nil {
			crit.SchoolYearStart = &t
		}
	}
	if raw := strings.TrimSpace(c.Query("schoolYearEndDate")); raw != "" {
		if t, err := time.Parse(dateLayout, raw); err == nil {
			crit.SchoolYearEnd = &t
		}
	}

	return crit
}
