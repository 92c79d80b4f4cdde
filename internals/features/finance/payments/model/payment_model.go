package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	studentModel "schoolpayment_backend/internals/features/school/students/model"
	paymentTypeModel "schoolpayment_backend/internals/features/finance/payment_types/model"
	userModel "schoolpayment_backend/internals/features/users/user/model"
)

type PaymentModel struct {
	ID            uuid.UUID                          `gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"payment_id"`
	UserID        uuid.UUID                          `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	User          *userModel.UserModel               `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	StudentID     *uuid.UUID                         `gorm:"column:student_id;type:uuid;index" json:"student_id,omitempty"`
	Student       *studentModel.StudentModel         `gorm:"foreignKey:StudentID;references:ID" json:"student,omitempty"`
	PaymentTypeID uuid.UUID                          `gorm:"column:payment_type_id;type:uuid;not null" json:"payment_type_id"`
	PaymentType   *paymentTypeModel.PaymentTypeModel `gorm:"foreignKey:PaymentTypeID;references:ID" json:"payment_type,omitempty"`

	PaymentName string  `gorm:"column:payment_name;type:varchar(100);not null" json:"payment_name"`
	Description *string `gorm:"column:description;type:text" json:"description,omitempty"`
	Amount      int64   `gorm:"column:amount;not null" json:"amount"`
	Status      string  `gorm:"column:payment_status;type:varchar(20);default:PENDING;not null" json:"payment_status"`

	// Jejak gateway (Midtrans)
	OrderID       string            `gorm:"column:order_id;type:varchar(64);uniqueIndex;not null" json:"order_id"`
	TransactionID *string           `gorm:"column:transaction_id;type:varchar(64)" json:"transaction_id,omitempty"`
	SnapToken     *string           `gorm:"column:snap_token;type:text" json:"snap_token,omitempty"`
	RedirectURL   *string           `gorm:"column:redirect_url;type:text" json:"redirect_url,omitempty"`
	GatewayMeta   datatypes.JSONMap `gorm:"column:gateway_meta;type:jsonb" json:"gateway_meta,omitempty"`
	PaidAt        *time.Time        `gorm:"column:paid_at" json:"paid_at,omitempty"`

	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }
