package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentTypeModel struct {
	ID          uuid.UUID  `gorm:"column:payment_type_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"payment_type_id"`
	Name        string     `gorm:"column:payment_type_name;type:varchar(50);uniqueIndex;not null" json:"payment_type_name"`
	Description *string    `gorm:"column:description;type:text" json:"description,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt   *time.Time `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (PaymentTypeModel) TableName() string { return "payment_types" }
