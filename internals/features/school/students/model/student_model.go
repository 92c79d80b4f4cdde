package model

import (
	"time"

	"github.com/google/uuid"

	classModel "schoolpayment_backend/internals/features/school/classes/model"
)

type StudentModel struct {
	ID        uuid.UUID              `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	NIS       int64                  `gorm:"column:nis;uniqueIndex;not null" json:"nis"`
	Name      string                 `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`
	Address   *string                `gorm:"column:address;type:text" json:"address,omitempty"`
	Phone     *string                `gorm:"column:phone_number;type:varchar(20)" json:"phone_number,omitempty"`
	Birthdate *time.Time             `gorm:"column:birthdate;type:date" json:"birthdate,omitempty"`
	ClassID   *uuid.UUID             `gorm:"column:class_id;type:uuid" json:"class_id,omitempty"`
	Class     *classModel.ClassModel `gorm:"foreignKey:ClassID;references:ID" json:"class,omitempty"`
	CreatedAt time.Time              `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time              `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time             `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
