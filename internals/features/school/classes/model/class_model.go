package model

import (
	"time"

	"github.com/google/uuid"

	schoolYearModel "schoolpayment_backend/internals/features/school/school_years/model"
)

type ClassModel struct {
	ID           uuid.UUID                         `gorm:"column:class_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`
	Name         string                            `gorm:"column:class_name;type:varchar(100);not null" json:"class_name"`
	SchoolYearID *uuid.UUID                        `gorm:"column:school_year_id;type:uuid" json:"school_year_id,omitempty"`
	SchoolYear   *schoolYearModel.SchoolYearModel  `gorm:"foreignKey:SchoolYearID;references:ID" json:"school_year,omitempty"`
	CreatedAt    time.Time                         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time                         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt    *time.Time                        `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }
