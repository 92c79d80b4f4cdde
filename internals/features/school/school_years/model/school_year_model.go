package model

import (
	"time"

	"github.com/google/uuid"
)

type SchoolYearModel struct {
	ID        uuid.UUID  `gorm:"column:school_year_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"school_year_id"`
	Name      string     `gorm:"column:school_year_name;type:varchar(50);uniqueIndex;not null" json:"school_year_name"`
	StartDate time.Time  `gorm:"column:start_date;type:date;not null" json:"start_date"`
	EndDate   time.Time  `gorm:"column:end_date;type:date;not null" json:"end_date"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (SchoolYearModel) TableName() string { return "school_years" }

// Overlaps: true bila rentang tahun ajaran beririsan dengan [from, to].
func (sy *SchoolYearModel) Overlaps(from, to time.Time) bool {
	return !sy.StartDate.After(to) && !sy.EndDate.Before(from)
}
