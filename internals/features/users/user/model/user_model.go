package model

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users di database.
// deleted_at dikelola eksplisit (bukan interceptor ORM): setiap query read
// wajib menambahkan "deleted_at IS NULL" sendiri.
type UserModel struct {
	ID             uuid.UUID  `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	NIS            *int64     `gorm:"column:nis;unique" json:"nis,omitempty"`
	Email          string     `gorm:"size:255;unique;not null" json:"email"`
	Name           string     `gorm:"size:255;not null" json:"name"`
	Password       string     `gorm:"not null" json:"-"`
	Role           string     `gorm:"type:varchar(50);not null;default:'STUDENT'" json:"role"`
	ProfilePicture *string    `gorm:"column:profile_picture" json:"profile_picture,omitempty"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt      *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) IsActive() bool { return u.DeletedAt == nil }

// Subject token: email kalau ada, fallback NIS.
func (u *UserModel) TokenSubject() string {
	if u.Email != "" {
		return u.Email
	}
	if u.NIS != nil {
		return strconv.FormatInt(*u.NIS, 10)
	}
	return u.ID.String()
}
