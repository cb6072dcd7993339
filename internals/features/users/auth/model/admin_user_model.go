// file: internals/features/users/auth/model/admin_user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: admin_users
   ========================================================= */

type AdminUserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name         string    `gorm:"type:varchar(120);not null;column:name" json:"name"`
	Email        string    `gorm:"type:varchar(160);not null;uniqueIndex;column:email" json:"email"`
	PasswordHash string    `gorm:"type:text;not null;column:password_hash" json:"-"`
	IsActive     bool      `gorm:"not null;column:is_active" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (AdminUserModel) TableName() string { return "admin_users" }

func (m *AdminUserModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
