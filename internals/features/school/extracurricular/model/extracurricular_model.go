// file: internals/features/school/extracurricular/model/extracurricular_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: extracurricular
   ========================================================= */

type ExtracurricularModel struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name         string                      `gorm:"type:varchar(160);not null;column:name" json:"name"`
	Description  string                      `gorm:"type:text;not null;column:description" json:"description"`
	Category     string                      `gorm:"type:varchar(64);not null;column:category" json:"category"`
	Schedule     *string                     `gorm:"type:varchar(160);column:schedule" json:"schedule,omitempty"`
	Coach        *string                     `gorm:"type:varchar(120);column:coach" json:"coach,omitempty"`
	ImageURL     string                      `gorm:"type:text;not null;column:image_url" json:"image_url"`
	Achievements datatypes.JSONSlice[string] `gorm:"column:achievements" json:"achievements"`
	IsActive     bool                        `gorm:"not null;column:is_active" json:"is_active"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (ExtracurricularModel) TableName() string { return "extracurricular" }

func (m *ExtracurricularModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
