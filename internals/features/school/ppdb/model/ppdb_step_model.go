// file: internals/features/school/ppdb/model/ppdb_step_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: ppdb_steps (alur pendaftaran peserta didik baru)
   ========================================================= */

type PpdbStepModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null;column:title" json:"title"`
	Description string    `gorm:"type:text;not null;column:description" json:"description"`
	StepOrder   int       `gorm:"not null;default:0;column:step_order" json:"step_order"`
	CreatedAt   time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (PpdbStepModel) TableName() string { return "ppdb_steps" }

func (m *PpdbStepModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
