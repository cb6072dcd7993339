// file: internals/features/school/programs/model/program_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: programs (kompetensi keahlian)
   Kolom list disimpan sebagai JSON: urutan terjaga, duplikat boleh.
   ========================================================= */

type ProgramModel struct {
	ID              uuid.UUID                  `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name            string                     `gorm:"type:varchar(160);not null;column:name" json:"name"`
	Code            string                     `gorm:"type:varchar(16);not null;uniqueIndex;column:code" json:"code"`
	Description     string                     `gorm:"type:text;not null;column:description" json:"description"`
	Duration        string                     `gorm:"type:varchar(64);not null;column:duration" json:"duration"`
	Competencies    datatypes.JSONSlice[string] `gorm:"column:competencies" json:"competencies"`
	CareerProspects datatypes.JSONSlice[string] `gorm:"column:career_prospects" json:"career_prospects"`
	ImageURL        string                     `gorm:"type:text;not null;column:image_url" json:"image_url"`
	IsActive        bool                       `gorm:"not null;column:is_active" json:"is_active"`
	CreatedAt       time.Time                  `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (ProgramModel) TableName() string { return "programs" }

func (m *ProgramModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
