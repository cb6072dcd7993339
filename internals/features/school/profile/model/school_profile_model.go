// file: internals/features/school/profile/model/school_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: school_profile
   Key-value per section (contact_info, visi_misi, hero_stats, ...)
   dengan blob JSON bebas di kolom content.
   ========================================================= */

type SchoolProfileModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Section   string         `gorm:"type:varchar(64);not null;uniqueIndex;column:section" json:"section"`
	Content   datatypes.JSON `gorm:"type:jsonb;not null;column:content" json:"content"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (SchoolProfileModel) TableName() string { return "school_profile" }

func (m *SchoolProfileModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
