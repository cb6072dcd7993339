// file: internals/features/school/gallery/model/gallery_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: gallery
   ========================================================= */

type GalleryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null;column:title" json:"title"`
	Description *string   `gorm:"type:text;column:description" json:"description,omitempty"`
	ImageURL    string    `gorm:"type:text;not null;column:image_url" json:"image_url"`
	Category    string    `gorm:"type:varchar(64);not null;column:category" json:"category"`
	CreatedAt   time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (GalleryModel) TableName() string { return "gallery" }

func (m *GalleryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
