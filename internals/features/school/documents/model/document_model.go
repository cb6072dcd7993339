// file: internals/features/school/documents/model/document_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: documents (pusat unduhan)
   ========================================================= */

type DocumentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null;column:title" json:"title"`
	Description *string   `gorm:"type:text;column:description" json:"description,omitempty"`
	Category    string    `gorm:"type:varchar(64);not null;column:category" json:"category"`
	FileURL     string    `gorm:"type:text;not null;column:file_url" json:"file_url"`
	CreatedAt   time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (DocumentModel) TableName() string { return "documents" }

func (m *DocumentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
