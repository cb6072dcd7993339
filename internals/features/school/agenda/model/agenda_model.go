// file: internals/features/school/agenda/model/agenda_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: agenda
   ========================================================= */

type AgendaModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null;column:title" json:"title"`
	Description string    `gorm:"type:text;not null;column:description" json:"description"`
	EventDate   time.Time `gorm:"type:date;not null;column:event_date" json:"event_date"`
	EventTime   *string   `gorm:"type:varchar(32);column:event_time" json:"event_time,omitempty"`
	Location    *string   `gorm:"type:varchar(160);column:location" json:"location,omitempty"`
	Category    string    `gorm:"type:varchar(64);not null;column:category" json:"category"`
	ImageURL    *string   `gorm:"type:text;column:image_url" json:"image_url,omitempty"`
	IsFeatured  bool      `gorm:"not null;default:false;column:is_featured" json:"is_featured"`
	CreatedAt   time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (AgendaModel) TableName() string { return "agenda" }

func (m *AgendaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
