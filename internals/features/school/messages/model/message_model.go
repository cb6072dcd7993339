// file: internals/features/school/messages/model/message_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: messages (form kontak)
   ========================================================= */

type MessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name      string    `gorm:"type:varchar(160);not null;column:name" json:"name"`
	Email     string    `gorm:"type:varchar(160);not null;column:email" json:"email"`
	Subject   string    `gorm:"type:varchar(200);not null;column:subject" json:"subject"`
	Message   string    `gorm:"type:text;not null;column:message" json:"message"`
	IsRead    bool      `gorm:"not null;default:false;column:is_read" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (MessageModel) TableName() string { return "messages" }

func (m *MessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
