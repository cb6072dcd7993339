// file: internals/features/school/leadership/model/leadership_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: leadership (struktur pimpinan sekolah)
   ========================================================= */

// Posisi kepala sekolah dipakai lookup khusus GetHeadmaster.
const PositionHeadmaster = "Kepala Sekolah"

type LeadershipModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name          string    `gorm:"type:varchar(160);not null;column:name" json:"name"`
	Position      string    `gorm:"type:varchar(120);not null;column:position" json:"position"`
	Education     string    `gorm:"type:varchar(160);not null;column:education" json:"education"`
	Experience    *string   `gorm:"type:text;column:experience" json:"experience,omitempty"`
	Message       *string   `gorm:"type:text;column:message" json:"message,omitempty"`
	ImageURL      string    `gorm:"type:text;not null;column:image_url" json:"image_url"`
	Phone         *string   `gorm:"type:varchar(32);column:phone" json:"phone,omitempty"`
	Email         *string   `gorm:"type:varchar(160);column:email" json:"email,omitempty"`
	OrderPosition int       `gorm:"not null;default:0;column:order_position" json:"order_position"`
	IsActive      bool      `gorm:"not null;column:is_active" json:"is_active"`
	CreatedAt     time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (LeadershipModel) TableName() string { return "leadership" }

func (m *LeadershipModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
