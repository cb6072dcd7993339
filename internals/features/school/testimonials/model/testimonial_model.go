// file: internals/features/school/testimonials/model/testimonial_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: testimonials
   ========================================================= */

type TestimonialModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name           string    `gorm:"type:varchar(160);not null;column:name" json:"name"`
	Role           string    `gorm:"type:varchar(120);not null;column:role" json:"role"`
	GraduationYear *int      `gorm:"column:graduation_year" json:"graduation_year,omitempty"`
	CurrentJob     *string   `gorm:"type:varchar(160);column:current_job" json:"current_job,omitempty"`
	Content        string    `gorm:"type:text;not null;column:content" json:"content"`
	Rating         int       `gorm:"not null;column:rating" json:"rating"`
	ImageURL       *string   `gorm:"type:text;column:image_url" json:"image_url,omitempty"`
	IsFeatured     bool      `gorm:"not null;default:false;column:is_featured" json:"is_featured"`
	IsApproved     bool      `gorm:"not null;default:false;column:is_approved" json:"is_approved"`
	CreatedAt      time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (TestimonialModel) TableName() string { return "testimonials" }

func (m *TestimonialModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
