// file: internals/features/school/news/model/news_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: news
   ========================================================= */

type NewsModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null;column:title" json:"title"`
	Content     string    `gorm:"type:text;not null;column:content" json:"content"`
	Excerpt     string    `gorm:"type:text;not null;column:excerpt" json:"excerpt"`
	ImageURL    string    `gorm:"type:text;not null;column:image_url" json:"image_url"`
	Category    string    `gorm:"type:varchar(64);not null;column:category" json:"category"`
	Author      string    `gorm:"type:varchar(120);not null;column:author" json:"author"`
	IsPublished bool      `gorm:"not null;default:false;column:is_published" json:"is_published"`
	PublishedAt time.Time `gorm:"not null;column:published_at" json:"published_at"`
	CreatedAt   time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (NewsModel) TableName() string { return "news" }

func (m *NewsModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.PublishedAt.IsZero() {
		m.PublishedAt = time.Now()
	}
	return nil
}
