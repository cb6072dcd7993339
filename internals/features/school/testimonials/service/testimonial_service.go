// file: internals/features/school/testimonials/service/testimonial_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/testimonials/model"
)

func GetAll(db *gorm.DB) ([]model.TestimonialModel, error) {
	var rows []model.TestimonialModel
	err := db.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func GetApproved(db *gorm.DB) ([]model.TestimonialModel, error) {
	var rows []model.TestimonialModel
	err := db.Where("is_approved = ?", true).Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func GetFeatured(db *gorm.DB) ([]model.TestimonialModel, error) {
	var rows []model.TestimonialModel
	err := db.Where("is_approved = ? AND is_featured = ?", true, true).
		Order("created_at DESC").Find(&rows).Error
	return rows, err
}

// GetByID mengembalikan (nil, nil) saat id tidak ada.
func GetByID(db *gorm.DB, id uuid.UUID) (*model.TestimonialModel, error) {
	var row model.TestimonialModel
	err := db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Create adalah satu-satunya jalur insert testimoni.
// Kiriman baru SELALU masuk sebagai belum disetujui & bukan unggulan
// (padanan prosedur server-side di backend lama).
func Create(db *gorm.DB, m *model.TestimonialModel) error {
	m.IsApproved = false
	m.IsFeatured = false
	return db.Create(m).Error
}

func Update(db *gorm.DB, m *model.TestimonialModel) error { return db.Save(m).Error }

func Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&model.TestimonialModel{}).Error
}

func Count(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.TestimonialModel{}).Count(&n).Error
	return n, err
}
