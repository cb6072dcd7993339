// file: internals/features/school/gallery/service/gallery_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/gallery/model"
)

func GetAll(db *gorm.DB) ([]model.GalleryModel, error) {
	var rows []model.GalleryModel
	err := db.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func GetByCategory(db *gorm.DB, category string) ([]model.GalleryModel, error) {
	var rows []model.GalleryModel
	err := db.Where("category = ?", category).Order("created_at DESC").Find(&rows).Error
	return rows, err
}

// GetByID mengembalikan (nil, nil) saat id tidak ada.
func GetByID(db *gorm.DB, id uuid.UUID) (*model.GalleryModel, error) {
	var row model.GalleryModel
	err := db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func Create(db *gorm.DB, m *model.GalleryModel) error { return db.Create(m).Error }

func Update(db *gorm.DB, m *model.GalleryModel) error { return db.Save(m).Error }

func Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&model.GalleryModel{}).Error
}

func Count(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.GalleryModel{}).Count(&n).Error
	return n, err
}
