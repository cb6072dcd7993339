// file: internals/features/school/documents/service/document_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/documents/model"
)

func GetAll(db *gorm.DB) ([]model.DocumentModel, error) {
	var rows []model.DocumentModel
	err := db.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func GetByCategory(db *gorm.DB, category string) ([]model.DocumentModel, error) {
	var rows []model.DocumentModel
	err := db.Where("category = ?", category).Order("created_at DESC").Find(&rows).Error
	return rows, err
}

// GetByID mengembalikan (nil, nil) saat id tidak ada.
func GetByID(db *gorm.DB, id uuid.UUID) (*model.DocumentModel, error) {
	var row model.DocumentModel
	err := db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func Create(db *gorm.DB, m *model.DocumentModel) error { return db.Create(m).Error }

func Update(db *gorm.DB, m *model.DocumentModel) error { return db.Save(m).Error }

func Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&model.DocumentModel{}).Error
}

func Count(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.DocumentModel{}).Count(&n).Error
	return n, err
}
