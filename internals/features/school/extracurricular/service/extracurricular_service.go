// file: internals/features/school/extracurricular/service/extracurricular_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/extracurricular/model"
)

func GetAll(db *gorm.DB) ([]model.ExtracurricularModel, error) {
	var rows []model.ExtracurricularModel
	err := db.Order("name ASC").Find(&rows).Error
	return rows, err
}

func GetActive(db *gorm.DB) ([]model.ExtracurricularModel, error) {
	var rows []model.ExtracurricularModel
	err := db.Where("is_active = ?", true).Order("name ASC").Find(&rows).Error
	return rows, err
}

// GetByID mengembalikan (nil, nil) saat id tidak ada.
func GetByID(db *gorm.DB, id uuid.UUID) (*model.ExtracurricularModel, error) {
	var row model.ExtracurricularModel
	err := db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func Create(db *gorm.DB, m *model.ExtracurricularModel) error { return db.Create(m).Error }

func Update(db *gorm.DB, m *model.ExtracurricularModel) error { return db.Save(m).Error }

func Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&model.ExtracurricularModel{}).Error
}

func Count(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.ExtracurricularModel{}).Count(&n).Error
	return n, err
}
