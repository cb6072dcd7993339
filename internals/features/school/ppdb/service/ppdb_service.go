// file: internals/features/school/ppdb/service/ppdb_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/ppdb/model"
)

func GetAll(db *gorm.DB) ([]model.PpdbStepModel, error) {
	var rows []model.PpdbStepModel
	err := db.Order("step_order ASC").Find(&rows).Error
	return rows, err
}

// GetByID mengembalikan (nil, nil) saat id tidak ada.
func GetByID(db *gorm.DB, id uuid.UUID) (*model.PpdbStepModel, error) {
	var row model.PpdbStepModel
	err := db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func Create(db *gorm.DB, m *model.PpdbStepModel) error { return db.Create(m).Error }

func Update(db *gorm.DB, m *model.PpdbStepModel) error { return db.Save(m).Error }

func Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&model.PpdbStepModel{}).Error
}

func Count(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.PpdbStepModel{}).Count(&n).Error
	return n, err
}
