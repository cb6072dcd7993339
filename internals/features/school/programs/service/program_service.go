// file: internals/features/school/programs/service/program_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/programs/model"
)

func GetAll(db *gorm.DB) ([]model.ProgramModel, error) {
	var rows []model.ProgramModel
	err := db.Order("name ASC").Find(&rows).Error
	return rows, err
}

func GetActive(db *gorm.DB) ([]model.ProgramModel, error) {
	var rows []model.ProgramModel
	err := db.Where("is_active = ?", true).Order("name ASC").Find(&rows).Error
	return rows, err
}

// GetByCode mengembalikan (nil, nil) saat kode tidak dikenal.
func GetByCode(db *gorm.DB, code string) (*model.ProgramModel, error) {
	var row model.ProgramModel
	err := db.Where("code = ?", code).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetByID mengembalikan (nil, nil) saat id tidak ada.
func GetByID(db *gorm.DB, id uuid.UUID) (*model.ProgramModel, error) {
	var row model.ProgramModel
	err := db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func Create(db *gorm.DB, m *model.ProgramModel) error { return db.Create(m).Error }

func Update(db *gorm.DB, m *model.ProgramModel) error { return db.Save(m).Error }

func Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&model.ProgramModel{}).Error
}

func Count(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.ProgramModel{}).Count(&n).Error
	return n, err
}
