// file: internals/features/school/agenda/service/agenda_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/agenda/model"
)

func GetAll(db *gorm.DB) ([]model.AgendaModel, error) {
	var rows []model.AgendaModel
	err := db.Order("event_date ASC").Find(&rows).Error
	return rows, err
}

// GetFeatured: agenda pilihan untuk beranda, maksimal 5.
func GetFeatured(db *gorm.DB) ([]model.AgendaModel, error) {
	var rows []model.AgendaModel
	err := db.Where("is_featured = ?", true).Order("event_date ASC").Limit(5).Find(&rows).Error
	return rows, err
}

// GetByID mengembalikan (nil, nil) saat id tidak ada.
func GetByID(db *gorm.DB, id uuid.UUID) (*model.AgendaModel, error) {
	var row model.AgendaModel
	err := db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func Create(db *gorm.DB, m *model.AgendaModel) error { return db.Create(m).Error }

func Update(db *gorm.DB, m *model.AgendaModel) error { return db.Save(m).Error }

func Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&model.AgendaModel{}).Error
}

func Count(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.AgendaModel{}).Count(&n).Error
	return n, err
}
