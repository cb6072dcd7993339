// file: internals/features/school/leadership/service/leadership_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/leadership/model"
)

// GetActive: urutan tampilan publik (order_position).
func GetActive(db *gorm.DB) ([]model.LeadershipModel, error) {
	var rows []model.LeadershipModel
	err := db.Where("is_active = ?", true).Order("order_position ASC").Find(&rows).Error
	return rows, err
}

func GetAllForAdmin(db *gorm.DB) ([]model.LeadershipModel, error) {
	var rows []model.LeadershipModel
	err := db.Order("order_position ASC").Find(&rows).Error
	return rows, err
}

// GetHeadmaster mengembalikan (nil, nil) saat belum ada kepala sekolah aktif.
func GetHeadmaster(db *gorm.DB) (*model.LeadershipModel, error) {
	var row model.LeadershipModel
	err := db.Where("position = ? AND is_active = ?", model.PositionHeadmaster, true).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetByID mengembalikan (nil, nil) saat id tidak ada.
func GetByID(db *gorm.DB, id uuid.UUID) (*model.LeadershipModel, error) {
	var row model.LeadershipModel
	err := db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func Create(db *gorm.DB, m *model.LeadershipModel) error { return db.Create(m).Error }

func Update(db *gorm.DB, m *model.LeadershipModel) error { return db.Save(m).Error }

func Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&model.LeadershipModel{}).Error
}

func Count(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.LeadershipModel{}).Count(&n).Error
	return n, err
}
