// file: internals/features/school/messages/service/message_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/messages/model"
)

func GetAll(db *gorm.DB) ([]model.MessageModel, error) {
	var rows []model.MessageModel
	err := db.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

// GetByID mengembalikan (nil, nil) saat id tidak ada.
func GetByID(db *gorm.DB, id uuid.UUID) (*model.MessageModel, error) {
	var row model.MessageModel
	err := db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func Create(db *gorm.DB, m *model.MessageModel) error { return db.Create(m).Error }

func MarkRead(db *gorm.DB, id uuid.UUID) error {
	return db.Model(&model.MessageModel{}).Where("id = ?", id).Update("is_read", true).Error
}

func Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&model.MessageModel{}).Error
}

func Count(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.MessageModel{}).Count(&n).Error
	return n, err
}

func CountUnread(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.MessageModel{}).Where("is_read = ?", false).Count(&n).Error
	return n, err
}
