// file: internals/features/school/news/service/news_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/news/model"
)

func GetAll(db *gorm.DB) ([]model.NewsModel, error) {
	var rows []model.NewsModel
	err := db.Order("published_at DESC").Find(&rows).Error
	return rows, err
}

func GetPublished(db *gorm.DB) ([]model.NewsModel, error) {
	var rows []model.NewsModel
	err := db.Where("is_published = ?", true).Order("published_at DESC").Find(&rows).Error
	return rows, err
}

// GetPage: fetch berita terbit per halaman (dipakai halaman Berita publik).
func GetPage(db *gorm.DB, page, perPage int) ([]model.NewsModel, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 9
	}

	var total int64
	if err := db.Model(&model.NewsModel{}).Where("is_published = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.NewsModel
	err := db.Where("is_published = ?", true).
		Order("published_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&rows).Error
	return rows, total, err
}

func GetByID(db *gorm.DB, id uuid.UUID) (*model.NewsModel, error) {
	var row model.NewsModel
	err := db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func Create(db *gorm.DB, m *model.NewsModel) error { return db.Create(m).Error }

func Update(db *gorm.DB, m *model.NewsModel) error { return db.Save(m).Error }

func Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&model.NewsModel{}).Error
}

func Count(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.NewsModel{}).Count(&n).Error
	return n, err
}
