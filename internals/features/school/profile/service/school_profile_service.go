// file: internals/features/school/profile/service/school_profile_service.go
package service

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sekolahku_backend/internals/features/school/profile/model"
)

const SectionHeroStats = "hero_stats"

// DefaultHeroStats dipakai saat section hero_stats belum pernah diisi.
var DefaultHeroStats = map[string]string{
	"students":     "800+",
	"programs":     "5",
	"achievements": "30+",
}

func GetAll(db *gorm.DB) ([]model.SchoolProfileModel, error) {
	var rows []model.SchoolProfileModel
	err := db.Order("section ASC").Find(&rows).Error
	return rows, err
}

// GetBySection mengembalikan (nil, nil) saat section belum ada — bukan error.
func GetBySection(db *gorm.DB, section string) (*model.SchoolProfileModel, error) {
	var row model.SchoolProfileModel
	err := db.Where("section = ?", section).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert menulis section (insert atau replace content by section).
func Upsert(db *gorm.DB, section string, content datatypes.JSON) (*model.SchoolProfileModel, error) {
	row := model.SchoolProfileModel{Section: section, Content: content}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "section"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}
	// baca ulang supaya id & updated_at sesuai yang tersimpan
	return GetBySection(db, section)
}
