// file: internals/features/school/staff/service/staff_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/staff/model"
)

/* ===================== STAFF TEACHERS ===================== */

func GetAllTeachers(db *gorm.DB) ([]model.StaffTeacherModel, error) {
	var rows []model.StaffTeacherModel
	err := db.Order("name ASC").Find(&rows).Error
	return rows, err
}

// GetTeacherByID mengembalikan (nil, nil) saat id tidak ada.
func GetTeacherByID(db *gorm.DB, id uuid.UUID) (*model.StaffTeacherModel, error) {
	var row model.StaffTeacherModel
	err := db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func CreateTeacher(db *gorm.DB, m *model.StaffTeacherModel) error { return db.Create(m).Error }

func UpdateTeacher(db *gorm.DB, m *model.StaffTeacherModel) error { return db.Save(m).Error }

func DeleteTeacher(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&model.StaffTeacherModel{}).Error
}

func CountTeachers(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.StaffTeacherModel{}).Count(&n).Error
	return n, err
}

/* ===================== STAFF EDUCATION ===================== */

func GetAllEducation(db *gorm.DB) ([]model.StaffEducationModel, error) {
	var rows []model.StaffEducationModel
	err := db.Order("name ASC").Find(&rows).Error
	return rows, err
}

// GetEducationByID mengembalikan (nil, nil) saat id tidak ada.
func GetEducationByID(db *gorm.DB, id uuid.UUID) (*model.StaffEducationModel, error) {
	var row model.StaffEducationModel
	err := db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func CreateEducation(db *gorm.DB, m *model.StaffEducationModel) error { return db.Create(m).Error }

func UpdateEducation(db *gorm.DB, m *model.StaffEducationModel) error { return db.Save(m).Error }

func DeleteEducation(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&model.StaffEducationModel{}).Error
}

func CountEducation(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.StaffEducationModel{}).Count(&n).Error
	return n, err
}

/* ===================== TEACHERS (legacy) ===================== */

func GetAllLegacy(db *gorm.DB) ([]model.TeacherModel, error) {
	var rows []model.TeacherModel
	err := db.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

// GetLegacyByID mengembalikan (nil, nil) saat id tidak ada.
func GetLegacyByID(db *gorm.DB, id uuid.UUID) (*model.TeacherModel, error) {
	var row model.TeacherModel
	err := db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func CreateLegacy(db *gorm.DB, m *model.TeacherModel) error { return db.Create(m).Error }

func UpdateLegacy(db *gorm.DB, m *model.TeacherModel) error { return db.Save(m).Error }

func DeleteLegacy(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&model.TeacherModel{}).Error
}

func CountLegacy(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&model.TeacherModel{}).Count(&n).Error
	return n, err
}
