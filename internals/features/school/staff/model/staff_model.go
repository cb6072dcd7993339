// file: internals/features/school/staff/model/staff_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: staff_teachers (tenaga pendidik)
   ========================================================= */

type StaffTeacherModel struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name            string                      `gorm:"type:varchar(160);not null;column:name" json:"name"`
	Position        string                      `gorm:"type:varchar(120);not null;column:position" json:"position"`
	Education       string                      `gorm:"type:varchar(160);not null;column:education" json:"education"`
	Subjects        datatypes.JSONSlice[string] `gorm:"column:subjects" json:"subjects"`
	Phone           *string                     `gorm:"type:varchar(32);column:phone" json:"phone,omitempty"`
	Email           *string                     `gorm:"type:varchar(160);column:email" json:"email,omitempty"`
	ImageURL        string                      `gorm:"type:text;not null;column:image_url" json:"image_url"`
	Bio             *string                     `gorm:"type:text;column:bio" json:"bio,omitempty"`
	ExperienceYears int                         `gorm:"not null;default:0;column:experience_years" json:"experience_years"`
	CreatedAt       time.Time                   `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (StaffTeacherModel) TableName() string { return "staff_teachers" }

func (m *StaffTeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

/* =========================================================
   MODEL: staff_education (tenaga kependidikan)
   ========================================================= */

type StaffEducationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name       string    `gorm:"type:varchar(160);not null;column:name" json:"name"`
	Position   string    `gorm:"type:varchar(120);not null;column:position" json:"position"`
	Department string    `gorm:"type:varchar(120);not null;column:department" json:"department"`
	Education  string    `gorm:"type:varchar(160);not null;column:education" json:"education"`
	Phone      *string   `gorm:"type:varchar(32);column:phone" json:"phone,omitempty"`
	Email      *string   `gorm:"type:varchar(160);column:email" json:"email,omitempty"`
	ImageURL   string    `gorm:"type:text;not null;column:image_url" json:"image_url"`
	Bio        *string   `gorm:"type:text;column:bio" json:"bio,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (StaffEducationModel) TableName() string { return "staff_education" }

func (m *StaffEducationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

/* =========================================================
   MODEL: teachers (tabel lama, masih dipakai dashboard)
   ========================================================= */

type TeacherModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name      string    `gorm:"type:varchar(160);not null;column:name" json:"name"`
	Position  string    `gorm:"type:varchar(120);not null;column:position" json:"position"`
	Subject   string    `gorm:"type:varchar(120);not null;column:subject" json:"subject"`
	ImageURL  string    `gorm:"type:text;not null;column:image_url" json:"image_url"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
