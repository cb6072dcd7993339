// file: internals/features/school/agenda/service/agenda_service_test.go
package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "sekolahku_backend/internals/databases"
	"sekolahku_backend/internals/features/school/agenda/model"
	"sekolahku_backend/internals/features/school/agenda/service"
)

func setupAgendaDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenTest()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AgendaModel{}))
	return db
}

func TestAgendaCreateTanpaGambar(t *testing.T) {
	db := setupAgendaDB(t)

	m := &model.AgendaModel{
		Title:       "Ujian Tengah Semester",
		Description: "UTS semua kelas",
		EventDate:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		Category:    "Akademik",
	}
	require.NoError(t, service.Create(db, m))
	require.NotEqual(t, "00000000-0000-0000-0000-000000000000", m.ID.String())
	require.Nil(t, m.ImageURL) // gambar memang opsional untuk agenda

	got, err := service.GetByID(db, m.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Ujian Tengah Semester", got.Title)
}

func TestAgendaUrutanDanFeatured(t *testing.T) {
	db := setupAgendaDB(t)

	later := &model.AgendaModel{
		Title: "Wisuda", Description: "x", Category: "Sekolah",
		EventDate: time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
	}
	sooner := &model.AgendaModel{
		Title: "PPDB Dibuka", Description: "x", Category: "PPDB",
		EventDate:  time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		IsFeatured: true,
	}
	require.NoError(t, service.Create(db, later))
	require.NoError(t, service.Create(db, sooner))

	rows, err := service.GetAll(db)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// event_date ASC: yang lebih dekat tampil duluan
	require.Equal(t, "PPDB Dibuka", rows[0].Title)

	featured, err := service.GetFeatured(db)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	require.Equal(t, "PPDB Dibuka", featured[0].Title)
}

func TestAgendaGetByIDTidakAda(t *testing.T) {
	db := setupAgendaDB(t)

	m := &model.AgendaModel{
		Title: "A", Description: "x", Category: "Sekolah",
		EventDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, service.Create(db, m))

	require.NoError(t, service.Delete(db, m.ID))

	got, err := service.GetByID(db, m.ID)
	require.NoError(t, err) // id hilang bukan error
	require.Nil(t, got)

	rows, err := service.GetAll(db)
	require.NoError(t, err)
	require.Empty(t, rows)
}
