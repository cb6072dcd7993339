// file: internals/features/school/news/service/news_service_test.go
package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "sekolahku_backend/internals/databases"
	"sekolahku_backend/internals/features/school/news/model"
	"sekolahku_backend/internals/features/school/news/service"
)

func setupNewsDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenTest()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.NewsModel{}))
	return db
}

func seedNews(t *testing.T, db *gorm.DB, title string, published bool, at time.Time) {
	t.Helper()
	m := &model.NewsModel{
		Title: title, Content: "x", Excerpt: "x", ImageURL: "u",
		Category: "Umum", Author: "Admin",
		IsPublished: published, PublishedAt: at,
	}
	require.NoError(t, service.Create(db, m))
}

func TestNewsPublikHanyaYangTerbit(t *testing.T) {
	db := setupNewsDB(t)

	now := time.Now()
	seedNews(t, db, "Draft", false, now)
	seedNews(t, db, "Terbit Lama", true, now.Add(-48*time.Hour))
	seedNews(t, db, "Terbit Baru", true, now)

	rows, err := service.GetPublished(db)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// published_at DESC: terbaru duluan
	require.Equal(t, "Terbit Baru", rows[0].Title)

	all, err := service.GetAll(db)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestNewsPaging(t *testing.T) {
	db := setupNewsDB(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		seedNews(t, db, "Berita", true, base.Add(time.Duration(i)*time.Minute))
	}

	rows, total, err := service.GetPage(db, 1, 2)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Len(t, rows, 2)

	rows, _, err = service.GetPage(db, 3, 2)
	require.NoError(t, err)
	require.Len(t, rows, 1) // halaman terakhir sisa satu
}

func TestNewsGetByIDTidakAda(t *testing.T) {
	db := setupNewsDB(t)

	seedNews(t, db, "Satu", true, time.Now())
	rows, err := service.GetAll(db)
	require.NoError(t, err)

	require.NoError(t, service.Delete(db, rows[0].ID))
	got, err := service.GetByID(db, rows[0].ID)
	require.NoError(t, err)
	require.Nil(t, got)
}
