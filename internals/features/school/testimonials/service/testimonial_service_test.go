// file: internals/features/school/testimonials/service/testimonial_service_test.go
package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "sekolahku_backend/internals/databases"
	"sekolahku_backend/internals/features/school/testimonials/model"
	"sekolahku_backend/internals/features/school/testimonials/service"
)

func setupTestimonialDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenTest()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.TestimonialModel{}))
	return db
}

// Kiriman baru selalu masuk belum-disetujui, apapun isi payload-nya.
func TestTestimonialCreateMemaksaBelumDisetujui(t *testing.T) {
	db := setupTestimonialDB(t)

	m := &model.TestimonialModel{
		Name:       "Budi",
		Role:       "Alumni",
		Content:    "Sekolah yang luar biasa",
		Rating:     5,
		IsApproved: true, // klien nakal
		IsFeatured: true,
	}
	require.NoError(t, service.Create(db, m))
	require.False(t, m.IsApproved)
	require.False(t, m.IsFeatured)

	approved, err := service.GetApproved(db)
	require.NoError(t, err)
	require.Empty(t, approved)
}

func TestTestimonialPersetujuanLewatUpdate(t *testing.T) {
	db := setupTestimonialDB(t)

	m := &model.TestimonialModel{Name: "Sari", Role: "Alumni", Content: "Mantap", Rating: 4}
	require.NoError(t, service.Create(db, m))

	m.IsApproved = true
	require.NoError(t, service.Update(db, m))

	approved, err := service.GetApproved(db)
	require.NoError(t, err)
	require.Len(t, approved, 1)

	// Featured butuh approved + featured sekaligus
	featured, err := service.GetFeatured(db)
	require.NoError(t, err)
	require.Empty(t, featured)

	m.IsFeatured = true
	require.NoError(t, service.Update(db, m))
	featured, err = service.GetFeatured(db)
	require.NoError(t, err)
	require.Len(t, featured, 1)
}
