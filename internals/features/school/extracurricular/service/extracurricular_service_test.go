// file: internals/features/school/extracurricular/service/extracurricular_service_test.go
package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "sekolahku_backend/internals/databases"
	"sekolahku_backend/internals/features/school/extracurricular/model"
	"sekolahku_backend/internals/features/school/extracurricular/service"
)

func setupEkskulDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenTest()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ExtracurricularModel{}))
	return db
}

func seedEkskul(t *testing.T, db *gorm.DB, name string, active bool) *model.ExtracurricularModel {
	t.Helper()
	m := &model.ExtracurricularModel{
		Name: name, Description: "x", Category: "Olahraga",
		ImageURL: "u", IsActive: active,
	}
	require.NoError(t, service.Create(db, m))
	return m
}

// Create dengan is_active=false harus tersimpan false apa adanya,
// tidak boleh "dibetulkan" jadi true oleh lapisan persistence.
func TestEkskulCreateNonAktifTetapNonAktif(t *testing.T) {
	db := setupEkskulDB(t)
	m := seedEkskul(t, db, "Pramuka", false)

	got, err := service.GetByID(db, m.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.False(t, got.IsActive)
}

func TestEkskulGetActiveMenyaringNonAktif(t *testing.T) {
	db := setupEkskulDB(t)
	seedEkskul(t, db, "Basket", true)
	seedEkskul(t, db, "Angklung", false)
	seedEkskul(t, db, "Futsal", true)

	rows, err := service.GetActive(db)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// name ASC
	require.Equal(t, "Basket", rows[0].Name)
	require.Equal(t, "Futsal", rows[1].Name)

	all, err := service.GetAll(db)
	require.NoError(t, err)
	require.Len(t, all, 3)
}
