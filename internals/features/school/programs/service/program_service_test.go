// file: internals/features/school/programs/service/program_service_test.go
package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	database "sekolahku_backend/internals/databases"
	"sekolahku_backend/internals/features/school/programs/model"
	"sekolahku_backend/internals/features/school/programs/service"
	helper "sekolahku_backend/internals/helpers"
)

func setupProgramDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenTest()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ProgramModel{}))
	return db
}

func TestProgramKompetensiTerjagaUrutannya(t *testing.T) {
	db := setupProgramDB(t)

	m := &model.ProgramModel{
		Name:         "Teknik Komputer dan Jaringan",
		Code:         "TKJ",
		Description:  "x",
		Duration:     "3 Tahun",
		Competencies: datatypes.JSONSlice[string](helper.SplitCommaList("Jaringan, Server, Keamanan")),
		ImageURL:     "https://example.com/tkj.webp",
		IsActive:     true,
	}
	require.NoError(t, service.Create(db, m))

	got, err := service.GetByCode(db, "TKJ")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, []string{"Jaringan", "Server", "Keamanan"}, []string(got.Competencies))
	require.Equal(t, "Jaringan, Server, Keamanan", helper.JoinCommaList([]string(got.Competencies)))
}

func TestProgramGetByCodeTidakDikenal(t *testing.T) {
	db := setupProgramDB(t)

	got, err := service.GetByCode(db, "XYZ")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestProgramGetActiveMenyaringNonAktif(t *testing.T) {
	db := setupProgramDB(t)

	aktif := &model.ProgramModel{Name: "Akuntansi", Code: "AK", Description: "x", Duration: "3 Tahun", ImageURL: "u", IsActive: true}
	nonAktif := &model.ProgramModel{Name: "Pemasaran", Code: "PM", Description: "x", Duration: "3 Tahun", ImageURL: "u", IsActive: false}
	require.NoError(t, service.Create(db, aktif))
	require.NoError(t, service.Create(db, nonAktif))

	rows, err := service.GetActive(db)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "AK", rows[0].Code)

	all, err := service.GetAll(db)
	require.NoError(t, err)
	require.Len(t, all, 2)
}
