// file: internals/features/school/leadership/service/leadership_service_test.go
package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "sekolahku_backend/internals/databases"
	"sekolahku_backend/internals/features/school/leadership/model"
	"sekolahku_backend/internals/features/school/leadership/service"
)

func setupLeadershipDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenTest()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.LeadershipModel{}))
	return db
}

func TestHeadmasterBelumAda(t *testing.T) {
	db := setupLeadershipDB(t)

	got, err := service.GetHeadmaster(db)
	require.NoError(t, err) // kosong bukan error, dipetakan data:null di controller
	require.Nil(t, got)
}

func TestHeadmasterHanyaYangAktif(t *testing.T) {
	db := setupLeadershipDB(t)

	lama := &model.LeadershipModel{
		Name: "Pak Lama", Position: model.PositionHeadmaster,
		Education: "S2", ImageURL: "u", IsActive: false,
	}
	baru := &model.LeadershipModel{
		Name: "Bu Baru", Position: model.PositionHeadmaster,
		Education: "S2", ImageURL: "u", IsActive: true,
	}
	require.NoError(t, service.Create(db, lama))
	require.NoError(t, service.Create(db, baru))

	got, err := service.GetHeadmaster(db)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Bu Baru", got.Name)
}

func TestLeadershipUrutanTampil(t *testing.T) {
	db := setupLeadershipDB(t)

	wakil := &model.LeadershipModel{Name: "Wakil", Position: "Wakil Kepala", Education: "S1", ImageURL: "u", OrderPosition: 2, IsActive: true}
	kepala := &model.LeadershipModel{Name: "Kepala", Position: model.PositionHeadmaster, Education: "S2", ImageURL: "u", OrderPosition: 1, IsActive: true}
	nonAktif := &model.LeadershipModel{Name: "Purna", Position: "Komite", Education: "S1", ImageURL: "u", OrderPosition: 0, IsActive: false}
	require.NoError(t, service.Create(db, wakil))
	require.NoError(t, service.Create(db, kepala))
	require.NoError(t, service.Create(db, nonAktif))

	aktif, err := service.GetActive(db)
	require.NoError(t, err)
	require.Len(t, aktif, 2)
	require.Equal(t, "Kepala", aktif[0].Name)

	semua, err := service.GetAllForAdmin(db)
	require.NoError(t, err)
	require.Len(t, semua, 3)
	require.Equal(t, "Purna", semua[0].Name) // order_position 0 paling atas
}
