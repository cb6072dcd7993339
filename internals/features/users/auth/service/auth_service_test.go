// file: internals/features/users/auth/service/auth_service_test.go
package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	database "sekolahku_backend/internals/databases"
	"sekolahku_backend/internals/features/users/auth/model"
	"sekolahku_backend/internals/features/users/auth/service"
)

func setupAuthDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenTest()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AdminUserModel{}, &model.TokenBlacklist{}))
	return db
}

func seedAdmin(t *testing.T, db *gorm.DB, email, password string, active bool) *model.AdminUserModel {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.AdminUserModel{
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     active,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestAuthenticate(t *testing.T) {
	db := setupAuthDB(t)
	seedAdmin(t, db, "admin@sekolah.sch.id", "rahasia-123", true)

	// email dinormalisasi lowercase + trim
	u, err := service.Authenticate(db, "  Admin@Sekolah.sch.id ", "rahasia-123")
	require.NoError(t, err)
	require.Equal(t, "admin@sekolah.sch.id", u.Email)

	_, err = service.Authenticate(db, "admin@sekolah.sch.id", "salah")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = service.Authenticate(db, "tidak-ada@sekolah.sch.id", "rahasia-123")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthenticateAkunNonAktif(t *testing.T) {
	db := setupAuthDB(t)
	seedAdmin(t, db, "purna@sekolah.sch.id", "rahasia-123", false)

	_, err := service.Authenticate(db, "purna@sekolah.sch.id", "rahasia-123")
	require.ErrorIs(t, err, service.ErrAccountInactive)
}

func TestIssueAccessToken(t *testing.T) {
	db := setupAuthDB(t)
	u := seedAdmin(t, db, "admin@sekolah.sch.id", "rahasia-123", true)

	old := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = old })

	token, exp, err := service.IssueAccessToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.True(t, exp.After(time.Now()))
}

func TestBlacklistIdempoten(t *testing.T) {
	db := setupAuthDB(t)

	exp := time.Now().Add(time.Hour)
	require.NoError(t, service.BlacklistToken(db, "token-abc", exp))
	// token yang sama dua kali tetap sukses
	require.NoError(t, service.BlacklistToken(db, "token-abc", exp))

	black, err := service.IsTokenBlacklisted(db, "token-abc")
	require.NoError(t, err)
	require.True(t, black)

	black, err = service.IsTokenBlacklisted(db, "token-lain")
	require.NoError(t, err)
	require.False(t, black)
}
