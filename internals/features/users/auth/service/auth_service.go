// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/features/users/auth/model"
)

var (
	ErrInvalidCredentials = errors.New("email atau password salah")
	ErrAccountInactive    = errors.New("akun dinonaktifkan")
)

const accessTTL = 12 * time.Hour

/* ===================== LOGIN ===================== */

// Authenticate memeriksa kredensial admin. Email dibandingkan lowercase.
func Authenticate(db *gorm.DB, email, password string) (*model.AdminUserModel, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user model.AdminUserModel
	err := db.Where("email = ?", email).Limit(1).Find(&user).Error
	if err != nil {
		return nil, err
	}
	if user.Email == "" {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// IssueAccessToken membuat JWT HS256 untuk admin (sub = user id).
func IssueAccessToken(user *model.AdminUserModel) (string, time.Time, error) {
	if configs.JWTSecret == "" {
		return "", time.Time{}, errors.New("JWT_SECRET belum di-set")
	}
	now := time.Now().UTC()
	exp := now.Add(accessTTL)
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"name":  user.Name,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// GetByID mengambil admin berdasarkan id; (nil, nil) kalau tidak ada.
func GetByID(db *gorm.DB, id uuid.UUID) (*model.AdminUserModel, error) {
	var user model.AdminUserModel
	err := db.Where("id = ?", id).Limit(1).Find(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == uuid.Nil {
		return nil, nil
	}
	return &user, nil
}

/* ===================== BLACKLIST ===================== */

// BlacklistToken menyimpan token agar ditolak sampai kadaluarsa (logout).
func BlacklistToken(db *gorm.DB, rawToken string, expiredAt time.Time) error {
	if strings.TrimSpace(rawToken) == "" {
		return nil
	}
	entry := model.TokenBlacklist{Token: rawToken, ExpiredAt: expiredAt}
	err := db.Create(&entry).Error
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "unique") {
		// Sudah ada di blacklist, anggap sukses
		return nil
	}
	return err
}

func IsTokenBlacklisted(db *gorm.DB, rawToken string) (bool, error) {
	var n int64
	err := db.Model(&model.TokenBlacklist{}).
		Where("token = ? AND deleted_at IS NULL", rawToken).
		Count(&n).Error
	return n > 0, err
}

/* ===================== SEED ===================== */

// SeedAdminFromEnv membuat akun admin pertama dari ADMIN_EMAIL / ADMIN_PASSWORD
// bila tabel masih kosong. Tidak ada endpoint register.
func SeedAdminFromEnv(db *gorm.DB) error {
	email := strings.ToLower(strings.TrimSpace(configs.GetEnv("ADMIN_EMAIL")))
	password := configs.GetEnv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var n int64
	if err := db.Model(&model.AdminUserModel{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := model.AdminUserModel{
		Name:         configs.GetEnv("ADMIN_NAME", "Administrator"),
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("[AUTH] Akun admin awal dibuat: %s", email)
	return nil
}
