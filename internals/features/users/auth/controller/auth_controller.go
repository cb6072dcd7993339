// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/users/auth/dto"
	"sekolahku_backend/internals/features/users/auth/service"
	helper "sekolahku_backend/internals/helpers"
	authmw "sekolahku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type AuthController struct{ DB *gorm.DB }

func NewAuthController(db *gorm.DB) *AuthController { return &AuthController{DB: db} }

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		fieldErrs := map[string][]string{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				name := strings.ToLower(fe.Field())
				fieldErrs[name] = append(fieldErrs[name], "gagal pada aturan "+fe.Tag())
			}
		}
		return helper.JsonValidationError(c, fieldErrs)
	}

	user, err := service.Authenticate(h.DB, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		case errors.Is(err, service.ErrAccountInactive):
			return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
		}
	}

	token, exp, err := service.IssueAccessToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	// Cookie opsional untuk klien berbasis browser (JS tetap bisa pakai header)
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  exp,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   exp,
		User: dto.UserInfo{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// GET /api/auth/me (butuh AuthJWT)
func (h *AuthController) Me(c *fiber.Ctx) error {
	sub, _ := c.Locals(authmw.LocUserID).(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := service.GetByID(h.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	if user == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akun tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", dto.UserInfo{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	})
}

// POST /api/auth/logout (butuh AuthJWT) — token dimasukkan ke blacklist
func (h *AuthController) Logout(c *fiber.Ctx) error {
	raw, _ := c.Locals(authmw.LocRawToken).(string)

	// Ambil exp dari claims supaya entri blacklist ikut kadaluarsa
	expiredAt := time.Now().Add(24 * time.Hour)
	if claims, ok := c.Locals(authmw.LocJWTClaims).(jwt.MapClaims); ok {
		if expF, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(expF), 0)
		}
	}

	if err := service.BlacklistToken(h.DB, raw, expiredAt); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}
