// file: internals/features/school/profile/controller/school_profile_controller.go
package controller

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/profile/dto"
	"sekolahku_backend/internals/features/school/profile/service"
	helper "sekolahku_backend/internals/helpers"
)

type SchoolProfileController struct{ DB *gorm.DB }

func NewSchoolProfileController(db *gorm.DB) *SchoolProfileController {
	return &SchoolProfileController{DB: db}
}

var validateProfile = validator.New()

// GET /api/public/profile
func (h *SchoolProfileController) GetAll(c *fiber.Ctx) error {
	rows, err := service.GetAll(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil sekolah")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/public/profile/:section
// Section yang belum diisi → 200 dengan data null (bukan 404).
func (h *SchoolProfileController) GetBySection(c *fiber.Ctx) error {
	row, err := service.GetBySection(h.DB, c.Params("section"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil section")
	}
	return helper.JsonOK(c, "ok", row)
}

// GET /api/public/profile/hero-stats
// Selalu mengembalikan isi; fallback ke default saat belum pernah diisi.
func (h *SchoolProfileController) GetHeroStats(c *fiber.Ctx) error {
	row, err := service.GetBySection(h.DB, service.SectionHeroStats)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	if row == nil {
		return helper.JsonOK(c, "ok", fiber.Map{
			"section": service.SectionHeroStats,
			"content": service.DefaultHeroStats,
		})
	}
	return helper.JsonOK(c, "ok", row)
}

// PUT /api/a/profile/:section (admin)
func (h *SchoolProfileController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	// Section dari path menang atas body
	if s := strings.TrimSpace(c.Params("section")); s != "" {
		req.Section = s
	}
	if err := validateProfile.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if !json.Valid(req.Content) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "content harus JSON valid")
	}

	row, err := service.Upsert(h.DB, req.Section, datatypes.JSON(req.Content))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan section")
	}
	return helper.JsonUpdated(c, "Section tersimpan", row)
}

// PUT /api/a/profile/hero-stats (admin)
func (h *SchoolProfileController) UpsertHeroStats(c *fiber.Ctx) error {
	var req dto.HeroStatsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateProfile.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	content, err := json.Marshal(req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membentuk content")
	}
	row, err := service.Upsert(h.DB, service.SectionHeroStats, datatypes.JSON(content))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan statistik")
	}
	return helper.JsonUpdated(c, "Statistik tersimpan", row)
}
