// file: internals/features/school/extracurricular/controller/extracurricular_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/extracurricular/service"
	helper "sekolahku_backend/internals/helpers"
)

type ExtracurricularController struct{ DB *gorm.DB }

func NewExtracurricularController(db *gorm.DB) *ExtracurricularController {
	return &ExtracurricularController{DB: db}
}

// GET /api/public/extracurricular — hanya yang aktif
func (h *ExtracurricularController) List(c *fiber.Ctx) error {
	rows, err := service.GetActive(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil ekstrakurikuler")
	}
	return helper.JsonOK(c, "ok", rows)
}
