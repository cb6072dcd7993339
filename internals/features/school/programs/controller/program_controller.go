// file: internals/features/school/programs/controller/program_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/programs/service"
	helper "sekolahku_backend/internals/helpers"
)

type ProgramController struct{ DB *gorm.DB }

func NewProgramController(db *gorm.DB) *ProgramController { return &ProgramController{DB: db} }

// GET /api/public/programs — hanya program aktif
func (h *ProgramController) List(c *fiber.Ctx) error {
	rows, err := service.GetActive(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil program keahlian")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/public/programs/:code
func (h *ProgramController) GetByCode(c *fiber.Ctx) error {
	row, err := service.GetByCode(h.DB, c.Params("code"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil program")
	}
	if row == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Program tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", row)
}
