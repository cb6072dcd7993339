// file: internals/features/school/ppdb/controller/ppdb_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/ppdb/service"
	helper "sekolahku_backend/internals/helpers"
)

type PpdbController struct{ DB *gorm.DB }

func NewPpdbController(db *gorm.DB) *PpdbController { return &PpdbController{DB: db} }

// GET /api/public/ppdb/steps
func (h *PpdbController) ListSteps(c *fiber.Ctx) error {
	rows, err := service.GetAll(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil alur PPDB")
	}
	return helper.JsonOK(c, "ok", rows)
}
