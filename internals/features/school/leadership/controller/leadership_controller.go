// file: internals/features/school/leadership/controller/leadership_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/leadership/service"
	helper "sekolahku_backend/internals/helpers"
)

type LeadershipController struct{ DB *gorm.DB }

func NewLeadershipController(db *gorm.DB) *LeadershipController {
	return &LeadershipController{DB: db}
}

// GET /api/public/leadership
func (h *LeadershipController) List(c *fiber.Ctx) error {
	rows, err := service.GetActive(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil struktur pimpinan")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/public/leadership/headmaster
// Belum ada kepala sekolah aktif → 200 dengan data null.
func (h *LeadershipController) Headmaster(c *fiber.Ctx) error {
	row, err := service.GetHeadmaster(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kepala sekolah")
	}
	return helper.JsonOK(c, "ok", row)
}
