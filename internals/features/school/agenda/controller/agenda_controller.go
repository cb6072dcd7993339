// file: internals/features/school/agenda/controller/agenda_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/agenda/service"
	helper "sekolahku_backend/internals/helpers"
)

type AgendaController struct{ DB *gorm.DB }

func NewAgendaController(db *gorm.DB) *AgendaController { return &AgendaController{DB: db} }

// GET /api/public/agenda
func (h *AgendaController) List(c *fiber.Ctx) error {
	rows, err := service.GetAll(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil agenda")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/public/agenda/featured
func (h *AgendaController) Featured(c *fiber.Ctx) error {
	rows, err := service.GetFeatured(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil agenda unggulan")
	}
	return helper.JsonOK(c, "ok", rows)
}
