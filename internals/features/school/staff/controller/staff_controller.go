// file: internals/features/school/staff/controller/staff_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/staff/service"
	helper "sekolahku_backend/internals/helpers"
)

type StaffController struct{ DB *gorm.DB }

func NewStaffController(db *gorm.DB) *StaffController { return &StaffController{DB: db} }

// GET /api/public/staff/teachers
func (h *StaffController) ListTeachers(c *fiber.Ctx) error {
	rows, err := service.GetAllTeachers(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/public/staff/education
func (h *StaffController) ListEducation(c *fiber.Ctx) error {
	rows, err := service.GetAllEducation(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data staf")
	}
	return helper.JsonOK(c, "ok", rows)
}
