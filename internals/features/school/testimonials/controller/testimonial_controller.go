// file: internals/features/school/testimonials/controller/testimonial_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/testimonials/dto"
	"sekolahku_backend/internals/features/school/testimonials/service"
	helper "sekolahku_backend/internals/helpers"
)

type TestimonialController struct{ DB *gorm.DB }

func NewTestimonialController(db *gorm.DB) *TestimonialController {
	return &TestimonialController{DB: db}
}

var validateTestimonial = validator.New()

// GET /api/public/testimonials?featured=true
func (h *TestimonialController) List(c *fiber.Ctx) error {
	var (
		rows any
		err  error
	)
	if strings.EqualFold(c.Query("featured"), "true") {
		rows, err = service.GetFeatured(h.DB)
	} else {
		rows, err = service.GetApproved(h.DB)
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil testimoni")
	}
	return helper.JsonOK(c, "ok", rows)
}

// POST /api/public/testimonials
// Masuk antrian moderasi: selalu tersimpan sebagai belum disetujui.
func (h *TestimonialController) Submit(c *fiber.Ctx) error {
	var req dto.SubmitTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateTestimonial.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()
	if err := service.Create(h.DB, m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan testimoni")
	}
	return helper.JsonCreated(c, "Testimoni terkirim, menunggu moderasi", m)
}
