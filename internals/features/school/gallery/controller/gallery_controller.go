// file: internals/features/school/gallery/controller/gallery_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/gallery/service"
	helper "sekolahku_backend/internals/helpers"
)

type GalleryController struct{ DB *gorm.DB }

func NewGalleryController(db *gorm.DB) *GalleryController { return &GalleryController{DB: db} }

// GET /api/public/gallery?category=
func (h *GalleryController) List(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("category"))

	var (
		rows any
		err  error
	)
	if category != "" {
		rows, err = service.GetByCategory(h.DB, category)
	} else {
		rows, err = service.GetAll(h.DB)
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil galeri")
	}
	return helper.JsonOK(c, "ok", rows)
}
