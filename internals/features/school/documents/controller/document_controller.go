// file: internals/features/school/documents/controller/document_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/documents/service"
	helper "sekolahku_backend/internals/helpers"
)

type DocumentController struct{ DB *gorm.DB }

func NewDocumentController(db *gorm.DB) *DocumentController { return &DocumentController{DB: db} }

// GET /api/public/documents?category=
func (h *DocumentController) List(c *fiber.Ctx) error {
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
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil dokumen")
	}
	return helper.JsonOK(c, "ok", rows)
}
