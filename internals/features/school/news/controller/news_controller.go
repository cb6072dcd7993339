// file: internals/features/school/news/controller/news_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/news/service"
	helper "sekolahku_backend/internals/helpers"
)

type NewsController struct{ DB *gorm.DB }

func NewNewsController(db *gorm.DB) *NewsController { return &NewsController{DB: db} }

// GET /api/public/news?page=&per_page=
// Hanya berita terbit, urut published_at terbaru, dengan pagination server-side.
func (h *NewsController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 9, 50)
	rows, total, err := service.GetPage(h.DB, p.Page, p.PerPage)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil berita")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/public/news/:id
func (h *NewsController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	row, err := service.GetByID(h.DB, id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil berita")
	}
	if row == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Berita tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", row)
}
