// file: internals/features/school/messages/controller/message_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/messages/dto"
	"sekolahku_backend/internals/features/school/messages/service"
	helper "sekolahku_backend/internals/helpers"
)

type MessageController struct{ DB *gorm.DB }

func NewMessageController(db *gorm.DB) *MessageController { return &MessageController{DB: db} }

var validateMessage = validator.New()

// POST /api/public/messages
// Validasi (termasuk format email) terjadi SEBELUM menyentuh DB.
func (h *MessageController) Create(c *fiber.Ctx) error {
	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateMessage.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()
	if err := service.Create(h.DB, m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim pesan")
	}
	return helper.JsonCreated(c, "Pesan terkirim", m)
}

// PATCH /api/a/messages/:id/read (admin)
func (h *MessageController) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := service.MarkRead(h.DB, id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai pesan")
	}
	return helper.JsonUpdated(c, "Pesan ditandai terbaca", fiber.Map{"id": id})
}
