// file: internals/features/school/messages/dto/message_dto.go
package dto

import (
	"strings"

	"sekolahku_backend/internals/features/school/messages/model"
)

/* ===================== REQUESTS ===================== */

type CreateMessageRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=160"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=3,max=200"`
	Message string `json:"message" validate:"required,min=10"`
}

func (r CreateMessageRequest) ToModel() *model.MessageModel {
	return &model.MessageModel{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Subject: strings.TrimSpace(r.Subject),
		Message: strings.TrimSpace(r.Message),
	}
}
