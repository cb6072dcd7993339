// file: internals/features/school/testimonials/dto/testimonial_dto.go
package dto

import (
	"strings"

	"sekolahku_backend/internals/features/school/testimonials/model"
)

/* ===================== REQUESTS ===================== */

// Kiriman publik dari halaman SubmitTestimonial.
// is_approved/is_featured TIDAK boleh datang dari body — di-set service.
type SubmitTestimonialRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=160"`
	Role           string  `json:"role" validate:"required,min=2,max=120"`
	GraduationYear *int    `json:"graduation_year" validate:"omitempty,min=1960,max=2100"`
	CurrentJob     *string `json:"current_job" validate:"omitempty,max=160"`
	Content        string  `json:"content" validate:"required,min=10"`
	Rating         int     `json:"rating" validate:"required,min=1,max=5"`
	ImageURL       *string `json:"image_url" validate:"omitempty,url"`
}

func (r SubmitTestimonialRequest) ToModel() *model.TestimonialModel {
	return &model.TestimonialModel{
		Name:           strings.TrimSpace(r.Name),
		Role:           strings.TrimSpace(r.Role),
		GraduationYear: r.GraduationYear,
		CurrentJob:     r.CurrentJob,
		Content:        strings.TrimSpace(r.Content),
		Rating:         r.Rating,
		ImageURL:       r.ImageURL,
	}
}
