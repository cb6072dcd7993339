// file: internals/features/school/profile/dto/school_profile_dto.go
package dto

import "encoding/json"

/* ===================== REQUESTS ===================== */

type UpsertProfileRequest struct {
	Section string          `json:"section" validate:"required,min=2,max=64"`
	Content json.RawMessage `json:"content" validate:"required"`
}

// HeroStatsRequest adalah isi section hero_stats (angka ringkas di beranda).
type HeroStatsRequest struct {
	Students     string `json:"students" validate:"required"`
	Programs     string `json:"programs" validate:"required"`
	Achievements string `json:"achievements" validate:"required"`
}
