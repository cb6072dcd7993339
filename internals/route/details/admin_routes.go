// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminController "sekolahku_backend/internals/features/admin/controller"
	msgController "sekolahku_backend/internals/features/school/messages/controller"
	profileController "sekolahku_backend/internals/features/school/profile/controller"
	"sekolahku_backend/internals/helpers/storage"
)

// AdminRoutes: dashboard CMS. Semua konten lewat controller generik,
// ditambah endpoint khusus (profil sekolah, tandai pesan dibaca).
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	content := adminController.NewContentController(db, storage.NewServiceFromEnv())

	r.Get("/stats", content.Stats)

	grp := r.Group("/content")
	grp.Get("/:entity", content.List)
	grp.Get("/:entity/form", content.Form)
	grp.Post("/:entity", content.Create)
	grp.Put("/:entity/:id", content.Update)
	grp.Delete("/:entity/:id", content.Delete)

	// Profil sekolah: upsert per section, bukan CRUD per baris
	profile := profileController.NewSchoolProfileController(db)
	r.Put("/profile/hero-stats", profile.UpsertHeroStats)
	r.Put("/profile/:section", profile.Upsert)

	// Pesan masuk: tandai sudah dibaca
	messages := msgController.NewMessageController(db)
	r.Patch("/messages/:id/read", messages.MarkRead)
}
