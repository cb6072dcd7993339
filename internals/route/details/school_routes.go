// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	agendaController "sekolahku_backend/internals/features/school/agenda/controller"
	docController "sekolahku_backend/internals/features/school/documents/controller"
	ekskulController "sekolahku_backend/internals/features/school/extracurricular/controller"
	galleryController "sekolahku_backend/internals/features/school/gallery/controller"
	leaderController "sekolahku_backend/internals/features/school/leadership/controller"
	msgController "sekolahku_backend/internals/features/school/messages/controller"
	newsController "sekolahku_backend/internals/features/school/news/controller"
	ppdbController "sekolahku_backend/internals/features/school/ppdb/controller"
	profileController "sekolahku_backend/internals/features/school/profile/controller"
	programController "sekolahku_backend/internals/features/school/programs/controller"
	staffController "sekolahku_backend/internals/features/school/staff/controller"
	testiController "sekolahku_backend/internals/features/school/testimonials/controller"
	"sekolahku_backend/internals/middlewares"
)

// SchoolPublicRoutes: endpoint read-only untuk website sekolah
// plus dua form publik (kontak & testimoni) dengan rate limit sendiri.
func SchoolPublicRoutes(r fiber.Router, db *gorm.DB) {
	profile := profileController.NewSchoolProfileController(db)
	r.Get("/profile", profile.GetAll)
	r.Get("/profile/hero-stats", profile.GetHeroStats)
	r.Get("/profile/:section", profile.GetBySection)

	news := newsController.NewNewsController(db)
	r.Get("/news", news.List)
	r.Get("/news/:id", news.GetByID)

	gallery := galleryController.NewGalleryController(db)
	r.Get("/gallery", gallery.List)

	agenda := agendaController.NewAgendaController(db)
	r.Get("/agenda", agenda.List)
	r.Get("/agenda/featured", agenda.Featured)

	programs := programController.NewProgramController(db)
	r.Get("/programs", programs.List)
	r.Get("/programs/:code", programs.GetByCode)

	ekskul := ekskulController.NewExtracurricularController(db)
	r.Get("/extracurricular", ekskul.List)

	staff := staffController.NewStaffController(db)
	r.Get("/staff/teachers", staff.ListTeachers)
	r.Get("/staff/education", staff.ListEducation)

	leadership := leaderController.NewLeadershipController(db)
	r.Get("/leadership", leadership.List)
	r.Get("/leadership/headmaster", leadership.Headmaster)

	ppdb := ppdbController.NewPpdbController(db)
	r.Get("/ppdb/steps", ppdb.ListSteps)

	docs := docController.NewDocumentController(db)
	r.Get("/documents", docs.List)

	testi := testiController.NewTestimonialController(db)
	r.Get("/testimonials", testi.List)
	r.Post("/testimonials", middlewares.PublicFormRateLimiter(), testi.Submit)

	messages := msgController.NewMessageController(db)
	r.Post("/messages", middlewares.PublicFormRateLimiter(), messages.Create)
}
