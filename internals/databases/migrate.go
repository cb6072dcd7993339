// file: internals/databases/migrate.go
package database

import (
	"gorm.io/gorm"

	agendaModel "sekolahku_backend/internals/features/school/agenda/model"
	docModel "sekolahku_backend/internals/features/school/documents/model"
	ekskulModel "sekolahku_backend/internals/features/school/extracurricular/model"
	galleryModel "sekolahku_backend/internals/features/school/gallery/model"
	leaderModel "sekolahku_backend/internals/features/school/leadership/model"
	msgModel "sekolahku_backend/internals/features/school/messages/model"
	newsModel "sekolahku_backend/internals/features/school/news/model"
	ppdbModel "sekolahku_backend/internals/features/school/ppdb/model"
	profileModel "sekolahku_backend/internals/features/school/profile/model"
	programModel "sekolahku_backend/internals/features/school/programs/model"
	staffModel "sekolahku_backend/internals/features/school/staff/model"
	testiModel "sekolahku_backend/internals/features/school/testimonials/model"
	authModel "sekolahku_backend/internals/features/users/auth/model"
)

// Migrate menjalankan AutoMigrate untuk semua tabel aplikasi.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authModel.AdminUserModel{},
		&authModel.TokenBlacklist{},
		&profileModel.SchoolProfileModel{},
		&newsModel.NewsModel{},
		&galleryModel.GalleryModel{},
		&agendaModel.AgendaModel{},
		&programModel.ProgramModel{},
		&ekskulModel.ExtracurricularModel{},
		&staffModel.StaffTeacherModel{},
		&staffModel.StaffEducationModel{},
		&staffModel.TeacherModel{},
		&testiModel.TestimonialModel{},
		&leaderModel.LeadershipModel{},
		&msgModel.MessageModel{},
		&ppdbModel.PpdbStepModel{},
		&docModel.DocumentModel{},
	)
}
