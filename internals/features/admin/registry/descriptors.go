// file: internals/features/admin/registry/descriptors.go
package registry

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	agendaModel "sekolahku_backend/internals/features/school/agenda/model"
	agendaSvc "sekolahku_backend/internals/features/school/agenda/service"
	docModel "sekolahku_backend/internals/features/school/documents/model"
	docSvc "sekolahku_backend/internals/features/school/documents/service"
	ekskulModel "sekolahku_backend/internals/features/school/extracurricular/model"
	ekskulSvc "sekolahku_backend/internals/features/school/extracurricular/service"
	galleryModel "sekolahku_backend/internals/features/school/gallery/model"
	gallerySvc "sekolahku_backend/internals/features/school/gallery/service"
	leaderModel "sekolahku_backend/internals/features/school/leadership/model"
	leaderSvc "sekolahku_backend/internals/features/school/leadership/service"
	msgSvc "sekolahku_backend/internals/features/school/messages/service"
	newsModel "sekolahku_backend/internals/features/school/news/model"
	newsSvc "sekolahku_backend/internals/features/school/news/service"
	ppdbModel "sekolahku_backend/internals/features/school/ppdb/model"
	ppdbSvc "sekolahku_backend/internals/features/school/ppdb/service"
	programModel "sekolahku_backend/internals/features/school/programs/model"
	programSvc "sekolahku_backend/internals/features/school/programs/service"
	staffModel "sekolahku_backend/internals/features/school/staff/model"
	staffSvc "sekolahku_backend/internals/features/school/staff/service"
	testiModel "sekolahku_backend/internals/features/school/testimonials/model"
	testiSvc "sekolahku_backend/internals/features/school/testimonials/service"
	helper "sekolahku_backend/internals/helpers"
)

/* ===================== NEWS ===================== */

func applyNews(m *newsModel.NewsModel, v FormValues) {
	m.Title = v.Get("title")
	m.Excerpt = v.Get("excerpt")
	m.Content = v.Get("content")
	m.Category = v.Get("category")
	m.Author = v.Get("author")
	m.ImageURL = v.Get("image_url")

	wasPublished := m.IsPublished
	m.IsPublished = parseBoolField(v.Get("is_published"))
	// Terbit pertama kali → cap waktu publish diperbarui
	if m.IsPublished && !wasPublished {
		m.PublishedAt = time.Now()
	}
}

func newsDescriptor() *Descriptor {
	return &Descriptor{
		Kind:  KindNews,
		Label: "Berita",
		Fields: []FieldSpec{
			{Name: "title", Label: "Judul", Kind: FieldText, Required: true},
			{Name: "excerpt", Label: "Ringkasan", Kind: FieldTextarea, Required: true},
			{Name: "content", Label: "Isi", Kind: FieldTextarea, Required: true},
			{Name: "category", Label: "Kategori", Kind: FieldText, Required: true},
			{Name: "author", Label: "Penulis", Kind: FieldText, Required: true},
			{Name: "is_published", Label: "Terbitkan", Kind: FieldCheckbox},
		},
		Columns: []ColumnSpec{
			{Key: "image_url", Label: "Gambar", Kind: ColImage},
			{Key: "title", Label: "Judul", Kind: ColTruncated},
			{Key: "category", Label: "Kategori", Kind: ColDefault},
			{Key: "author", Label: "Penulis", Kind: ColDefault},
			{Key: "is_published", Label: "Terbit", Kind: ColBoolean},
			{Key: "published_at", Label: "Tanggal", Kind: ColDate},
		},
		Defaults:      map[string]string{"is_published": "false"},
		ImageField:    "image_url",
		ImageRequired: true,
		UploadFolder:  "news",
		List:          func(db *gorm.DB) (any, error) { return newsSvc.GetAll(db) },
		Get: func(db *gorm.DB, id uuid.UUID) (any, error) {
			row, err := newsSvc.GetByID(db, id)
			if err != nil || row == nil {
				return nil, err
			}
			return row, nil
		},
		Create: func(db *gorm.DB, v FormValues) (any, error) {
			m := &newsModel.NewsModel{}
			applyNews(m, v)
			if err := newsSvc.Create(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Update: func(db *gorm.DB, rec any, v FormValues) (any, error) {
			m := rec.(*newsModel.NewsModel)
			applyNews(m, v)
			if err := newsSvc.Update(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Delete: newsSvc.Delete,
		Count:  newsSvc.Count,
		FormValuesOf: func(rec any) map[string]string {
			m := rec.(*newsModel.NewsModel)
			return map[string]string{
				"title":        m.Title,
				"excerpt":      m.Excerpt,
				"content":      m.Content,
				"category":     m.Category,
				"author":       m.Author,
				"is_published": strconv.FormatBool(m.IsPublished),
				"image_url":    m.ImageURL,
			}
		},
		ImageURLOf: func(rec any) string { return rec.(*newsModel.NewsModel).ImageURL },
	}
}

/* ===================== GALLERY ===================== */

func applyGallery(m *galleryModel.GalleryModel, v FormValues) {
	m.Title = v.Get("title")
	m.Description = optStr(v.Get("description"))
	m.Category = v.Get("category")
	m.ImageURL = v.Get("image_url")
}

func galleryDescriptor() *Descriptor {
	return &Descriptor{
		Kind:  KindGallery,
		Label: "Galeri",
		Fields: []FieldSpec{
			{Name: "title", Label: "Judul", Kind: FieldText, Required: true},
			{Name: "description", Label: "Deskripsi", Kind: FieldTextarea},
			{Name: "category", Label: "Kategori", Kind: FieldText, Required: true},
		},
		Columns: []ColumnSpec{
			{Key: "image_url", Label: "Foto", Kind: ColImage},
			{Key: "title", Label: "Judul", Kind: ColTruncated},
			{Key: "category", Label: "Kategori", Kind: ColDefault},
			{Key: "created_at", Label: "Dibuat", Kind: ColDate},
		},
		ImageField:    "image_url",
		ImageRequired: true,
		UploadFolder:  "gallery",
		List:          func(db *gorm.DB) (any, error) { return gallerySvc.GetAll(db) },
		Get: func(db *gorm.DB, id uuid.UUID) (any, error) {
			row, err := gallerySvc.GetByID(db, id)
			if err != nil || row == nil {
				return nil, err
			}
			return row, nil
		},
		Create: func(db *gorm.DB, v FormValues) (any, error) {
			m := &galleryModel.GalleryModel{}
			applyGallery(m, v)
			if err := gallerySvc.Create(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Update: func(db *gorm.DB, rec any, v FormValues) (any, error) {
			m := rec.(*galleryModel.GalleryModel)
			applyGallery(m, v)
			if err := gallerySvc.Update(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Delete: gallerySvc.Delete,
		Count:  gallerySvc.Count,
		FormValuesOf: func(rec any) map[string]string {
			m := rec.(*galleryModel.GalleryModel)
			return map[string]string{
				"title":       m.Title,
				"description": derefStr(m.Description),
				"category":    m.Category,
				"image_url":   m.ImageURL,
			}
		},
		ImageURLOf: func(rec any) string { return rec.(*galleryModel.GalleryModel).ImageURL },
	}
}

/* ===================== AGENDA ===================== */

func applyAgenda(m *agendaModel.AgendaModel, v FormValues) {
	m.Title = v.Get("title")
	m.Description = v.Get("description")
	if t, err := time.Parse("2006-01-02", v.Get("event_date")); err == nil {
		m.EventDate = t
	}
	m.EventTime = optStr(v.Get("event_time"))
	m.Location = optStr(v.Get("location"))
	m.Category = v.Get("category")
	m.ImageURL = optStr(v.Get("image_url"))
	m.IsFeatured = parseBoolField(v.Get("is_featured"))
}

func agendaDescriptor() *Descriptor {
	return &Descriptor{
		Kind:  KindAgenda,
		Label: "Agenda",
		Fields: []FieldSpec{
			{Name: "title", Label: "Judul", Kind: FieldText, Required: true},
			{Name: "description", Label: "Deskripsi", Kind: FieldTextarea, Required: true},
			{Name: "event_date", Label: "Tanggal", Kind: FieldDate, Required: true},
			{Name: "event_time", Label: "Waktu", Kind: FieldText},
			{Name: "location", Label: "Lokasi", Kind: FieldText},
			{Name: "category", Label: "Kategori", Kind: FieldText, Required: true},
			{Name: "is_featured", Label: "Tampilkan di Beranda", Kind: FieldCheckbox},
		},
		Columns: []ColumnSpec{
			{Key: "title", Label: "Judul", Kind: ColTruncated},
			{Key: "event_date", Label: "Tanggal", Kind: ColDate},
			{Key: "location", Label: "Lokasi", Kind: ColDefault},
			{Key: "category", Label: "Kategori", Kind: ColDefault},
			{Key: "is_featured", Label: "Unggulan", Kind: ColBoolean},
		},
		Defaults:     map[string]string{"is_featured": "false"},
		ImageField:   "image_url", // opsional untuk agenda
		UploadFolder: "agenda",
		List:         func(db *gorm.DB) (any, error) { return agendaSvc.GetAll(db) },
		Get: func(db *gorm.DB, id uuid.UUID) (any, error) {
			row, err := agendaSvc.GetByID(db, id)
			if err != nil || row == nil {
				return nil, err
			}
			return row, nil
		},
		Create: func(db *gorm.DB, v FormValues) (any, error) {
			m := &agendaModel.AgendaModel{}
			applyAgenda(m, v)
			if err := agendaSvc.Create(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Update: func(db *gorm.DB, rec any, v FormValues) (any, error) {
			m := rec.(*agendaModel.AgendaModel)
			applyAgenda(m, v)
			if err := agendaSvc.Update(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Delete: agendaSvc.Delete,
		Count:  agendaSvc.Count,
		FormValuesOf: func(rec any) map[string]string {
			m := rec.(*agendaModel.AgendaModel)
			return map[string]string{
				"title":       m.Title,
				"description": m.Description,
				"event_date":  m.EventDate.Format("2006-01-02"),
				"event_time":  derefStr(m.EventTime),
				"location":    derefStr(m.Location),
				"category":    m.Category,
				"is_featured": strconv.FormatBool(m.IsFeatured),
				"image_url":   derefStr(m.ImageURL),
			}
		},
		ImageURLOf: func(rec any) string { return derefStr(rec.(*agendaModel.AgendaModel).ImageURL) },
	}
}

/* ===================== PROGRAMS ===================== */

func applyProgram(m *programModel.ProgramModel, v FormValues) {
	m.Name = v.Get("name")
	m.Code = v.Get("code")
	m.Description = v.Get("description")
	m.Duration = v.Get("duration")
	m.Competencies = datatypes.JSONSlice[string](helper.SplitCommaList(v.Get("competencies")))
	m.CareerProspects = datatypes.JSONSlice[string](helper.SplitCommaList(v.Get("career_prospects")))
	m.ImageURL = v.Get("image_url")
	m.IsActive = parseBoolField(v.Get("is_active"))
}

func programsDescriptor() *Descriptor {
	return &Descriptor{
		Kind:  KindPrograms,
		Label: "Kompetensi Keahlian",
		Fields: []FieldSpec{
			{Name: "name", Label: "Nama", Kind: FieldText, Required: true},
			{Name: "code", Label: "Kode", Kind: FieldText, Required: true},
			{Name: "description", Label: "Deskripsi", Kind: FieldTextarea, Required: true},
			{Name: "duration", Label: "Durasi", Kind: FieldText, Required: true},
			{Name: "competencies", Label: "Kompetensi", Kind: FieldList},
			{Name: "career_prospects", Label: "Prospek Karir", Kind: FieldList},
			{Name: "is_active", Label: "Aktif", Kind: FieldCheckbox},
		},
		Columns: []ColumnSpec{
			{Key: "image_url", Label: "Gambar", Kind: ColImage},
			{Key: "name", Label: "Nama", Kind: ColDefault},
			{Key: "code", Label: "Kode", Kind: ColDefault},
			{Key: "duration", Label: "Durasi", Kind: ColDefault},
			{Key: "competencies", Label: "Kompetensi", Kind: ColList},
			{Key: "is_active", Label: "Aktif", Kind: ColBoolean},
		},
		Defaults:      map[string]string{"is_active": "true"},
		ImageField:    "image_url",
		ImageRequired: true,
		UploadFolder:  "programs",
		List:          func(db *gorm.DB) (any, error) { return programSvc.GetAll(db) },
		Get: func(db *gorm.DB, id uuid.UUID) (any, error) {
			row, err := programSvc.GetByID(db, id)
			if err != nil || row == nil {
				return nil, err
			}
			return row, nil
		},
		Create: func(db *gorm.DB, v FormValues) (any, error) {
			m := &programModel.ProgramModel{}
			applyProgram(m, v)
			if err := programSvc.Create(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Update: func(db *gorm.DB, rec any, v FormValues) (any, error) {
			m := rec.(*programModel.ProgramModel)
			applyProgram(m, v)
			if err := programSvc.Update(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Delete: programSvc.Delete,
		Count:  programSvc.Count,
		FormValuesOf: func(rec any) map[string]string {
			m := rec.(*programModel.ProgramModel)
			return map[string]string{
				"name":             m.Name,
				"code":             m.Code,
				"description":      m.Description,
				"duration":         m.Duration,
				"competencies":     helper.JoinCommaList([]string(m.Competencies)),
				"career_prospects": helper.JoinCommaList([]string(m.CareerProspects)),
				"is_active":        strconv.FormatBool(m.IsActive),
				"image_url":        m.ImageURL,
			}
		},
		ImageURLOf: func(rec any) string { return rec.(*programModel.ProgramModel).ImageURL },
	}
}

/* ===================== STAFF: TENAGA PENDIDIK ===================== */

func applyStaffTeacher(m *staffModel.StaffTeacherModel, v FormValues) {
	m.Name = v.Get("name")
	m.Position = v.Get("position")
	m.Education = v.Get("education")
	m.Subjects = datatypes.JSONSlice[string](helper.SplitCommaList(v.Get("subjects")))
	m.Phone = optStr(v.Get("phone"))
	m.Email = optStr(v.Get("email"))
	m.Bio = optStr(v.Get("bio"))
	m.ExperienceYears = parseIntField(v.Get("experience_years"), 0)
	m.ImageURL = v.Get("image_url")
}

func staffTeachersDescriptor() *Descriptor {
	return &Descriptor{
		Kind:  KindStaffTeachers,
		Label: "Tenaga Pendidik",
		Fields: []FieldSpec{
			{Name: "name", Label: "Nama", Kind: FieldText, Required: true},
			{Name: "position", Label: "Jabatan", Kind: FieldText, Required: true},
			{Name: "education", Label: "Pendidikan", Kind: FieldText, Required: true},
			{Name: "subjects", Label: "Mata Pelajaran", Kind: FieldList},
			{Name: "phone", Label: "Telepon", Kind: FieldText},
			{Name: "email", Label: "Email", Kind: FieldEmail},
			{Name: "experience_years", Label: "Lama Mengajar (tahun)", Kind: FieldNumber, Min: intp(0)},
			{Name: "bio", Label: "Biografi", Kind: FieldTextarea},
		},
		Columns: []ColumnSpec{
			{Key: "image_url", Label: "Foto", Kind: ColImage},
			{Key: "name", Label: "Nama", Kind: ColDefault},
			{Key: "position", Label: "Jabatan", Kind: ColDefault},
			{Key: "subjects", Label: "Mapel", Kind: ColList},
			{Key: "experience_years", Label: "Pengalaman", Kind: ColDefault},
		},
		ImageField:    "image_url",
		ImageRequired: true,
		UploadFolder:  "staff",
		List:          func(db *gorm.DB) (any, error) { return staffSvc.GetAllTeachers(db) },
		Get: func(db *gorm.DB, id uuid.UUID) (any, error) {
			row, err := staffSvc.GetTeacherByID(db, id)
			if err != nil || row == nil {
				return nil, err
			}
			return row, nil
		},
		Create: func(db *gorm.DB, v FormValues) (any, error) {
			m := &staffModel.StaffTeacherModel{}
			applyStaffTeacher(m, v)
			if err := staffSvc.CreateTeacher(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Update: func(db *gorm.DB, rec any, v FormValues) (any, error) {
			m := rec.(*staffModel.StaffTeacherModel)
			applyStaffTeacher(m, v)
			if err := staffSvc.UpdateTeacher(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Delete: staffSvc.DeleteTeacher,
		Count:  staffSvc.CountTeachers,
		FormValuesOf: func(rec any) map[string]string {
			m := rec.(*staffModel.StaffTeacherModel)
			return map[string]string{
				"name":             m.Name,
				"position":         m.Position,
				"education":        m.Education,
				"subjects":         helper.JoinCommaList([]string(m.Subjects)),
				"phone":            derefStr(m.Phone),
				"email":            derefStr(m.Email),
				"experience_years": strconv.Itoa(m.ExperienceYears),
				"bio":              derefStr(m.Bio),
				"image_url":        m.ImageURL,
			}
		},
		ImageURLOf: func(rec any) string { return rec.(*staffModel.StaffTeacherModel).ImageURL },
	}
}

/* ===================== STAFF: TENAGA KEPENDIDIKAN ===================== */

func applyStaffEducation(m *staffModel.StaffEducationModel, v FormValues) {
	m.Name = v.Get("name")
	m.Position = v.Get("position")
	m.Department = v.Get("department")
	m.Education = v.Get("education")
	m.Phone = optStr(v.Get("phone"))
	m.Email = optStr(v.Get("email"))
	m.Bio = optStr(v.Get("bio"))
	m.ImageURL = v.Get("image_url")
}

func staffEducationDescriptor() *Descriptor {
	return &Descriptor{
		Kind:  KindStaffEducation,
		Label: "Tenaga Kependidikan",
		Fields: []FieldSpec{
			{Name: "name", Label: "Nama", Kind: FieldText, Required: true},
			{Name: "position", Label: "Jabatan", Kind: FieldText, Required: true},
			{Name: "department", Label: "Bagian", Kind: FieldText, Required: true},
			{Name: "education", Label: "Pendidikan", Kind: FieldText, Required: true},
			{Name: "phone", Label: "Telepon", Kind: FieldText},
			{Name: "email", Label: "Email", Kind: FieldEmail},
			{Name: "bio", Label: "Biografi", Kind: FieldTextarea},
		},
		Columns: []ColumnSpec{
			{Key: "image_url", Label: "Foto", Kind: ColImage},
			{Key: "name", Label: "Nama", Kind: ColDefault},
			{Key: "position", Label: "Jabatan", Kind: ColDefault},
			{Key: "department", Label: "Bagian", Kind: ColDefault},
		},
		ImageField:    "image_url",
		ImageRequired: true,
		UploadFolder:  "staff",
		List:          func(db *gorm.DB) (any, error) { return staffSvc.GetAllEducation(db) },
		Get: func(db *gorm.DB, id uuid.UUID) (any, error) {
			row, err := staffSvc.GetEducationByID(db, id)
			if err != nil || row == nil {
				return nil, err
			}
			return row, nil
		},
		Create: func(db *gorm.DB, v FormValues) (any, error) {
			m := &staffModel.StaffEducationModel{}
			applyStaffEducation(m, v)
			if err := staffSvc.CreateEducation(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Update: func(db *gorm.DB, rec any, v FormValues) (any, error) {
			m := rec.(*staffModel.StaffEducationModel)
			applyStaffEducation(m, v)
			if err := staffSvc.UpdateEducation(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Delete: staffSvc.DeleteEducation,
		Count:  staffSvc.CountEducation,
		FormValuesOf: func(rec any) map[string]string {
			m := rec.(*staffModel.StaffEducationModel)
			return map[string]string{
				"name":       m.Name,
				"position":   m.Position,
				"department": m.Department,
				"education":  m.Education,
				"phone":      derefStr(m.Phone),
				"email":      derefStr(m.Email),
				"bio":        derefStr(m.Bio),
				"image_url":  m.ImageURL,
			}
		},
		ImageURLOf: func(rec any) string { return rec.(*staffModel.StaffEducationModel).ImageURL },
	}
}

/* ===================== TEACHERS (tabel lama) ===================== */

func applyTeacher(m *staffModel.TeacherModel, v FormValues) {
	m.Name = v.Get("name")
	m.Position = v.Get("position")
	m.Subject = v.Get("subject")
	m.ImageURL = v.Get("image_url")
}

func teachersDescriptor() *Descriptor {
	return &Descriptor{
		Kind:  KindTeachers,
		Label: "Guru",
		Fields: []FieldSpec{
			{Name: "name", Label: "Nama", Kind: FieldText, Required: true},
			{Name: "position", Label: "Jabatan", Kind: FieldText, Required: true},
			{Name: "subject", Label: "Mata Pelajaran", Kind: FieldText, Required: true},
		},
		Columns: []ColumnSpec{
			{Key: "image_url", Label: "Foto", Kind: ColImage},
			{Key: "name", Label: "Nama", Kind: ColDefault},
			{Key: "position", Label: "Jabatan", Kind: ColDefault},
			{Key: "subject", Label: "Mapel", Kind: ColDefault},
		},
		ImageField:    "image_url",
		ImageRequired: true,
		UploadFolder:  "teachers",
		List:          func(db *gorm.DB) (any, error) { return staffSvc.GetAllLegacy(db) },
		Get: func(db *gorm.DB, id uuid.UUID) (any, error) {
			row, err := staffSvc.GetLegacyByID(db, id)
			if err != nil || row == nil {
				return nil, err
			}
			return row, nil
		},
		Create: func(db *gorm.DB, v FormValues) (any, error) {
			m := &staffModel.TeacherModel{}
			applyTeacher(m, v)
			if err := staffSvc.CreateLegacy(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Update: func(db *gorm.DB, rec any, v FormValues) (any, error) {
			m := rec.(*staffModel.TeacherModel)
			applyTeacher(m, v)
			if err := staffSvc.UpdateLegacy(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Delete: staffSvc.DeleteLegacy,
		Count:  staffSvc.CountLegacy,
		FormValuesOf: func(rec any) map[string]string {
			m := rec.(*staffModel.TeacherModel)
			return map[string]string{
				"name":      m.Name,
				"position":  m.Position,
				"subject":   m.Subject,
				"image_url": m.ImageURL,
			}
		},
		ImageURLOf: func(rec any) string { return rec.(*staffModel.TeacherModel).ImageURL },
	}
}

/* ===================== EXTRACURRICULAR ===================== */

func applyEkskul(m *ekskulModel.ExtracurricularModel, v FormValues) {
	m.Name = v.Get("name")
	m.Description = v.Get("description")
	m.Category = v.Get("category")
	m.Schedule = optStr(v.Get("schedule"))
	m.Coach = optStr(v.Get("coach"))
	m.Achievements = datatypes.JSONSlice[string](helper.SplitCommaList(v.Get("achievements")))
	m.IsActive = parseBoolField(v.Get("is_active"))
	m.ImageURL = v.Get("image_url")
}

func extracurricularDescriptor() *Descriptor {
	return &Descriptor{
		Kind:  KindExtracurricular,
		Label: "Ekstrakurikuler",
		Fields: []FieldSpec{
			{Name: "name", Label: "Nama", Kind: FieldText, Required: true},
			{Name: "description", Label: "Deskripsi", Kind: FieldTextarea, Required: true},
			{Name: "category", Label: "Kategori", Kind: FieldText, Required: true},
			{Name: "schedule", Label: "Jadwal", Kind: FieldText},
			{Name: "coach", Label: "Pembina", Kind: FieldText},
			{Name: "achievements", Label: "Prestasi", Kind: FieldList},
			{Name: "is_active", Label: "Aktif", Kind: FieldCheckbox},
		},
		Columns: []ColumnSpec{
			{Key: "image_url", Label: "Gambar", Kind: ColImage},
			{Key: "name", Label: "Nama", Kind: ColDefault},
			{Key: "category", Label: "Kategori", Kind: ColDefault},
			{Key: "schedule", Label: "Jadwal", Kind: ColDefault},
			{Key: "is_active", Label: "Aktif", Kind: ColBoolean},
		},
		Defaults:      map[string]string{"is_active": "true"},
		ImageField:    "image_url",
		ImageRequired: true,
		UploadFolder:  "extracurricular",
		List:          func(db *gorm.DB) (any, error) { return ekskulSvc.GetAll(db) },
		Get: func(db *gorm.DB, id uuid.UUID) (any, error) {
			row, err := ekskulSvc.GetByID(db, id)
			if err != nil || row == nil {
				return nil, err
			}
			return row, nil
		},
		Create: func(db *gorm.DB, v FormValues) (any, error) {
			m := &ekskulModel.ExtracurricularModel{}
			applyEkskul(m, v)
			if err := ekskulSvc.Create(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Update: func(db *gorm.DB, rec any, v FormValues) (any, error) {
			m := rec.(*ekskulModel.ExtracurricularModel)
			applyEkskul(m, v)
			if err := ekskulSvc.Update(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Delete: ekskulSvc.Delete,
		Count:  ekskulSvc.Count,
		FormValuesOf: func(rec any) map[string]string {
			m := rec.(*ekskulModel.ExtracurricularModel)
			return map[string]string{
				"name":         m.Name,
				"description":  m.Description,
				"category":     m.Category,
				"schedule":     derefStr(m.Schedule),
				"coach":        derefStr(m.Coach),
				"achievements": helper.JoinCommaList([]string(m.Achievements)),
				"is_active":    strconv.FormatBool(m.IsActive),
				"image_url":    m.ImageURL,
			}
		},
		ImageURLOf: func(rec any) string { return rec.(*ekskulModel.ExtracurricularModel).ImageURL },
	}
}

/* ===================== TESTIMONIALS ===================== */

func applyTestimonial(m *testiModel.TestimonialModel, v FormValues) {
	m.Name = v.Get("name")
	m.Role = v.Get("role")
	m.GraduationYear = optInt(v.Get("graduation_year"))
	m.CurrentJob = optStr(v.Get("current_job"))
	m.Content = v.Get("content")
	m.Rating = parseIntField(v.Get("rating"), 5)
	m.ImageURL = optStr(v.Get("image_url"))
	m.IsFeatured = parseBoolField(v.Get("is_featured"))
	m.IsApproved = parseBoolField(v.Get("is_approved"))
}

func testimonialsDescriptor() *Descriptor {
	return &Descriptor{
		Kind:  KindTestimonials,
		Label: "Testimoni",
		Fields: []FieldSpec{
			{Name: "name", Label: "Nama", Kind: FieldText, Required: true},
			{Name: "role", Label: "Status", Kind: FieldText, Required: true},
			{Name: "graduation_year", Label: "Tahun Lulus", Kind: FieldNumber, Min: intp(1960), Max: intp(2100)},
			{Name: "current_job", Label: "Pekerjaan", Kind: FieldText},
			{Name: "content", Label: "Testimoni", Kind: FieldTextarea, Required: true},
			{Name: "rating", Label: "Rating", Kind: FieldNumber, Required: true, Min: intp(1), Max: intp(5)},
			{Name: "is_featured", Label: "Unggulan", Kind: FieldCheckbox},
			{Name: "is_approved", Label: "Disetujui", Kind: FieldCheckbox},
		},
		Columns: []ColumnSpec{
			{Key: "name", Label: "Nama", Kind: ColDefault},
			{Key: "role", Label: "Status", Kind: ColDefault},
			{Key: "rating", Label: "Rating", Kind: ColDefault},
			{Key: "is_approved", Label: "Disetujui", Kind: ColBoolean},
			{Key: "is_featured", Label: "Unggulan", Kind: ColBoolean},
			{Key: "created_at", Label: "Masuk", Kind: ColDate},
		},
		Defaults:     map[string]string{"rating": "5", "is_featured": "false", "is_approved": "false"},
		ImageField:   "image_url", // foto opsional
		UploadFolder: "testimonials",
		List:         func(db *gorm.DB) (any, error) { return testiSvc.GetAll(db) },
		Get: func(db *gorm.DB, id uuid.UUID) (any, error) {
			row, err := testiSvc.GetByID(db, id)
			if err != nil || row == nil {
				return nil, err
			}
			return row, nil
		},
		// Insert testimoni selalu lewat funnel service (flag persetujuan
		// dipaksa false); persetujuan dilakukan lewat edit.
		Create: func(db *gorm.DB, v FormValues) (any, error) {
			m := &testiModel.TestimonialModel{}
			applyTestimonial(m, v)
			if err := testiSvc.Create(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Update: func(db *gorm.DB, rec any, v FormValues) (any, error) {
			m := rec.(*testiModel.TestimonialModel)
			applyTestimonial(m, v)
			if err := testiSvc.Update(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Delete: testiSvc.Delete,
		Count:  testiSvc.Count,
		FormValuesOf: func(rec any) map[string]string {
			m := rec.(*testiModel.TestimonialModel)
			year := ""
			if m.GraduationYear != nil {
				year = strconv.Itoa(*m.GraduationYear)
			}
			return map[string]string{
				"name":            m.Name,
				"role":            m.Role,
				"graduation_year": year,
				"current_job":     derefStr(m.CurrentJob),
				"content":         m.Content,
				"rating":          strconv.Itoa(m.Rating),
				"is_featured":     strconv.FormatBool(m.IsFeatured),
				"is_approved":     strconv.FormatBool(m.IsApproved),
				"image_url":       derefStr(m.ImageURL),
			}
		},
		ImageURLOf: func(rec any) string { return derefStr(rec.(*testiModel.TestimonialModel).ImageURL) },
	}
}

/* ===================== LEADERSHIP ===================== */

func applyLeadership(m *leaderModel.LeadershipModel, v FormValues) {
	m.Name = v.Get("name")
	m.Position = v.Get("position")
	m.Education = v.Get("education")
	m.Experience = optStr(v.Get("experience"))
	m.Message = optStr(v.Get("message"))
	m.Phone = optStr(v.Get("phone"))
	m.Email = optStr(v.Get("email"))
	m.OrderPosition = parseIntField(v.Get("order_position"), 0)
	m.IsActive = parseBoolField(v.Get("is_active"))
	m.ImageURL = v.Get("image_url")
}

func leadershipDescriptor() *Descriptor {
	return &Descriptor{
		Kind:  KindLeadership,
		Label: "Pimpinan Sekolah",
		Fields: []FieldSpec{
			{Name: "name", Label: "Nama", Kind: FieldText, Required: true},
			{Name: "position", Label: "Jabatan", Kind: FieldText, Required: true},
			{Name: "education", Label: "Pendidikan", Kind: FieldText, Required: true},
			{Name: "experience", Label: "Pengalaman", Kind: FieldTextarea},
			{Name: "message", Label: "Sambutan", Kind: FieldTextarea},
			{Name: "phone", Label: "Telepon", Kind: FieldText},
			{Name: "email", Label: "Email", Kind: FieldEmail},
			{Name: "order_position", Label: "Urutan", Kind: FieldNumber, Min: intp(0)},
			{Name: "is_active", Label: "Aktif", Kind: FieldCheckbox},
		},
		Columns: []ColumnSpec{
			{Key: "image_url", Label: "Foto", Kind: ColImage},
			{Key: "name", Label: "Nama", Kind: ColDefault},
			{Key: "position", Label: "Jabatan", Kind: ColDefault},
			{Key: "order_position", Label: "Urutan", Kind: ColDefault},
			{Key: "is_active", Label: "Aktif", Kind: ColBoolean},
		},
		Defaults:      map[string]string{"order_position": "0", "is_active": "true"},
		ImageField:    "image_url",
		ImageRequired: true,
		UploadFolder:  "leadership",
		List:          func(db *gorm.DB) (any, error) { return leaderSvc.GetAllForAdmin(db) },
		Get: func(db *gorm.DB, id uuid.UUID) (any, error) {
			row, err := leaderSvc.GetByID(db, id)
			if err != nil || row == nil {
				return nil, err
			}
			return row, nil
		},
		Create: func(db *gorm.DB, v FormValues) (any, error) {
			m := &leaderModel.LeadershipModel{}
			applyLeadership(m, v)
			if err := leaderSvc.Create(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Update: func(db *gorm.DB, rec any, v FormValues) (any, error) {
			m := rec.(*leaderModel.LeadershipModel)
			applyLeadership(m, v)
			if err := leaderSvc.Update(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Delete: leaderSvc.Delete,
		Count:  leaderSvc.Count,
		FormValuesOf: func(rec any) map[string]string {
			m := rec.(*leaderModel.LeadershipModel)
			return map[string]string{
				"name":           m.Name,
				"position":       m.Position,
				"education":      m.Education,
				"experience":     derefStr(m.Experience),
				"message":        derefStr(m.Message),
				"phone":          derefStr(m.Phone),
				"email":          derefStr(m.Email),
				"order_position": strconv.Itoa(m.OrderPosition),
				"is_active":      strconv.FormatBool(m.IsActive),
				"image_url":      m.ImageURL,
			}
		},
		ImageURLOf: func(rec any) string { return rec.(*leaderModel.LeadershipModel).ImageURL },
	}
}

/* ===================== PPDB STEPS ===================== */

func applyPpdbStep(m *ppdbModel.PpdbStepModel, v FormValues) {
	m.Title = v.Get("title")
	m.Description = v.Get("description")
	m.StepOrder = parseIntField(v.Get("step_order"), 0)
}

func ppdbStepsDescriptor() *Descriptor {
	return &Descriptor{
		Kind:  KindPpdbSteps,
		Label: "Alur PPDB",
		Fields: []FieldSpec{
			{Name: "title", Label: "Judul", Kind: FieldText, Required: true},
			{Name: "description", Label: "Deskripsi", Kind: FieldTextarea, Required: true},
			{Name: "step_order", Label: "Urutan", Kind: FieldNumber, Required: true, Min: intp(0)},
		},
		Columns: []ColumnSpec{
			{Key: "step_order", Label: "Urutan", Kind: ColDefault},
			{Key: "title", Label: "Judul", Kind: ColDefault},
			{Key: "description", Label: "Deskripsi", Kind: ColTruncated},
		},
		Defaults: map[string]string{"step_order": "0"},
		List:     func(db *gorm.DB) (any, error) { return ppdbSvc.GetAll(db) },
		Get: func(db *gorm.DB, id uuid.UUID) (any, error) {
			row, err := ppdbSvc.GetByID(db, id)
			if err != nil || row == nil {
				return nil, err
			}
			return row, nil
		},
		Create: func(db *gorm.DB, v FormValues) (any, error) {
			m := &ppdbModel.PpdbStepModel{}
			applyPpdbStep(m, v)
			if err := ppdbSvc.Create(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Update: func(db *gorm.DB, rec any, v FormValues) (any, error) {
			m := rec.(*ppdbModel.PpdbStepModel)
			applyPpdbStep(m, v)
			if err := ppdbSvc.Update(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Delete: ppdbSvc.Delete,
		Count:  ppdbSvc.Count,
		FormValuesOf: func(rec any) map[string]string {
			m := rec.(*ppdbModel.PpdbStepModel)
			return map[string]string{
				"title":       m.Title,
				"description": m.Description,
				"step_order":  strconv.Itoa(m.StepOrder),
			}
		},
		ImageURLOf: func(rec any) string { return "" },
	}
}

/* ===================== DOCUMENTS ===================== */

func applyDocument(m *docModel.DocumentModel, v FormValues) {
	m.Title = v.Get("title")
	m.Description = optStr(v.Get("description"))
	m.Category = v.Get("category")
	m.FileURL = v.Get("file_url")
}

func documentsDescriptor() *Descriptor {
	return &Descriptor{
		Kind:  KindDocuments,
		Label: "Dokumen",
		Fields: []FieldSpec{
			{Name: "title", Label: "Judul", Kind: FieldText, Required: true},
			{Name: "description", Label: "Deskripsi", Kind: FieldTextarea},
			{Name: "category", Label: "Kategori", Kind: FieldText, Required: true},
		},
		Columns: []ColumnSpec{
			{Key: "title", Label: "Judul", Kind: ColTruncated},
			{Key: "category", Label: "Kategori", Kind: ColDefault},
			{Key: "created_at", Label: "Diunggah", Kind: ColDate},
		},
		// Berkas dokumen (PDF dsb) lewat pipeline upload yang sama.
		ImageField:    "file_url",
		ImageRequired: true,
		UploadFolder:  "documents",
		List:          func(db *gorm.DB) (any, error) { return docSvc.GetAll(db) },
		Get: func(db *gorm.DB, id uuid.UUID) (any, error) {
			row, err := docSvc.GetByID(db, id)
			if err != nil || row == nil {
				return nil, err
			}
			return row, nil
		},
		Create: func(db *gorm.DB, v FormValues) (any, error) {
			m := &docModel.DocumentModel{}
			applyDocument(m, v)
			if err := docSvc.Create(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Update: func(db *gorm.DB, rec any, v FormValues) (any, error) {
			m := rec.(*docModel.DocumentModel)
			applyDocument(m, v)
			if err := docSvc.Update(db, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Delete: docSvc.Delete,
		Count:  docSvc.Count,
		FormValuesOf: func(rec any) map[string]string {
			m := rec.(*docModel.DocumentModel)
			return map[string]string{
				"title":       m.Title,
				"description": derefStr(m.Description),
				"category":    m.Category,
				"file_url":    m.FileURL,
			}
		},
		ImageURLOf: func(rec any) string { return rec.(*docModel.DocumentModel).FileURL },
	}
}

/* ===================== MESSAGES (read-only + delete) ===================== */

func messagesDescriptor() *Descriptor {
	return &Descriptor{
		Kind:  KindMessages,
		Label: "Pesan Masuk",
		// Tidak ada form: pesan hanya masuk lewat form kontak publik.
		Columns: []ColumnSpec{
			{Key: "name", Label: "Nama", Kind: ColDefault},
			{Key: "email", Label: "Email", Kind: ColDefault},
			{Key: "subject", Label: "Subjek", Kind: ColTruncated},
			{Key: "message", Label: "Pesan", Kind: ColTruncated},
			{Key: "is_read", Label: "Dibaca", Kind: ColBoolean},
			{Key: "created_at", Label: "Masuk", Kind: ColDate},
		},
		List: func(db *gorm.DB) (any, error) { return msgSvc.GetAll(db) },
		Get: func(db *gorm.DB, id uuid.UUID) (any, error) {
			row, err := msgSvc.GetByID(db, id)
			if err != nil || row == nil {
				return nil, err
			}
			return row, nil
		},
		Delete: msgSvc.Delete,
		Count:  msgSvc.Count,
		FormValuesOf: func(rec any) map[string]string { return map[string]string{} },
		ImageURLOf:   func(rec any) string { return "" },
	}
}
