// file: internals/features/admin/registry/registry.go
package registry

import (
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   Descriptor: satu entri registry per EntityKind.
   Controller admin generik hanya bicara lewat struct ini,
   tidak pernah menyentuh model/service fitur secara langsung.
   ========================================================= */

type Descriptor struct {
	Kind  EntityKind
	Label string

	// Fields nil berarti entitas tanpa form create/edit (mis. messages,
	// yang hanya masuk lewat form kontak publik).
	Fields   []FieldSpec
	Columns  []ColumnSpec
	Defaults map[string]string

	// ImageField: nama field URL berkas di form ("" = tanpa upload).
	// Untuk documents field-nya file_url, pipeline uploadnya sama.
	ImageField    string
	ImageRequired bool
	UploadFolder  string

	List   func(db *gorm.DB) (any, error)
	Get    func(db *gorm.DB, id uuid.UUID) (any, error) // (nil, nil) saat id tidak ada
	Create func(db *gorm.DB, v FormValues) (any, error)
	Update func(db *gorm.DB, rec any, v FormValues) (any, error)
	Delete func(db *gorm.DB, id uuid.UUID) error
	Count  func(db *gorm.DB) (int64, error)

	// FormValuesOf: nilai prefill form edit (list → "A, B, C").
	FormValuesOf func(rec any) map[string]string
	// ImageURLOf: URL berkas lama, dipakai untuk bersih-bersih storage.
	ImageURLOf func(rec any) string
}

func (d *Descriptor) HasForm() bool  { return len(d.Fields) > 0 }
func (d *Descriptor) HasImage() bool { return d.ImageField != "" }

var (
	registryOnce sync.Once
	registryMap  map[EntityKind]*Descriptor
)

// Registry mengembalikan map descriptor lengkap (dibangun sekali).
func Registry() map[EntityKind]*Descriptor {
	registryOnce.Do(func() {
		registryMap = map[EntityKind]*Descriptor{
			KindNews:            newsDescriptor(),
			KindGallery:         galleryDescriptor(),
			KindAgenda:          agendaDescriptor(),
			KindPrograms:        programsDescriptor(),
			KindStaffTeachers:   staffTeachersDescriptor(),
			KindStaffEducation:  staffEducationDescriptor(),
			KindTeachers:        teachersDescriptor(),
			KindExtracurricular: extracurricularDescriptor(),
			KindTestimonials:    testimonialsDescriptor(),
			KindLeadership:      leadershipDescriptor(),
			KindPpdbSteps:       ppdbStepsDescriptor(),
			KindDocuments:       documentsDescriptor(),
			KindMessages:        messagesDescriptor(),
		}
	})
	return registryMap
}

// Lookup: descriptor per kind; false kalau tidak terdaftar.
func Lookup(kind EntityKind) (*Descriptor, bool) {
	d, ok := Registry()[kind]
	return d, ok
}
