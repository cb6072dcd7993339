// file: internals/features/admin/registry/entity_kind.go
package registry

/* =========================================================
   EntityKind: daftar tertutup konten yang dikelola dashboard.
   String-nya dipakai sebagai segmen URL (/api/a/content/:entity).
   ========================================================= */

type EntityKind string

const (
	KindNews            EntityKind = "news"
	KindGallery         EntityKind = "gallery"
	KindAgenda          EntityKind = "agenda"
	KindPrograms        EntityKind = "programs"
	KindStaffTeachers   EntityKind = "staff_teachers"
	KindStaffEducation  EntityKind = "staff_education"
	KindTeachers        EntityKind = "teachers"
	KindExtracurricular EntityKind = "extracurricular"
	KindTestimonials    EntityKind = "testimonials"
	KindLeadership      EntityKind = "leadership"
	KindPpdbSteps       EntityKind = "ppdb_steps"
	KindDocuments       EntityKind = "documents"
	KindMessages        EntityKind = "messages"
)

var allKinds = []EntityKind{
	KindNews,
	KindGallery,
	KindAgenda,
	KindPrograms,
	KindStaffTeachers,
	KindStaffEducation,
	KindTeachers,
	KindExtracurricular,
	KindTestimonials,
	KindLeadership,
	KindPpdbSteps,
	KindDocuments,
	KindMessages,
}

// AllKinds mengembalikan salinan supaya pemanggil tidak bisa mengubah urutan.
func AllKinds() []EntityKind {
	out := make([]EntityKind, len(allKinds))
	copy(out, allKinds)
	return out
}

// ParseEntityKind memetakan segmen URL ke EntityKind; false kalau tidak dikenal.
func ParseEntityKind(s string) (EntityKind, bool) {
	k := EntityKind(s)
	for _, known := range allKinds {
		if k == known {
			return k, true
		}
	}
	return "", false
}
