// file: internals/features/admin/registry/registry_test.go
package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "sekolahku_backend/internals/databases"
	"sekolahku_backend/internals/features/admin/registry"
	programModel "sekolahku_backend/internals/features/school/programs/model"
	testiModel "sekolahku_backend/internals/features/school/testimonials/model"
)

func TestRegistryLengkapUntukSemuaKind(t *testing.T) {
	reg := registry.Registry()
	require.Len(t, reg, len(registry.AllKinds()))

	for _, kind := range registry.AllKinds() {
		d, ok := registry.Lookup(kind)
		require.True(t, ok, "kind %s tidak terdaftar", kind)
		require.Equal(t, kind, d.Kind)
		require.NotEmpty(t, d.Label)
		require.NotEmpty(t, d.Columns)
		require.NotNil(t, d.List)
		require.NotNil(t, d.Get)
		require.NotNil(t, d.Delete)
		require.NotNil(t, d.Count)
		require.NotNil(t, d.FormValuesOf)
		require.NotNil(t, d.ImageURLOf)

		if d.HasForm() {
			require.NotNil(t, d.Create, "kind %s punya form tapi tak bisa create", kind)
			require.NotNil(t, d.Update, "kind %s punya form tapi tak bisa update", kind)
		}
		if d.HasImage() {
			require.NotEmpty(t, d.UploadFolder, "kind %s punya berkas tapi folder kosong", kind)
		}
	}
}

func TestParseEntityKind(t *testing.T) {
	k, ok := registry.ParseEntityKind("news")
	require.True(t, ok)
	require.Equal(t, registry.KindNews, k)

	_, ok = registry.ParseEntityKind("users") // bukan konten dashboard
	require.False(t, ok)
}

func TestValidasiFieldWajibDanRentang(t *testing.T) {
	d, _ := registry.Lookup(registry.KindTestimonials)

	// kosong semua → seluruh field wajib dilaporkan sekaligus
	errs := d.ValidateFields(registry.FormValues{Values: map[string]string{}})
	require.Contains(t, errs, "name")
	require.Contains(t, errs, "content")
	require.Contains(t, errs, "rating")

	// rating di luar rentang 1..5
	errs = d.ValidateFields(registry.FormValues{Values: map[string]string{
		"name": "Budi", "role": "Alumni", "content": "ok", "rating": "9",
	}})
	require.Contains(t, errs, "rating")

	// rating bukan angka
	errs = d.ValidateFields(registry.FormValues{Values: map[string]string{
		"name": "Budi", "role": "Alumni", "content": "ok", "rating": "lima",
	}})
	require.Contains(t, errs, "rating")

	// lengkap dan valid
	errs = d.ValidateFields(registry.FormValues{Values: map[string]string{
		"name": "Budi", "role": "Alumni", "content": "ok", "rating": "5",
	}})
	require.Empty(t, errs)
}

func TestValidasiEmailDanTanggal(t *testing.T) {
	staff, _ := registry.Lookup(registry.KindStaffTeachers)
	errs := staff.ValidateFields(registry.FormValues{Values: map[string]string{
		"name": "Ani", "position": "Guru", "education": "S1", "email": "bukan-email",
	}})
	require.Contains(t, errs, "email")

	agenda, _ := registry.Lookup(registry.KindAgenda)
	errs = agenda.ValidateFields(registry.FormValues{Values: map[string]string{
		"title": "UTS", "description": "x", "category": "Akademik", "event_date": "09-03-2026",
	}})
	require.Contains(t, errs, "event_date")
}

func openRegistryDB(t *testing.T, models ...any) *gorm.DB {
	t.Helper()
	db, err := database.OpenTest()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models...))
	return db
}

// Input list "A, B, C" dipecah terurut saat disimpan dan digabung lagi
// saat prefill form edit.
func TestProgramListDipecahDanDigabungLagi(t *testing.T) {
	db := openRegistryDB(t, &programModel.ProgramModel{})
	d, _ := registry.Lookup(registry.KindPrograms)

	rec, err := d.Create(db, registry.FormValues{Values: map[string]string{
		"name":         "TKJ",
		"code":         "TKJ",
		"description":  "x",
		"duration":     "3 Tahun",
		"competencies": " Jaringan ,Server,, Keamanan ",
		"is_active":    "true",
		"image_url":    "https://cdn.example.com/tkj.webp",
	}})
	require.NoError(t, err)

	m := rec.(*programModel.ProgramModel)
	require.Equal(t, []string{"Jaringan", "Server", "Keamanan"}, []string(m.Competencies))

	values := d.FormValuesOf(rec)
	require.Equal(t, "Jaringan, Server, Keamanan", values["competencies"])
	require.Equal(t, "https://cdn.example.com/tkj.webp", d.ImageURLOf(rec))
}

// Create testimoni lewat registry tetap melewati funnel service:
// flag persetujuan tidak bisa diselundupkan dari form.
func TestTestimonialCreateLewatRegistryTetapFunnel(t *testing.T) {
	db := openRegistryDB(t, &testiModel.TestimonialModel{})
	d, _ := registry.Lookup(registry.KindTestimonials)

	rec, err := d.Create(db, registry.FormValues{Values: map[string]string{
		"name": "Budi", "role": "Alumni", "content": "ok",
		"rating": "5", "is_approved": "true", "is_featured": "true",
	}})
	require.NoError(t, err)

	m := rec.(*testiModel.TestimonialModel)
	require.False(t, m.IsApproved)
	require.False(t, m.IsFeatured)

	// setelah tersimpan, persetujuan bisa diubah lewat update
	m2, err := d.Update(db, m, registry.FormValues{Values: map[string]string{
		"name": "Budi", "role": "Alumni", "content": "ok",
		"rating": "5", "is_approved": "true",
	}})
	require.NoError(t, err)
	require.True(t, m2.(*testiModel.TestimonialModel).IsApproved)
}
