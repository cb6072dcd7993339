// file: internals/features/admin/controller/content_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/admin/registry"
	"sekolahku_backend/internals/features/admin/state"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/storage"
)

/* =========================================================
   ContentController: CRUD generik dashboard admin.
   Semua entitas konten dilayani satu controller; perilaku
   per-entitas datang dari registry.Descriptor.
   ========================================================= */

type ContentController struct {
	DB      *gorm.DB
	Storage *storage.Service
	State   *state.DashboardState
}

func NewContentController(db *gorm.DB, st *storage.Service) *ContentController {
	return &ContentController{
		DB:      db,
		Storage: st,
		State:   state.NewDashboardState(),
	}
}

func (h *ContentController) descriptor(c *fiber.Ctx) (*registry.Descriptor, error) {
	kind, ok := registry.ParseEntityKind(c.Params("entity"))
	if !ok {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Jenis konten tidak dikenal")
	}
	d, ok := registry.Lookup(kind)
	if !ok {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Jenis konten tidak dikenal")
	}
	return d, nil
}

/* ===================== LIST ===================== */

// GET /api/a/content/:entity
// ETag versi per tab: klien yang datanya masih segar dapat 304.
func (h *ContentController) List(c *fiber.Ctx) error {
	d, err := h.descriptor(c)
	if d == nil {
		return err
	}

	etag := h.State.ETag(d.Kind)
	if match := strings.TrimSpace(c.Get(fiber.HeaderIfNoneMatch)); match != "" && match == etag {
		c.Set(fiber.HeaderETag, etag)
		return c.SendStatus(fiber.StatusNotModified)
	}

	fresh := h.State.BeginLoad(d.Kind)
	rows, err := d.List(h.DB)
	if fresh {
		h.State.FinishLoad(d.Kind, err == nil)
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data "+d.Label)
	}

	c.Set(fiber.HeaderETag, etag)
	return helper.JsonOK(c, "ok", fiber.Map{
		"entity":  d.Kind,
		"label":   d.Label,
		"columns": d.Columns,
		"rows":    rows,
		"version": h.State.Version(d.Kind),
	})
}

/* ===================== FORM ===================== */

// GET /api/a/content/:entity/form[?id=...]
// Skema field + nilai prefill (default untuk create, isi record untuk edit).
func (h *ContentController) Form(c *fiber.Ctx) error {
	d, err := h.descriptor(c)
	if d == nil {
		return err
	}
	if !d.HasForm() {
		return helper.JsonError(c, fiber.StatusMethodNotAllowed, d.Label+" tidak punya form")
	}

	values := map[string]string{}
	for k, v := range d.Defaults {
		values[k] = v
	}

	if rawID := strings.TrimSpace(c.Query("id")); rawID != "" {
		id, perr := uuid.Parse(rawID)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
		}
		rec, gerr := d.Get(h.DB, id)
		if gerr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
		}
		if rec == nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		values = d.FormValuesOf(rec)
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"entity":         d.Kind,
		"label":          d.Label,
		"fields":         d.Fields,
		"values":         values,
		"image_field":    d.ImageField,
		"image_required": d.ImageRequired,
	})
}

/* ===================== CREATE ===================== */

// POST /api/a/content/:entity
// Urutan ketat: validasi dulu (tanpa efek samping) → upload → simpan DB.
func (h *ContentController) Create(c *fiber.Ctx) error {
	d, err := h.descriptor(c)
	if d == nil {
		return err
	}
	if d.Create == nil {
		return helper.JsonError(c, fiber.StatusMethodNotAllowed, d.Label+" tidak bisa dibuat dari dashboard")
	}

	v := parseFormValues(c, d)
	if errs := d.ValidateFields(v); len(errs) > 0 {
		return fieldErrors(c, errs)
	}
	if d.HasImage() && d.ImageRequired && v.File == nil && v.Get(d.ImageField) == "" {
		return fieldErrors(c, map[string]string{d.ImageField: "Berkas wajib diunggah"})
	}

	if d.HasImage() && v.File != nil {
		res, uerr := h.Storage.UploadFile(c.Context(), d.UploadFolder, v.File)
		if uerr != nil {
			log.Printf("[ADMIN] ❌ Upload %s gagal: %v", d.Kind, uerr)
			return helper.JsonError(c, fiber.StatusBadGateway, "Gagal mengunggah berkas")
		}
		v.Values[d.ImageField] = res.PublicURL
	}

	rec, cerr := d.Create(h.DB, v)
	if cerr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan "+d.Label)
	}

	h.State.Invalidate(d.Kind)
	return helper.JsonCreated(c, d.Label+" berhasil ditambahkan", rec)
}

/* ===================== UPDATE ===================== */

// PUT /api/a/content/:entity/:id
// Berkas baru diunggah dulu, record disimpan, baru berkas lama dihapus
// (best-effort) supaya kegagalan di tengah tidak meninggalkan record
// yang menunjuk objek hilang.
func (h *ContentController) Update(c *fiber.Ctx) error {
	d, err := h.descriptor(c)
	if d == nil {
		return err
	}
	if d.Update == nil {
		return helper.JsonError(c, fiber.StatusMethodNotAllowed, d.Label+" tidak bisa diubah dari dashboard")
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	rec, gerr := d.Get(h.DB, id)
	if gerr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if rec == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	oldURL := d.ImageURLOf(rec)

	v := parseFormValues(c, d)
	if errs := d.ValidateFields(v); len(errs) > 0 {
		return fieldErrors(c, errs)
	}

	uploaded := false
	if d.HasImage() {
		switch {
		case v.File != nil:
			res, uerr := h.Storage.UploadFile(c.Context(), d.UploadFolder, v.File)
			if uerr != nil {
				log.Printf("[ADMIN] ❌ Upload %s gagal: %v", d.Kind, uerr)
				return helper.JsonError(c, fiber.StatusBadGateway, "Gagal mengunggah berkas")
			}
			v.Values[d.ImageField] = res.PublicURL
			uploaded = true
		case v.Get(d.ImageField) == "":
			// Form tidak membawa berkas baru → pertahankan yang lama
			v.Values[d.ImageField] = oldURL
		}
		if d.ImageRequired && v.Get(d.ImageField) == "" {
			return fieldErrors(c, map[string]string{d.ImageField: "Berkas wajib diunggah"})
		}
	}

	updated, uerr := d.Update(h.DB, rec, v)
	if uerr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan "+d.Label)
	}

	// Bersih-bersih objek lama setelah DB aman
	if uploaded && oldURL != "" && oldURL != v.Get(d.ImageField) {
		if derr := h.Storage.DeleteByPublicURL(c.Context(), oldURL); derr != nil {
			log.Printf("[ADMIN] ⚠️ Gagal hapus berkas lama %s: %v", oldURL, derr)
		}
	}

	h.State.Invalidate(d.Kind)
	return helper.JsonUpdated(c, d.Label+" berhasil diperbarui", updated)
}

/* ===================== DELETE ===================== */

// DELETE /api/a/content/:entity/:id
// Klik ganda / request paralel untuk id yang sama jadi no-op 409.
func (h *ContentController) Delete(c *fiber.Ctx) error {
	d, err := h.descriptor(c)
	if d == nil {
		return err
	}

	id, perr := uuid.Parse(c.Params("id"))
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if !h.State.BeginDelete(d.Kind, id.String()) {
		return helper.JsonError(c, fiber.StatusConflict, "Data sedang dihapus")
	}
	defer h.State.FinishDelete(d.Kind, id.String())

	rec, gerr := d.Get(h.DB, id)
	if gerr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if rec == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}

	if derr := d.Delete(h.DB, id); derr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus "+d.Label)
	}

	// Hapus berkas di storage best-effort; idempoten terhadap objek hilang
	if url := d.ImageURLOf(rec); url != "" {
		if serr := h.Storage.DeleteByPublicURL(c.Context(), url); serr != nil {
			log.Printf("[ADMIN] ⚠️ Gagal hapus berkas %s: %v", url, serr)
		}
	}

	h.State.Invalidate(d.Kind)
	return helper.JsonDeleted(c, d.Label+" berhasil dihapus", fiber.Map{"id": id})
}

/* ===================== HELPERS ===================== */

// parseFormValues membaca multipart/urlencoded form sesuai field descriptor.
func parseFormValues(c *fiber.Ctx, d *registry.Descriptor) registry.FormValues {
	v := registry.FormValues{Values: map[string]string{}}
	for _, f := range d.Fields {
		v.Values[f.Name] = c.FormValue(f.Name)
	}
	if d.HasImage() {
		v.Values[d.ImageField] = c.FormValue(d.ImageField)
		if fh, err := c.FormFile("file"); err == nil && fh != nil {
			v.File = fh
		}
	}
	return v
}

func fieldErrors(c *fiber.Ctx, errs map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"status":  "error",
		"message": "Validasi gagal",
		"errors":  errs,
	})
}
