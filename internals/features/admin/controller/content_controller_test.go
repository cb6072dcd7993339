// file: internals/features/admin/controller/content_controller_test.go
package controller_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "sekolahku_backend/internals/databases"
	adminController "sekolahku_backend/internals/features/admin/controller"
	newsSvc "sekolahku_backend/internals/features/school/news/service"
	"sekolahku_backend/internals/helpers/storage"
)

type fakeStorage struct {
	srv     *httptest.Server
	puts    int64
	deletes int64
}

func (f *fakeStorage) Puts() int64    { return atomic.LoadInt64(&f.puts) }
func (f *fakeStorage) Deletes() int64 { return atomic.LoadInt64(&f.deletes) }

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *fakeStorage) {
	t.Helper()

	db, err := database.OpenTest()
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	fake := &fakeStorage{}
	fake.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			atomic.AddInt64(&fake.puts, 1)
		case http.MethodDelete:
			atomic.AddInt64(&fake.deletes, 1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(fake.srv.Close)

	st := &storage.Service{
		BaseURL: fake.srv.URL,
		APIKey:  "test-key",
		Bucket:  "uploads",
		Client:  fake.srv.Client(),
	}

	ctrl := adminController.NewContentController(db, st)
	app := fiber.New()
	app.Get("/api/a/stats", ctrl.Stats)
	grp := app.Group("/api/a/content")
	grp.Get("/:entity", ctrl.List)
	grp.Get("/:entity/form", ctrl.Form)
	grp.Post("/:entity", ctrl.Create)
	grp.Put("/:entity/:id", ctrl.Update)
	grp.Delete("/:entity/:id", ctrl.Delete)

	return app, db, fake
}

func formRequest(method, target string, fields url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(fields.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, fileName string, fileContent []byte) *http.Request {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

/* ===================== TESTS ===================== */

func TestEntityTidakDikenal(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/a/content/unknown", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// Validasi gagal berarti TIDAK ada satupun request ke storage.
func TestCreateTanpaBerkasWajibDitolakSebelumUpload(t *testing.T) {
	app, _, fake := newTestApp(t)

	req := multipartRequest(t, http.MethodPost, "/api/a/content/news", map[string]string{
		"title":    "Judul",
		"excerpt":  "Ringkasan",
		"content":  "Isi",
		"category": "Prestasi",
		"author":   "Admin",
		// tanpa file, tanpa image_url
	}, "", nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	require.EqualValues(t, 0, fake.Puts())
}

func TestCreatePpdbStepDanCacheList(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(formRequest(http.MethodPost, "/api/a/content/ppdb_steps", url.Values{
		"title":       {"Pendaftaran Online"},
		"description": {"Isi formulir di website"},
		"step_order":  {"1"},
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// list pertama → 200 + ETag versi tab
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/a/content/ppdb_steps", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	etag := resp.Header.Get(fiber.HeaderETag)
	require.Equal(t, `W/"ppdb_steps-v1"`, etag)

	// klien yang masih pegang versi sama → 304
	req := httptest.NewRequest(http.MethodGet, "/api/a/content/ppdb_steps", nil)
	req.Header.Set(fiber.HeaderIfNoneMatch, etag)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotModified, resp.StatusCode)

	// mutasi baru → versi naik, ETag lama tidak berlaku
	resp, err = app.Test(formRequest(http.MethodPost, "/api/a/content/ppdb_steps", url.Values{
		"title":       {"Tes Seleksi"},
		"description": {"Tes akademik dan wawancara"},
		"step_order":  {"2"},
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/a/content/ppdb_steps", nil)
	req.Header.Set(fiber.HeaderIfNoneMatch, etag)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, `W/"ppdb_steps-v2"`, resp.Header.Get(fiber.HeaderETag))
}

func TestUploadLaluHapusIkutBersihkanStorage(t *testing.T) {
	app, db, fake := newTestApp(t)

	req := multipartRequest(t, http.MethodPost, "/api/a/content/news", map[string]string{
		"title":        "Juara LKS",
		"excerpt":      "Siswa juara 1",
		"content":      "Selengkapnya...",
		"category":     "Prestasi",
		"author":       "Admin",
		"is_published": "true",
	}, "juara.jpg", []byte("isi-gambar"))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.EqualValues(t, 1, fake.Puts())

	rows, err := newsSvc.GetAll(db)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Contains(t, rows[0].ImageURL, "/uploads/news/")
	require.True(t, rows[0].IsPublished)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/a/content/news/"+rows[0].ID.String(), nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.EqualValues(t, 1, fake.Deletes())

	rows, err = newsSvc.GetAll(db)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestUpdateGantiBerkasMenghapusYangLama(t *testing.T) {
	app, db, fake := newTestApp(t)

	req := multipartRequest(t, http.MethodPost, "/api/a/content/gallery", map[string]string{
		"title":    "Upacara",
		"category": "Kegiatan",
	}, "upacara.jpg", []byte("foto-lama"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var id, oldURL string
	{
		type row struct {
			ID       string
			ImageURL string
		}
		var r row
		require.NoError(t, db.Table("gallery").Select("id, image_url").Take(&r).Error)
		id, oldURL = r.ID, r.ImageURL
	}

	req = multipartRequest(t, http.MethodPut, "/api/a/content/gallery/"+id, map[string]string{
		"title":    "Upacara Bendera",
		"category": "Kegiatan",
	}, "upacara-baru.jpg", []byte("foto-baru"))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.EqualValues(t, 2, fake.Puts())
	require.EqualValues(t, 1, fake.Deletes()) // objek lama dibersihkan

	var newURL string
	require.NoError(t, db.Table("gallery").Select("image_url").Where("id = ?", id).Limit(1).Scan(&newURL).Error)
	require.NotEqual(t, oldURL, newURL)
}

// Edit tanpa mengunggah berkas baru: URL lama dipertahankan.
func TestUpdateTanpaBerkasBaruMempertahankanYangLama(t *testing.T) {
	app, db, fake := newTestApp(t)

	req := multipartRequest(t, http.MethodPost, "/api/a/content/gallery", map[string]string{
		"title":    "Classmeeting",
		"category": "Kegiatan",
	}, "cm.jpg", []byte("foto"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var id, oldURL string
	{
		type row struct {
			ID       string
			ImageURL string
		}
		var r row
		require.NoError(t, db.Table("gallery").Select("id, image_url").Take(&r).Error)
		id, oldURL = r.ID, r.ImageURL
	}

	resp, err = app.Test(formRequest(http.MethodPut, "/api/a/content/gallery/"+id, url.Values{
		"title":    {"Classmeeting 2026"},
		"category": {"Kegiatan"},
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.EqualValues(t, 1, fake.Puts())
	require.EqualValues(t, 0, fake.Deletes())

	var title, newURL string
	{
		type row struct {
			Title    string
			ImageURL string
		}
		var r row
		require.NoError(t, db.Table("gallery").Select("title, image_url").Where("id = ?", id).Take(&r).Error)
		title, newURL = r.Title, r.ImageURL
	}
	require.Equal(t, "Classmeeting 2026", title)
	require.Equal(t, oldURL, newURL)
}

func TestMessagesTidakPunyaForm(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(formRequest(http.MethodPost, "/api/a/content/messages", url.Values{
		"name": {"Budi"},
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/a/content/messages/form", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}

func TestFormPrefillCreateDanEdit(t *testing.T) {
	app, _, _ := newTestApp(t)

	// create → nilai default descriptor
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/a/content/programs/form", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// id ngawur → 400, id tak ada → 404
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/a/content/programs/form?id=bukan-uuid", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/a/content/programs/form?id=6f7c9d7e-1b3a-4e65-9f0e-3a4b5c6d7e8f", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStatsMenghitungSemuaEntitas(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(formRequest(http.MethodPost, "/api/a/content/ppdb_steps", url.Values{
		"title":       {"Daftar Ulang"},
		"description": {"Pembayaran dan berkas"},
		"step_order":  {"3"},
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/a/stats", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
