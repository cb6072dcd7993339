// file: internals/features/school/messages/controller/message_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "sekolahku_backend/internals/databases"
	"sekolahku_backend/internals/features/school/messages/controller"
	"sekolahku_backend/internals/features/school/messages/model"
	"sekolahku_backend/internals/features/school/messages/service"
)

func setupMessageApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := database.OpenTest()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.MessageModel{}))

	app := fiber.New()
	ctrl := controller.NewMessageController(db)
	app.Post("/api/public/messages", ctrl.Create)
	app.Patch("/api/a/messages/:id/read", ctrl.MarkRead)
	return app, db
}

func postMessageJSON(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/public/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

// Email tidak valid ditolak SEBELUM menyentuh DB: tidak ada baris tersimpan.
func TestPesanEmailTidakValidTidakTersimpan(t *testing.T) {
	app, db := setupMessageApp(t)

	resp := postMessageJSON(t, app, `{
		"name": "Budi Santoso",
		"email": "bukan-email",
		"subject": "Tanya PPDB",
		"message": "Halo, saya mau tanya jadwal pendaftaran."
	}`)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	n, err := service.Count(db)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)
}

func TestPesanValidTersimpanBelumTerbaca(t *testing.T) {
	app, db := setupMessageApp(t)

	resp := postMessageJSON(t, app, `{
		"name": "Budi Santoso",
		"email": "budi@contoh.sch.id",
		"subject": "Tanya PPDB",
		"message": "Halo, saya mau tanya jadwal pendaftaran."
	}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	rows, err := service.GetAll(db)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "budi@contoh.sch.id", rows[0].Email)
	require.False(t, rows[0].IsRead)

	unread, err := service.CountUnread(db)
	require.NoError(t, err)
	require.EqualValues(t, 1, unread)

	// tandai terbaca lewat endpoint admin
	req := httptest.NewRequest(http.MethodPatch, "/api/a/messages/"+rows[0].ID.String()+"/read", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	unread, err = service.CountUnread(db)
	require.NoError(t, err)
	require.EqualValues(t, 0, unread)
}
