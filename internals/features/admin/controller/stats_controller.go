// file: internals/features/admin/controller/stats_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"sekolahku_backend/internals/features/admin/registry"
	msgSvc "sekolahku_backend/internals/features/school/messages/service"
	helper "sekolahku_backend/internals/helpers"
)

// GET /api/a/stats
// Ringkasan dashboard: jumlah baris tiap konten, dihitung paralel.
func (h *ContentController) Stats(c *fiber.Ctx) error {
	kinds := registry.AllKinds()
	counts := make([]int64, len(kinds))
	var unread int64

	g, ctx := errgroup.WithContext(c.Context())
	for i, kind := range kinds {
		d, ok := registry.Lookup(kind)
		if !ok || d.Count == nil {
			continue
		}
		g.Go(func() error {
			n, err := d.Count(h.DB.WithContext(ctx))
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}
	g.Go(func() error {
		n, err := msgSvc.CountUnread(h.DB.WithContext(ctx))
		if err != nil {
			return err
		}
		unread = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}

	out := fiber.Map{"unread_messages": unread}
	for i, kind := range kinds {
		out[string(kind)] = counts[i]
	}
	return helper.JsonOK(c, "ok", out)
}
