// file: internals/features/admin/state/dashboard_state.go
package state

import (
	"fmt"
	"sync"

	"sekolahku_backend/internals/features/admin/registry"
)

/* =========================================================
   DashboardState: status per tab konten dashboard.

   - Tab lazy-load: unloaded → loading → loaded. Tab yang sudah
     loaded tidak difetch ulang sampai ada mutasi.
   - Setiap mutasi sukses menaikkan versi tab → ETag berubah,
     cache klien batal.
   - Hapus per-baris dijaga: id yang sedang diproses tidak bisa
     dihapus lagi (request kedua jadi no-op 409).
   ========================================================= */

type TabState int

const (
	TabUnloaded TabState = iota
	TabLoading
	TabLoaded
)

func (s TabState) String() string {
	switch s {
	case TabLoading:
		return "loading"
	case TabLoaded:
		return "loaded"
	default:
		return "unloaded"
	}
}

type DashboardState struct {
	mu       sync.Mutex
	tabs     map[registry.EntityKind]TabState
	versions map[registry.EntityKind]uint64
	deleting map[string]struct{} // "kind/id"
}

func NewDashboardState() *DashboardState {
	return &DashboardState{
		tabs:     make(map[registry.EntityKind]TabState),
		versions: make(map[registry.EntityKind]uint64),
		deleting: make(map[string]struct{}),
	}
}

/* ===================== LAZY LOAD ===================== */

// BeginLoad menandai tab sedang difetch. false = sudah loaded/loading,
// artinya fetch ulang tidak diperlukan.
func (s *DashboardState) BeginLoad(kind registry.EntityKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tabs[kind] != TabUnloaded {
		return false
	}
	s.tabs[kind] = TabLoading
	return true
}

// FinishLoad: ok=true → loaded; gagal → kembali unloaded agar bisa dicoba lagi.
func (s *DashboardState) FinishLoad(kind registry.EntityKind, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ok {
		s.tabs[kind] = TabLoaded
	} else {
		s.tabs[kind] = TabUnloaded
	}
}

func (s *DashboardState) State(kind registry.EntityKind) TabState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tabs[kind]
}

/* ===================== INVALIDASI ===================== */

// Invalidate dipanggil setelah create/update/delete sukses:
// versi naik dan tab ditandai perlu fetch ulang.
func (s *DashboardState) Invalidate(kind registry.EntityKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.versions[kind]++
	s.tabs[kind] = TabUnloaded
}

func (s *DashboardState) Version(kind registry.EntityKind) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.versions[kind]
}

// ETag versi lemah untuk If-None-Match.
func (s *DashboardState) ETag(kind registry.EntityKind) string {
	return fmt.Sprintf(`W/"%s-v%d"`, kind, s.Version(kind))
}

/* ===================== GUARD HAPUS ===================== */

func deleteKey(kind registry.EntityKind, id string) string {
	return string(kind) + "/" + id
}

// BeginDelete mengklaim id untuk dihapus. false = sudah ada proses
// hapus berjalan untuk id yang sama.
func (s *DashboardState) BeginDelete(kind registry.EntityKind, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := deleteKey(kind, id)
	if _, busy := s.deleting[key]; busy {
		return false
	}
	s.deleting[key] = struct{}{}
	return true
}

func (s *DashboardState) FinishDelete(kind registry.EntityKind, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.deleting, deleteKey(kind, id))
}

func (s *DashboardState) IsDeleting(kind registry.EntityKind, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, busy := s.deleting[deleteKey(kind, id)]
	return busy
}
