// file: internals/features/admin/state/dashboard_state_test.go
package state_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/admin/registry"
	"sekolahku_backend/internals/features/admin/state"
)

func TestTabLazyLoad(t *testing.T) {
	s := state.NewDashboardState()

	require.Equal(t, state.TabUnloaded, s.State(registry.KindNews))
	require.True(t, s.BeginLoad(registry.KindNews))
	require.Equal(t, state.TabLoading, s.State(registry.KindNews))

	// fetch kedua saat masih loading/loaded tidak perlu
	require.False(t, s.BeginLoad(registry.KindNews))

	s.FinishLoad(registry.KindNews, true)
	require.Equal(t, state.TabLoaded, s.State(registry.KindNews))
	require.False(t, s.BeginLoad(registry.KindNews))

	// tab lain tidak terpengaruh
	require.True(t, s.BeginLoad(registry.KindGallery))
}

func TestTabGagalLoadBisaDicobaLagi(t *testing.T) {
	s := state.NewDashboardState()

	require.True(t, s.BeginLoad(registry.KindAgenda))
	s.FinishLoad(registry.KindAgenda, false)
	require.Equal(t, state.TabUnloaded, s.State(registry.KindAgenda))
	require.True(t, s.BeginLoad(registry.KindAgenda))
}

func TestInvalidateMenaikkanVersiDanResetTab(t *testing.T) {
	s := state.NewDashboardState()

	require.True(t, s.BeginLoad(registry.KindNews))
	s.FinishLoad(registry.KindNews, true)

	v0 := s.Version(registry.KindNews)
	etag0 := s.ETag(registry.KindNews)

	s.Invalidate(registry.KindNews)
	require.Equal(t, v0+1, s.Version(registry.KindNews))
	require.NotEqual(t, etag0, s.ETag(registry.KindNews))
	require.Equal(t, state.TabUnloaded, s.State(registry.KindNews))
	require.Equal(t, `W/"news-v1"`, s.ETag(registry.KindNews))

	// versi tab lain tidak ikut naik
	require.Equal(t, uint64(0), s.Version(registry.KindGallery))
}

// Klik hapus ganda untuk id yang sama: hanya satu yang dapat klaim.
func TestBeginDeleteHanyaSatuPemenang(t *testing.T) {
	s := state.NewDashboardState()

	const goroutines = 50
	var wg sync.WaitGroup
	wins := make(chan bool, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- s.BeginDelete(registry.KindNews, "abc")
		}()
	}
	wg.Wait()
	close(wins)

	won := 0
	for w := range wins {
		if w {
			won++
		}
	}
	require.Equal(t, 1, won)
	require.True(t, s.IsDeleting(registry.KindNews, "abc"))

	// id sama di entitas lain tidak ikut terkunci
	require.True(t, s.BeginDelete(registry.KindGallery, "abc"))

	s.FinishDelete(registry.KindNews, "abc")
	require.False(t, s.IsDeleting(registry.KindNews, "abc"))
	require.True(t, s.BeginDelete(registry.KindNews, "abc"))
}
