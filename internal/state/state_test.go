package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rook-computer/streamclock/internal/settings"
)

func TestStore_StartsWithDefaults(t *testing.T) {
	store := NewStore()
	snap := store.Snapshot()
	assert.Equal(t, settings.Defaults(), snap.Settings)
	assert.Zero(t, snap.Revision)
}

func TestStore_ReplaceIsWholesale(t *testing.T) {
	store := NewStore()
	s := settings.Defaults()
	s.Layout = settings.LayoutVertical
	s.FontColor = "#ABCDEF"

	rev := store.Replace(s)
	assert.Equal(t, uint64(1), rev)

	got := store.Settings()
	assert.Equal(t, settings.LayoutVertical, got.Layout)
	assert.Equal(t, "#abcdef", got.FontColor)

	// the caller's copy is not shared with the store
	s.Layout = settings.LayoutHorizontal
	assert.Equal(t, settings.LayoutVertical, store.Settings().Layout)

	store.Reset()
	assert.Equal(t, settings.Defaults(), store.Settings())
	assert.Equal(t, uint64(2), store.Snapshot().Revision)
}

func TestStore_ConcurrentReplace(t *testing.T) {
	store := NewStoreWith(settings.Defaults())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			s := settings.Defaults()
			s.TimeFontSize = n
			store.Replace(s)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.Snapshot()
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(50), store.Snapshot().Revision)
}
