package display

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/streamclock/internal/render"
	"github.com/rook-computer/streamclock/internal/settings"
	"github.com/rook-computer/streamclock/internal/state"
)

type recorder struct {
	mu     sync.Mutex
	frames []render.Frame
}

func (r *recorder) Apply(frame render.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, frame)
	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

func (r *recorder) last() render.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames[len(r.frames)-1]
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestDriver_TickRendersCurrentInstant(t *testing.T) {
	rec := &recorder{}
	instant := time.Date(2024, time.March, 5, 9, 5, 3, 0, time.UTC)
	d := &Driver{Source: StaticSource(settings.Defaults()), Surface: rec, Now: fixedClock(instant)}

	require.NoError(t, d.Tick())
	require.Equal(t, 1, rec.count())
	frame := rec.last()
	assert.Equal(t, instant, frame.Instant)
	assert.Equal(t, "09:05", frame.Tree.Segments()[len(frame.Tree.Segments())-1].Text)
}

func TestDriver_TickAppliesLocation(t *testing.T) {
	rec := &recorder{}
	instant := time.Date(2024, time.March, 5, 0, 5, 0, 0, time.UTC)
	d := &Driver{Surface: rec, Now: fixedClock(instant), Location: time.FixedZone("JST", 9*3600)}

	require.NoError(t, d.Tick())
	segs := rec.last().Tree.Segments()
	assert.Equal(t, "09:05", segs[len(segs)-1].Text)
}

func TestDriver_TickWithoutSurface(t *testing.T) {
	d := &Driver{}
	assert.ErrorIs(t, d.Tick(), ErrNoSurface)
	assert.ErrorIs(t, d.Start(context.Background()), ErrNoSurface)
	assert.False(t, d.Running())
}

func TestDriver_StartRendersImmediatelyThenTicks(t *testing.T) {
	rec := &recorder{}
	d := &Driver{Surface: rec, Interval: 5 * time.Millisecond}

	require.NoError(t, d.Start(context.Background()))
	assert.Equal(t, 1, rec.count(), "first frame is synchronous")
	require.Eventually(t, func() bool { return rec.count() >= 3 }, time.Second, time.Millisecond)

	d.Stop()
	n := rec.count()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, rec.count())
	d.Stop()
}

func TestDriver_ContextCancelStops(t *testing.T) {
	rec := &recorder{}
	d := &Driver{Surface: rec, Interval: 2 * time.Millisecond}
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, d.Start(ctx))
	require.True(t, d.Running())
	cancel()
	require.Eventually(t, func() bool { return !d.Running() }, time.Second, time.Millisecond)
}

func TestDriver_PicksUpReplacedSettings(t *testing.T) {
	store := state.NewStore()
	rec := &recorder{}
	d := &Driver{Source: store, Surface: rec}

	require.NoError(t, d.Tick())
	assert.Len(t, rec.last().Tree.Sections, 1)

	s := settings.Defaults()
	s.Layout = settings.LayoutVertical
	store.Replace(s)

	require.NoError(t, d.Tick())
	assert.Len(t, rec.last().Tree.Sections, 2)
}

func TestDriver_SurfaceErrorSurfaces(t *testing.T) {
	boom := errors.New("boom")
	d := &Driver{Surface: FuncSurface(func(render.Frame) error { return boom })}
	assert.ErrorIs(t, d.Tick(), boom)
	assert.ErrorIs(t, d.Start(context.Background()), boom)
}

func TestDriver_StopReleasesContextWatcher(t *testing.T) {
	d := &Driver{Surface: &recorder{}, Interval: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	base := runtime.NumGoroutine()
	for range 50 {
		require.NoError(t, d.Start(ctx))
		d.Stop()
	}
	assert.Nil(t, d.stop)
	require.Eventually(t, func() bool { return runtime.NumGoroutine() <= base }, time.Second, time.Millisecond)
}

func TestDriver_RestartIgnoresEarlierContext(t *testing.T) {
	d := &Driver{Surface: &recorder{}, Interval: time.Hour}
	first, cancelFirst := context.WithCancel(context.Background())
	require.NoError(t, d.Start(first))
	require.NoError(t, d.Start(context.Background()))

	cancelFirst()
	time.Sleep(10 * time.Millisecond)
	assert.True(t, d.Running())
	d.Stop()
	assert.False(t, d.Running())
}
