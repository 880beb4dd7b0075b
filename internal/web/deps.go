package web

import (
	"sync"
	"time"

	"github.com/rook-computer/streamclock/internal/assets"
	"github.com/rook-computer/streamclock/internal/render"
	"github.com/rook-computer/streamclock/internal/state"
)

// sysLogger matches app.Logger so callers can pass their logger without adapters.
type sysLogger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

// Deps are the collaborators shared by every handler.
//
// The device and the simulator differ only in what they pass here: the simulator
// swaps Now for a controllable clock.
type Deps struct {
	// Now defaults to time.Now.
	Now func() time.Time
	// Location, when set, is the zone every frame is rendered in.
	Location *time.Location
	// FontTTF is used for /clock.png; defaults to the embedded font.
	FontTTF []byte
	// Display, when set, is the record shown on the local screen and exposed
	// under /api/v1/display.
	Display *state.Store
	// StreamInterval is the SSE frame cadence; defaults to one second.
	StreamInterval time.Duration
	Logger         sysLogger

	rasterOnce sync.Once
	raster     *render.Rasterizer
	rasterErr  error
}

func (d *Deps) now() time.Time {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	t := now()
	if d.Location != nil {
		t = t.In(d.Location)
	}
	return t
}

func (d *Deps) log() sysLogger {
	if d.Logger == nil {
		return noopLogger{}
	}
	return d.Logger
}

func (d *Deps) interval() time.Duration {
	if d.StreamInterval <= 0 {
		return time.Second
	}
	return d.StreamInterval
}

func (d *Deps) rasterizer() (*render.Rasterizer, error) {
	d.rasterOnce.Do(func() {
		ttf := d.FontTTF
		if len(ttf) == 0 {
			ttf = assets.FontTTF
		}
		d.raster, d.rasterErr = render.NewRasterizer(ttf)
	})
	return d.raster, d.rasterErr
}
