// Package display drives a surface with a freshly rendered frame on every tick.
package display

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rook-computer/streamclock/internal/render"
	"github.com/rook-computer/streamclock/internal/settings"
	"github.com/rook-computer/streamclock/internal/ticker"
)

// Source supplies the settings for each pass. It is read on every tick, so a
// replaced record takes effect on the next frame.
type Source interface {
	Settings() settings.Settings
}

// StaticSource always returns the same settings.
type StaticSource settings.Settings

func (s StaticSource) Settings() settings.Settings { return settings.Settings(s) }

// Surface presents one frame. Implementations must not retain the frame after
// Apply returns.
type Surface interface {
	Apply(frame render.Frame) error
}

// FuncSurface adapts a function to Surface.
type FuncSurface func(frame render.Frame) error

func (f FuncSurface) Apply(frame render.Frame) error { return f(frame) }

type logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

var ErrNoSurface = errors.New("display: no surface")

// Driver renders the clock once immediately and then every Interval.
type Driver struct {
	Source   Source
	Surface  Surface
	Now      func() time.Time
	Location *time.Location
	Interval time.Duration
	Logger   logger

	mu   sync.Mutex
	slot ticker.Slot

	watchMu sync.Mutex
	stop    chan struct{} // closed to release the current Start's ctx watcher
}

func (d *Driver) now() time.Time {
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

func (d *Driver) log() logger {
	if d.Logger == nil {
		return noopLogger{}
	}
	return d.Logger
}

// Tick renders one frame for the current instant and applies it.
func (d *Driver) Tick() error {
	if d.Surface == nil {
		return ErrNoSurface
	}
	s := settings.Defaults()
	if d.Source != nil {
		s = d.Source.Settings()
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Surface.Apply(render.NewFrame(d.now(), s))
}

// Start draws the first frame synchronously, then keeps ticking until ctx is
// done or Stop is called. Calling Start again restarts the ticker without ever
// leaving two running.
func (d *Driver) Start(ctx context.Context) error {
	if err := d.Tick(); err != nil {
		return err
	}
	interval := d.Interval
	if interval <= 0 {
		interval = time.Second
	}
	d.slot.Replace(func(time.Time) {
		if err := d.Tick(); err != nil {
			d.log().Errorf("display", "apply frame: %v", err)
		}
	}, interval)

	stop := make(chan struct{})
	d.watchMu.Lock()
	if d.stop != nil {
		close(d.stop)
	}
	d.stop = stop
	d.watchMu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			d.watchMu.Lock()
			owner := d.stop == stop
			if owner {
				d.stop = nil
			}
			d.watchMu.Unlock()
			if owner {
				d.slot.Stop()
			}
		case <-stop:
		}
	}()
	return nil
}

// Stop halts the ticker and releases the context watcher. Safe to call repeatedly.
func (d *Driver) Stop() {
	d.watchMu.Lock()
	if d.stop != nil {
		close(d.stop)
		d.stop = nil
	}
	d.watchMu.Unlock()
	d.slot.Stop()
}

// Running reports whether the driver currently owns a ticker.
func (d *Driver) Running() bool {
	return d.slot.Active()
}
