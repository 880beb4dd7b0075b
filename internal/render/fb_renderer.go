package render

import (
	"context"
	"errors"
	"image"
	"image/draw"
	"sync"
	"sync/atomic"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/streamclock/internal/assets"
)

// FBRenderer renders frames to the Linux framebuffer using an offscreen logical canvas.
type FBRenderer struct {
	Device string
	// FontTTF overrides the embedded font; a CJK font is needed for Japanese formats.
	FontTTF []byte
	Logger  interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
	Debug bool

	mu      sync.Mutex
	fbDev   *fb.Device
	canvas  *image.RGBA
	raster  *Rasterizer
	running atomic.Bool
}

func NewFBRenderer() *FBRenderer { return &FBRenderer{Device: "/dev/fb0"} }

func (r *FBRenderer) Start(ctx context.Context) error {
	ttf := r.FontTTF
	if len(ttf) == 0 {
		ttf = assets.FontTTF
	}
	raster, err := NewRasterizer(ttf)
	if err != nil {
		return err
	}

	dev, err := fb.Open(r.Device)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.fbDev = dev
	r.raster = raster
	r.canvas = image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	r.mu.Unlock()

	if r.Logger != nil {
		bounds := dev.Bounds()
		r.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}
	r.running.Store(true)
	return nil
}

func (r *FBRenderer) Stop() error {
	r.running.Store(false)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fbDev != nil {
		r.fbDev.Close()
		r.fbDev = nil
	}
	return nil
}

// Apply draws frame onto the canvas and blits it to the framebuffer.
func (r *FBRenderer) Apply(frame Frame) error {
	if !r.running.Load() {
		return errors.New("framebuffer not started")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fbDev == nil || r.canvas == nil {
		return nil
	}

	// Clear canvas to background each frame for consistent rendering
	draw.Draw(r.canvas, r.canvas.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
	r.raster.Draw(r.canvas, r.canvas.Bounds(), frame)
	blitToFB(r.fbDev, r.canvas)

	if r.Debug && r.Logger != nil {
		r.Logger.Infof("fb", "redraw done at %s", frame.Instant.Format("15:04:05"))
	}
	return nil
}

// blitToFB scales the logical canvas onto the device with nearest-neighbor sampling.
func blitToFB(dev draw.Image, canvas *image.RGBA) {
	if dev == nil {
		return
	}
	xdraw.NearestNeighbor.Scale(dev, dev.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
}

var _ draw.Image = (*fb.Device)(nil)
