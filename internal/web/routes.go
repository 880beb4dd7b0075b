package web

import (
	"io/fs"
	"net/http"
	"os"

	"github.com/rook-computer/streamclock/internal/assets"
	"github.com/rook-computer/streamclock/internal/codec"
)

// MuxConfig selects the UI source and the handler dependencies.
type MuxConfig struct {
	// StaticDir, when set to an existing directory, replaces the embedded UI.
	StaticDir string
	Deps      *Deps
}

// RegisterAPIV1 registers the public API routes under /api/v1/.
func RegisterAPIV1(mux *http.ServeMux, deps *Deps) {
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(deps)))
}

// RegisterUI serves the configurator, the clock page, its assets and the PNG
// rendition of the clock.
func RegisterUI(mux *http.ServeMux, fsys fs.FS, deps *Deps) error {
	p, err := newPages(fsys)
	if err != nil {
		return err
	}
	mux.HandleFunc("/"+codec.ClockPage, func(w http.ResponseWriter, r *http.Request) { p.serveClock(w, r, deps) })
	mux.HandleFunc("/clock.png", func(w http.ResponseWriter, r *http.Request) { handleClockPNG(w, r, deps) })
	mux.Handle("/static/", p.serveStatic())
	mux.HandleFunc("/", p.serveIndex)
	return nil
}

// NewDefaultMux builds the standard mux used by both the device and simulator:
// - /api/v1/* for the API
// - / for the web UI
func NewDefaultMux(cfg MuxConfig) (*http.ServeMux, error) {
	deps := cfg.Deps
	if deps == nil {
		deps = &Deps{}
	}
	mux := http.NewServeMux()
	RegisterAPIV1(mux, deps)
	if err := RegisterUI(mux, uiFS(cfg.StaticDir), deps); err != nil {
		return nil, err
	}
	return mux, nil
}

func uiFS(dir string) fs.FS {
	if dir == "" {
		return assets.WebUI
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		return assets.WebUI
	}
	return os.DirFS(dir)
}
