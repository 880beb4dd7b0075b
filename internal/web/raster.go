package web

import (
	"bytes"
	"net/http"

	"github.com/rook-computer/streamclock/internal/codec"
	"github.com/rook-computer/streamclock/internal/render"
)

// handleClockPNG renders the configured clock for the current instant as a
// transparent PNG.
func handleClockPNG(w http.ResponseWriter, r *http.Request, deps *Deps) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	raster, err := deps.rasterizer()
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "font_unavailable", err.Error())
		return
	}

	frame := render.NewFrame(deps.now(), codec.Decode(r.URL.RawQuery))
	var buf bytes.Buffer
	if err := raster.RenderPNG(&buf, frame); err != nil {
		writeAPIError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
