package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rook-computer/streamclock/internal/codec"
	"github.com/rook-computer/streamclock/internal/display"
	"github.com/rook-computer/streamclock/internal/render"
)

// handleStream pushes a rendered frame as a server-sent event on every tick.
// Each connection owns its own display driver; it stops with the request.
func handleStream(w http.ResponseWriter, r *http.Request, deps *Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeAPIError(w, http.StatusInternalServerError, "streaming_unsupported", "streaming unsupported")
		return
	}

	s := codec.Decode(r.URL.RawQuery)
	frames := make(chan render.Frame, 1)
	driver := &display.Driver{
		Source:   display.StaticSource(s),
		Surface:  display.FuncSurface(func(f render.Frame) error { offerLatest(frames, f); return nil }),
		Now:      deps.now,
		Interval: deps.interval(),
		Logger:   deps.log(),
	}

	ctx := r.Context()
	if err := driver.Start(ctx); err != nil {
		writeAPIError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}
	defer driver.Stop()

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	var seq uint64
	for {
		select {
		case <-ctx.Done():
			return
		case frame := <-frames:
			seq++
			if err := writeFrameEvent(w, seq, frame); err != nil {
				deps.log().Errorf("web", "stream write: %v", err)
				return
			}
			flusher.Flush()
		}
	}
}

// offerLatest keeps only the newest frame when the client reads slower than the
// ticker produces.
func offerLatest(ch chan render.Frame, f render.Frame) {
	for {
		select {
		case ch <- f:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

func writeFrameEvent(w http.ResponseWriter, seq uint64, frame render.Frame) error {
	resp, err := newFrameResponse(frame)
	if err != nil {
		return err
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "id: %d\nevent: frame\ndata: %s\n\n", seq, data)
	return err
}
