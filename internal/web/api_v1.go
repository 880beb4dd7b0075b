package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rook-computer/streamclock/internal/codec"
	"github.com/rook-computer/streamclock/internal/configurator"
	"github.com/rook-computer/streamclock/internal/fonts"
	"github.com/rook-computer/streamclock/internal/render"
	"github.com/rook-computer/streamclock/internal/settings"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type frameResponse struct {
	Instant      time.Time              `json:"instant"`
	HTML         string                 `json:"html"`
	ClassName    string                 `json:"className"`
	ContainerCSS string                 `json:"containerCss"`
	Stylesheet   string                 `json:"stylesheet,omitempty"`
	Tree         render.Tree            `json:"tree"`
	Styles       render.StyleDirectives `json:"styles"`
}

type shareResponse struct {
	URL   string `json:"url"`
	Query string `json:"query"`
	QR    string `json:"qr,omitempty"`
}

type displayResponse struct {
	Settings settings.Settings `json:"settings"`
	Query    string            `json:"query"`
	Revision uint64            `json:"revision"`
}

// SharePathHeader carries the configurator page path so share URLs resolve
// relative to wherever the page is mounted.
const SharePathHeader = "X-Share-Path"

const maxFormBytes = 64 << 10

func apiV1Router(deps *Deps) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/frame", func(w http.ResponseWriter, r *http.Request) { handleFrame(w, r, deps) })
	mux.HandleFunc("/stream", func(w http.ResponseWriter, r *http.Request) { handleStream(w, r, deps) })
	mux.HandleFunc("/preview", func(w http.ResponseWriter, r *http.Request) { handlePreview(w, r, deps) })
	mux.HandleFunc("/share", func(w http.ResponseWriter, r *http.Request) { handleShare(w, r, deps) })
	mux.HandleFunc("/qr", handleQR)
	mux.HandleFunc("/fonts", handleFonts)
	mux.HandleFunc("/settings", handleSettings)
	mux.HandleFunc("/display", func(w http.ResponseWriter, r *http.Request) { handleDisplay(w, r, deps) })
	return mux
}

func newFrameResponse(frame render.Frame) (frameResponse, error) {
	html, err := frame.HTML()
	if err != nil {
		return frameResponse{}, err
	}
	return frameResponse{
		Instant:      frame.Instant,
		HTML:         string(html),
		ClassName:    frame.Styles.ClassName,
		ContainerCSS: string(frame.Styles.ContainerCSS()),
		Stylesheet:   frame.Styles.Stylesheet,
		Tree:         frame.Tree,
		Styles:       frame.Styles,
	}, nil
}

func handleFrame(w http.ResponseWriter, r *http.Request, deps *Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	s := codec.Decode(r.URL.RawQuery)
	writeFrame(w, render.NewFrame(deps.now(), s))
}

func handlePreview(w http.ResponseWriter, r *http.Request, deps *Deps) {
	if r.Method != http.MethodPost {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_form", err.Error())
		return
	}
	writeFrame(w, configurator.Preview(deps.now(), configurator.ReadForm(r.PostForm)))
}

func writeFrame(w http.ResponseWriter, frame render.Frame) {
	resp, err := newFrameResponse(frame)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, resp)
}

func handleShare(w http.ResponseWriter, r *http.Request, deps *Deps) {
	if r.Method != http.MethodPost {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_form", err.Error())
		return
	}

	share, err := configurator.NewShare(shareBase(r), configurator.ReadForm(r.PostForm))
	if err != nil {
		deps.log().Errorf("web", "share: %v", err)
		writeAPIError(w, http.StatusInternalServerError, "share_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, shareResponse{URL: share.URL, Query: share.Query, QR: share.QRDataURI()})
}

// shareBase reconstructs the configurator page location the browser sees.
func shareBase(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	host := r.Host
	if fwd := r.Header.Get("X-Forwarded-Host"); fwd != "" {
		host = fwd
	}
	path := r.Header.Get(SharePathHeader)
	if !strings.HasPrefix(path, "/") {
		path = "/"
	}
	return codec.BaseURL(scheme+"://"+host, path)
}

func handleQR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	payload := strings.TrimSpace(r.URL.Query().Get("url"))
	if payload == "" {
		writeAPIError(w, http.StatusBadRequest, "missing_url", "url is required")
		return
	}
	png, err := render.GenerateQRCodePNG(payload, 0)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "qr_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func handleFonts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, fonts.Hosted())
}

func handleSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, codec.Decode(r.URL.RawQuery))
}

// handleDisplay exposes the record shown on the local screen. PUT takes a query
// string body and replaces the record wholesale.
func handleDisplay(w http.ResponseWriter, r *http.Request, deps *Deps) {
	if deps.Display == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "no local display")
		return
	}
	switch r.Method {
	case http.MethodGet:
	case http.MethodPut, http.MethodPost:
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		var body bytes.Buffer
		if _, err := body.ReadFrom(r.Body); err != nil {
			writeAPIError(w, http.StatusBadRequest, "invalid_body", err.Error())
			return
		}
		rev := deps.Display.Replace(codec.Decode(strings.TrimSpace(body.String())))
		deps.log().Infof("web", "display settings replaced (rev %d)", rev)
	default:
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	snap := deps.Display.Snapshot()
	writeJSON(w, http.StatusOK, displayResponse{
		Settings: snap.Settings,
		Query:    codec.Encode(snap.Settings),
		Revision: snap.Revision,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
