package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"

	"github.com/rook-computer/streamclock/internal/codec"
	"github.com/rook-computer/streamclock/internal/render"
)

type clockPageData struct {
	Stylesheet   string
	ClassName    string
	ContainerCSS template.CSS
	Markup       template.HTML
	StreamURL    string
}

type pages struct {
	fsys  fs.FS
	clock *template.Template
	files http.Handler
}

func newPages(fsys fs.FS) (*pages, error) {
	clock, err := template.ParseFS(fsys, codec.ClockPage)
	if err != nil {
		return nil, fmt.Errorf("parse clock page: %w", err)
	}
	return &pages{fsys: fsys, clock: clock, files: http.FileServer(http.FS(fsys))}, nil
}

// serveClock renders the first frame on the server so the overlay is correct
// before the stream connects.
func (p *pages) serveClock(w http.ResponseWriter, r *http.Request, deps *Deps) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s := codec.Decode(r.URL.RawQuery)
	frame := render.NewFrame(deps.now(), s)
	markup, err := frame.HTML()
	if err != nil {
		deps.log().Errorf("web", "clock markup: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	data := clockPageData{
		Stylesheet:   frame.Styles.Stylesheet,
		ClassName:    frame.Styles.ClassName,
		ContainerCSS: frame.Styles.ContainerCSS(),
		Markup:       markup,
		StreamURL:    "/api/v1/stream?" + codec.Encode(s),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := p.clock.Execute(w, data); err != nil {
		deps.log().Errorf("web", "clock page: %v", err)
	}
}

// serveIndex serves the configurator at "/" and "/index.html" only.
func (p *pages) serveIndex(w http.ResponseWriter, r *http.Request) {
	clean := path.Clean("/" + r.URL.Path)
	if clean != "/" && clean != "/index.html" {
		http.NotFound(w, r)
		return
	}
	http.ServeFileFS(w, r, p.fsys, "index.html")
}

// serveStatic serves scripts and styles under /static/.
func (p *pages) serveStatic() http.Handler {
	return http.StripPrefix("/static", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = path.Clean("/" + r.URL.Path)
		if r.URL.Path == "/"+codec.ClockPage {
			http.NotFound(w, r)
			return
		}
		p.files.ServeHTTP(w, r)
	}))
}
