package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

type HTTPServer struct {
	Addr string

	// StaticDir, when set to an existing directory, is served instead of the
	// embedded UI. The API remains available under /api/v1/.
	StaticDir string

	// DevMode enables permissive CORS for a UI served from another origin.
	DevMode bool

	Deps *Deps

	// Register, when set, adds extra routes to the mux before it is wrapped.
	Register func(mux *http.ServeMux)

	mu     sync.Mutex
	srv    *http.Server
	ln     net.Listener
	closed bool
}

func NewHTTPServer(addr string) *HTTPServer {
	return &HTTPServer{Addr: addr, Deps: &Deps{}}
}

// NewHTTPServerFromConfig applies cfg to a new server.
func NewHTTPServerFromConfig(cfg ServerConfig, deps *Deps) *HTTPServer {
	if deps == nil {
		deps = &Deps{}
	}
	if deps.Location == nil {
		deps.Location = cfg.Location
	}
	return &HTTPServer{Addr: cfg.ListenAddr, DevMode: cfg.DevMode, Deps: deps}
}

// Handler builds the full middleware chain around the default mux.
func (s *HTTPServer) Handler() (http.Handler, error) {
	deps := s.Deps
	if deps == nil {
		deps = &Deps{}
		s.Deps = deps
	}
	mux, err := NewDefaultMux(MuxConfig{StaticDir: s.StaticDir, Deps: deps})
	if err != nil {
		return nil, err
	}
	if s.Register != nil {
		s.Register(mux)
	}
	var h http.Handler = mux
	if s.DevMode {
		h = WithDevCORS(h)
	}
	h = WithRequestLog(deps.Logger, h)
	return WithRequestID(h), nil
}

func (s *HTTPServer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("web server already stopped")
	}
	if s.srv != nil {
		return nil
	}

	addr := s.Addr
	if addr == "" {
		addr = ":80"
	}

	handler, err := s.Handler()
	if err != nil {
		return err
	}

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		s.srv = nil
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.ln = ln
	s.Deps.log().Infof("web", "listening on %s", ln.Addr())

	go func() {
		<-ctx.Done()
		_ = s.Stop()
	}()

	srv := s.srv
	logger := s.Deps.log()
	go func() {
		err := srv.Serve(ln)
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return
		}
		logger.Errorf("web", "serve: %v", err)
	}()

	return nil
}

// ListenAddr reports the bound address once started.
func (s *HTTPServer) ListenAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

func (s *HTTPServer) Stop() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	srv := s.srv
	ln := s.ln
	s.srv = nil
	s.ln = nil
	s.mu.Unlock()

	if ln != nil {
		_ = ln.Close()
	}
	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
