package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/streamclock/internal/app"
	"github.com/rook-computer/streamclock/internal/codec"
	"github.com/rook-computer/streamclock/internal/state"
	"github.com/rook-computer/streamclock/internal/web"
)

func main() {
	defaults, err := web.DefaultServerConfigFromEnv(":8080")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}

	listenAddr := flag.String("listen", defaults.ListenAddr, "http listen address; also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", defaults.DevMode, "enable dev mode; also configurable via "+web.EnvDevMode)
	staticDir := flag.String("static-dir", "", "serve static UI from this directory (optional); when empty, embedded web UI assets are served")
	initial := flag.String("settings", "", "initial display settings as a clock URL or query string")
	verbose := flag.Bool("v", false, "log every request to stderr")
	flag.Parse()

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := state.NewStore()
	if *initial != "" {
		s, err := codec.Parse(*initial)
		if err != nil {
			fmt.Println("settings error:", err)
			os.Exit(2)
		}
		store.Replace(s)
	}

	var logger app.Logger = app.NoopLogger{}
	if *verbose {
		logger = app.NewCharmLogger(os.Stderr, true)
	}

	clock := NewSimClock()
	server := web.NewHTTPServerFromConfig(web.ServerConfig{
		ListenAddr: *listenAddr,
		DevMode:    *devMode,
		Location:   defaults.Location,
	}, &web.Deps{Now: clock.Now, Display: store, Logger: logger})
	server.StaticDir = *staticDir
	server.Register = func(mux *http.ServeMux) { registerSimEndpoints(mux, clock, store) }

	if err := server.Start(processCtx); err != nil {
		fmt.Println("server start error:", err)
		os.Exit(1)
	}

	addr := server.ListenAddr()
	fmt.Println("Streamclock simulator listening on", addr)
	fmt.Println("Configurator: http://" + displayAddr(addr) + "/")
	fmt.Println("API: http://" + displayAddr(addr) + "/api/v1/")

	<-processCtx.Done()
	_ = server.Stop()
}

// displayAddr turns a wildcard listen address into one a browser can open.
func displayAddr(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || host == "::" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}
