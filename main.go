package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/streamclock/internal/app"
	"github.com/rook-computer/streamclock/internal/codec"
	"github.com/rook-computer/streamclock/internal/render"
	"github.com/rook-computer/streamclock/internal/state"
	"github.com/rook-computer/streamclock/internal/system"
	"github.com/rook-computer/streamclock/internal/web"
)

func main() {
	fmt.Println("Streamclock starting")

	defaults, err := web.DefaultServerConfigFromEnv(":80")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}

	// Flags
	listenAddr := flag.String("listen", defaults.ListenAddr, "http listen address; also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", defaults.DevMode, "enable permissive CORS; also configurable via "+web.EnvDevMode)
	staticDir := flag.String("static-dir", "", "serve the configurator UI from this directory instead of the embedded assets")
	debug := flag.Bool("debug", false, "enable debug logging to streamclock-debug.log")
	logDir := flag.String("log-dir", ".", "directory for the debug log")
	fbDevice := flag.String("fb", "/dev/fb0", "framebuffer device for the local display")
	noDisplay := flag.Bool("no-display", false, "serve the web UI only, without drawing on the framebuffer")
	fontPath := flag.String("font", "", "TrueType font for the local display and /clock.png (a CJK font is needed for Japanese formats)")
	initial := flag.String("settings", "", "initial display settings as a clock URL or query string")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via STREAMCLOCK_STDIO_LOG")
	flag.Parse()

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("STREAMCLOCK_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	logger, closer, err := app.NewLogger(app.LogConfig{Debug: *debug, Dir: *logDir})
	if err != nil {
		fmt.Println("debug log open error:", err)
		logger = app.NoopLogger{}
	} else {
		defer closer.Close()
		logger.Infof("main", "debug logging enabled=%v", *debug)
	}

	var fontTTF []byte
	if *fontPath != "" {
		fontTTF, err = os.ReadFile(*fontPath)
		if err != nil {
			fmt.Println("font read error:", err)
			os.Exit(2)
		}
	}

	// Shared display settings
	store := state.NewStore()
	if *initial != "" {
		s, err := codec.Parse(*initial)
		if err != nil {
			fmt.Println("settings error:", err)
			os.Exit(2)
		}
		store.Replace(s)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewHTTPServerFromConfig(web.ServerConfig{
		ListenAddr: *listenAddr,
		DevMode:    *devMode,
		Location:   defaults.Location,
	}, &web.Deps{FontTTF: fontTTF, Display: store, Logger: logger})
	server.StaticDir = *staticDir

	var renderer render.Renderer = &render.NoopRenderer{}
	if !*noDisplay {
		fb := render.NewFBRenderer()
		fb.Device = *fbDevice
		fb.FontTTF = fontTTF
		renderer = fb
	}

	a := app.New(store, renderer, server)
	a.Logger = logger
	a.Debug = *debug
	a.Location = defaults.Location
	if !*noDisplay {
		a.Console = &system.Console{Logger: logger}
		a.Keys = a.DefaultKeys()
	}

	if err := a.Start(ctx); err != nil && err != context.Canceled {
		fmt.Println("app error:", err)
	}
	if err := a.Stop(); err != nil {
		fmt.Println("app stop error:", err)
	}
}
