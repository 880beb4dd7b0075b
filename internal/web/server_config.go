package web

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvListenAddr = "STREAMCLOCK_LISTEN"
	EnvDevMode    = "STREAMCLOCK_DEV"
	EnvTimeZone   = "STREAMCLOCK_TZ"
)

// ServerConfig contains settings for running the HTTP server.
//
// The intended defaults differ per binary:
// - device:    :80
// - simulator: :8080
type ServerConfig struct {
	ListenAddr string
	DevMode    bool
	// Location is the zone clocks render in; nil means the host's local zone.
	Location *time.Location
}

func DefaultServerConfigFromEnv(defaultListenAddr string) (ServerConfig, error) {
	listenAddr := os.Getenv(EnvListenAddr)
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	devMode := false
	if raw := os.Getenv(EnvDevMode); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
		devMode = parsed
	}

	var loc *time.Location
	if raw := os.Getenv(EnvTimeZone); raw != "" {
		parsed, err := time.LoadLocation(raw)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("%s must be an IANA zone name (got %q): %w", EnvTimeZone, raw, err)
		}
		loc = parsed
	}

	return ServerConfig{ListenAddr: listenAddr, DevMode: devMode, Location: loc}, nil
}
