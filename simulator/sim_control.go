package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rook-computer/streamclock/internal/state"
)

// SimClock is a controllable wall clock. It either follows real time shifted by
// an offset, or stays frozen at a fixed instant.
type SimClock struct {
	mu     sync.RWMutex
	offset time.Duration
	frozen *time.Time
	real   func() time.Time
}

func NewSimClock() *SimClock {
	return &SimClock{real: time.Now}
}

func (c *SimClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.frozen != nil {
		return *c.frozen
	}
	return c.real().Add(c.offset)
}

// Set moves the clock to t. When freeze is false time keeps running from t.
func (c *SimClock) Set(t time.Time, freeze bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if freeze {
		c.frozen = &t
		c.offset = 0
		return
	}
	c.frozen = nil
	c.offset = t.Sub(c.real())
}

// Advance steps the clock forward by d, frozen or not.
func (c *SimClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.frozen != nil {
		t := c.frozen.Add(d)
		c.frozen = &t
		return
	}
	c.offset += d
}

func (c *SimClock) Reset() {
	c.mu.Lock()
	c.frozen = nil
	c.offset = 0
	c.mu.Unlock()
}

func (c *SimClock) Frozen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frozen != nil
}

type simClockState struct {
	Time   string `json:"time"`
	Frozen bool   `json:"frozen"`
}

func (c *SimClock) state() simClockState {
	return simClockState{Time: c.Now().Format(time.RFC3339Nano), Frozen: c.Frozen()}
}

func registerSimEndpoints(mux *http.ServeMux, clock *SimClock, store *state.Store) {
	mux.HandleFunc("/sim/reset", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeSimError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		clock.Reset()
		store.Reset()
		writeSimJSON(w, http.StatusOK, map[string]any{"ok": true, "clock": clock.state()})
	})

	mux.HandleFunc("/sim/clock", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeSimJSON(w, http.StatusOK, clock.state())
			return
		case http.MethodPost:
			var patch struct {
				Time    *string `json:"time"`
				Frozen  *bool   `json:"frozen"`
				Advance *string `json:"advance"`
			}
			if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
				writeSimError(w, http.StatusBadRequest, "invalid json")
				return
			}
			if err := applyClockPatch(clock, patch.Time, patch.Frozen, patch.Advance); err != nil {
				writeSimError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeSimJSON(w, http.StatusOK, clock.state())
			return
		default:
			writeSimError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
	})
}

func applyClockPatch(clock *SimClock, at *string, frozen *bool, advance *string) error {
	freeze := clock.Frozen()
	if frozen != nil {
		freeze = *frozen
	}

	switch {
	case at != nil:
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(*at))
		if err != nil {
			return fmt.Errorf("time must be RFC 3339: %w", err)
		}
		clock.Set(t, freeze)
	case frozen != nil && freeze != clock.Frozen():
		clock.Set(clock.Now(), freeze)
	}

	if advance != nil {
		d, err := time.ParseDuration(strings.TrimSpace(*advance))
		if err != nil {
			return fmt.Errorf("advance must be a duration: %w", err)
		}
		clock.Advance(d)
	}
	return nil
}

func writeSimJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSimError(w http.ResponseWriter, status int, message string) {
	writeSimJSON(w, status, map[string]any{"error": message})
}
