// Package ticker runs a callback on a fixed interval behind an owned handle.
package ticker

import (
	"sync"
	"time"
)

// Handle owns one running ticker. Stop is safe to call more than once and from
// any goroutine; once it returns, fn is not invoked again.
type Handle struct {
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// Start invokes fn with the tick time every interval until the handle is stopped.
// It does not invoke fn immediately.
func Start(fn func(time.Time), interval time.Duration) *Handle {
	if interval <= 0 {
		interval = time.Second
	}
	h := &Handle{stop: make(chan struct{}), done: make(chan struct{})}
	t := time.NewTicker(interval)
	go func() {
		defer close(h.done)
		defer t.Stop()
		for {
			select {
			case <-h.stop:
				return
			case now := <-t.C:
				select {
				case <-h.stop:
					return
				default:
				}
				fn(now)
			}
		}
	}()
	return h
}

// Stop halts the ticker and waits for an in-flight callback to finish.
func (h *Handle) Stop() {
	if h == nil {
		return
	}
	h.stopOnce.Do(func() { close(h.stop) })
	<-h.done
}

// Slot holds at most one live handle.
type Slot struct {
	mu     sync.Mutex
	handle *Handle
}

// Replace disposes of the current handle, if any, before starting a new one, so
// two tickers never run for the same slot.
func (s *Slot) Replace(fn func(time.Time), interval time.Duration) *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handle.Stop()
	s.handle = Start(fn, interval)
	return s.handle
}

func (s *Slot) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handle.Stop()
	s.handle = nil
}

// Active reports whether the slot currently owns a handle.
func (s *Slot) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle != nil
}
