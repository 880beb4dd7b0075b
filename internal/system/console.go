package system

import (
	"fmt"
	"os"
)

const (
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
)

// DefaultTTYs are tried in order: the active VT, then the first console.
var DefaultTTYs = []string{"/dev/tty", "/dev/tty0"}

// Console owns the virtual terminal behind the framebuffer. While the clock is
// drawn the console is put in graphics mode and its cursor hidden, so nothing
// blinks through the overlay.
type Console struct {
	// Paths overrides DefaultTTYs.
	Paths  []string
	Logger logger
}

func (c Console) paths() []string {
	if len(c.Paths) > 0 {
		return c.Paths
	}
	return DefaultTTYs
}

// Acquire switches to graphics mode and hides the cursor. Failures are logged
// and returned, but a half-acquired console is still released by Release.
func (c Console) Acquire() error {
	modeErr := logResult(c.Logger, c.setMode(kdGraphics), "KD_GRAPHICS failed", "KD_GRAPHICS set")
	cursorErr := logResult(c.Logger, c.write(ansiHideCursor), "hide cursor failed", "cursor hidden")
	if modeErr != nil {
		return modeErr
	}
	return cursorErr
}

// Release restores the cursor and text mode.
func (c Console) Release() error {
	cursorErr := logResult(c.Logger, c.write(ansiShowCursor), "show cursor failed", "cursor shown")
	modeErr := logResult(c.Logger, c.setMode(kdText), "KD_TEXT failed", "KD_TEXT set")
	if modeErr != nil {
		return modeErr
	}
	return cursorErr
}

func (c Console) write(seq string) error {
	var lastErr error
	for _, p := range c.paths() {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(seq)
		_ = f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return fmt.Errorf("write VT failed: %w", lastErr)
	}
	return fmt.Errorf("write VT failed: no terminal")
}
