package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// openStdIOLog opens path for appending and marks the start of a run. An empty
// path returns a nil file.
func openStdIOLog(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	_, _ = fmt.Fprintf(f, "--- streamclock %s pid=%d\n", time.Now().Format(time.RFC3339), os.Getpid())
	return f, nil
}
