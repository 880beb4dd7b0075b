package render

import "context"

// Renderer is a display surface with a lifecycle, such as the framebuffer.
type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	Apply(frame Frame) error
}

// NoopRenderer discards frames. It is used when no local display is attached.
type NoopRenderer struct{}

func (n *NoopRenderer) Start(ctx context.Context) error { return nil }
func (n *NoopRenderer) Stop() error                     { return nil }
func (n *NoopRenderer) Apply(frame Frame) error         { return nil }
