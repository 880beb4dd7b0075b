package render

import "image/color"

// Global render configuration for the local display.
var (
	// Background fills the framebuffer behind the clock; black keys out cleanly in
	// capture software.
	Background = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}

	// Logical canvas size; scaled to framebuffer.
	CanvasWidth  = 1920
	CanvasHeight = 1080
)
