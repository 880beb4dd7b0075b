package render

import (
	"math"

	"github.com/rook-computer/streamclock/internal/settings"
)

// DefaultRingStep is the angular increment, in degrees, between ring copies.
const DefaultRingStep = 22.5

// Ceilings on the synthesized outline. Wider requests are drawn at the ceiling.
// A grid of width w costs (2w+1)²-1 shadow copies, so it is held much lower than
// the ring, whose copy count does not depend on width.
const (
	MaxStrokeWidth = 32
	MaxGridWidth   = 8
)

// Offset is the displacement of one stroke copy from the glyph origin, in px.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RingOffsets places copies on a circle of radius width at evenly spaced angles.
// Coordinates are rounded to 0.01px. A step that divides 180 yields a set that is
// symmetric about the origin.
func RingOffsets(width int, stepDegrees float64) []Offset {
	if width <= 0 {
		return nil
	}
	if stepDegrees <= 0 || stepDegrees >= 360 {
		stepDegrees = DefaultRingStep
	}
	r := float64(width)
	var out []Offset
	for k := 0; ; k++ {
		deg := float64(k) * stepDegrees
		if deg >= 360-1e-9 {
			break
		}
		theta := deg * math.Pi / 180
		out = append(out, Offset{X: round2(r * math.Cos(theta)), Y: round2(r * math.Sin(theta))})
	}
	return out
}

// GridOffsets fills the square [-width, width]² except the origin:
// (2w+1)²-1 copies.
func GridOffsets(width int) []Offset {
	if width <= 0 {
		return nil
	}
	out := make([]Offset, 0, (2*width+1)*(2*width+1)-1)
	for i := -width; i <= width; i++ {
		for j := -width; j <= width; j++ {
			if i == 0 && j == 0 {
				continue
			}
			out = append(out, Offset{X: float64(i), Y: float64(j)})
		}
	}
	return out
}

// StrokeOffsets synthesizes the outline for s, or nil when the stroke is off.
func StrokeOffsets(s settings.Settings) []Offset {
	if !s.StrokeActive() {
		return nil
	}
	if s.StrokeStyle == settings.StrokeGrid {
		return GridOffsets(StrokeWidth(s))
	}
	return RingOffsets(StrokeWidth(s), DefaultRingStep)
}

// StrokeWidth is the outline width actually synthesized for s: the requested
// width clamped to the ceiling of its style.
func StrokeWidth(s settings.Settings) int {
	limit := MaxStrokeWidth
	if s.StrokeStyle == settings.StrokeGrid {
		limit = MaxGridWidth
	}
	return min(max(s.StrokeWidth, 0), limit)
}

func round2(v float64) float64 {
	v = math.Round(v*100) / 100
	if v == 0 {
		// normalize -0
		return 0
	}
	return v
}
