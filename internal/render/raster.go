package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/golang/freetype/truetype"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/streamclock/internal/render/layout"
)

// Bounds applied to raster output only; browser surfaces keep the raw values.
const (
	// MaxRasterFontPx caps the glyph size a face is built at.
	MaxRasterFontPx = 512
	// maxCachedFaces bounds the face cache; it is emptied when full.
	maxCachedFaces = 16
)

// Rasterizer draws frames with a TrueType font. Faces are cached per pixel size.
// A font.Face is not safe for concurrent use, so every render holds mu from
// measuring to the last glyph.
type Rasterizer struct {
	font *truetype.Font

	mu    sync.Mutex
	faces map[int]font.Face
}

// NewRasterizer parses ttf. Glyphs the font lacks are drawn as the font's
// missing-glyph box.
func NewRasterizer(ttf []byte) (*Rasterizer, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Rasterizer{font: f, faces: make(map[int]font.Face)}, nil
}

// face must be called with mu held.
func (r *Rasterizer) face(sizePx int) font.Face {
	if f, ok := r.faces[sizePx]; ok {
		return f
	}
	if len(r.faces) >= maxCachedFaces {
		clear(r.faces)
	}
	f := truetype.NewFace(r.font, &truetype.Options{Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull})
	r.faces[sizePx] = f
	return f
}

// rasterFontSize is the size a segment kind is drawn at, or 0 when it takes no room.
func rasterFontSize(st StyleDirectives, kind SegmentKind) int {
	size := st.FontSize(kind)
	if size <= 0 {
		return 0
	}
	return min(size, MaxRasterFontPx)
}

// rasterGap keeps a spacing within one canvas width either way, so sums of gaps
// cannot overflow.
func rasterGap(px int) int {
	return min(max(px, -CanvasWidth), CanvasWidth)
}

// measure lays out boxes for every section. Segments with a size <= 0 take no room.
func (r *Rasterizer) measure(f Frame) [][]layout.Box {
	rows := make([][]layout.Box, len(f.Tree.Sections))
	for i, section := range f.Tree.Sections {
		boxes := make([]layout.Box, len(section.Segments))
		for j, seg := range section.Segments {
			box := layout.Box{Trailing: rasterGap(seg.Spacing)}
			if size := rasterFontSize(f.Styles, seg.Kind); size > 0 {
				face := r.face(size)
				m := face.Metrics()
				box.Width = font.MeasureString(face, seg.Text).Ceil()
				box.Ascent = m.Ascent.Ceil()
				box.Descent = m.Descent.Ceil()
			}
			boxes[j] = box
		}
		rows[i] = boxes
	}
	return rows
}

// Size returns the content size of f plus room for the stroke on every side,
// clamped to the logical canvas.
func (r *Rasterizer) Size(f Frame) image.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size(f)
}

func (r *Rasterizer) size(f Frame) image.Point {
	w, h := layout.BlockSize(r.measure(f), rasterGap(f.Styles.SectionGap))
	pad := 2 * strokeReach(f.Styles.Stroke)
	return image.Pt(min(max(w+pad, 1), CanvasWidth), min(max(h+pad, 1), CanvasHeight))
}

// Draw paints f centered in rect on dst. Stroke copies are painted first in the
// stroke color, then the glyphs in the font color.
func (r *Rasterizer) Draw(dst draw.Image, rect image.Rectangle, f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draw(dst, rect, f)
}

func (r *Rasterizer) draw(dst draw.Image, rect image.Rectangle, f Frame) {
	rows := r.measure(f)
	points := layout.Place(rect, rows, rasterGap(f.Styles.SectionGap))
	fill := image.NewUniform(ParseColor(f.Styles.Color, color.White))
	var outline image.Image
	if f.Styles.Stroke.Enabled {
		outline = image.NewUniform(ParseColor(f.Styles.Stroke.Color, color.Black))
	}

	for i, section := range f.Tree.Sections {
		for j, seg := range section.Segments {
			size := rasterFontSize(f.Styles, seg.Kind)
			if size <= 0 || seg.Text == "" {
				continue
			}
			d := &font.Drawer{Dst: dst, Face: r.face(size)}
			origin := points[i][j]
			if outline != nil {
				d.Src = outline
				for _, o := range f.Styles.Stroke.Offsets {
					d.Dot = fixedPoint(float64(origin.X)+o.X, float64(origin.Y)+o.Y)
					d.DrawString(seg.Text)
				}
			}
			d.Src = fill
			d.Dot = fixedPoint(float64(origin.X), float64(origin.Y))
			d.DrawString(seg.Text)
		}
	}
}

// RenderImage draws f onto a transparent canvas sized to its content, at most
// CanvasWidth x CanvasHeight.
func (r *Rasterizer) RenderImage(f Frame) *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	size := r.size(f)
	canvas := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	r.draw(canvas, canvas.Bounds(), f)
	return canvas
}

// RenderPNG encodes RenderImage(f) as PNG.
func (r *Rasterizer) RenderPNG(w io.Writer, f Frame) error {
	return png.Encode(w, r.RenderImage(f))
}

// ParseColor converts #rrggbb to an opaque color, or returns fallback.
func ParseColor(hex string, fallback color.Color) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	cr, cg, cb := c.RGB255()
	return color.RGBA{R: cr, G: cg, B: cb, A: 0xFF}
}

func strokeReach(s Stroke) int {
	if !s.Enabled {
		return 0
	}
	reach := 0.0
	for _, o := range s.Offsets {
		reach = math.Max(reach, math.Max(math.Abs(o.X), math.Abs(o.Y)))
	}
	return int(math.Ceil(reach))
}

func fixedPoint(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(y * 64))}
}
