package render

import (
	"bytes"
	"image/color"
	"image/png"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/streamclock/internal/assets"
	"github.com/rook-computer/streamclock/internal/settings"
)

func asciiSettings() settings.Settings {
	s := settings.Defaults()
	s.DateFormat = settings.DateSlash
	s.DayFormat = settings.DayEnShort
	s.TimeFormat = settings.TimeColonHMS
	return s
}

func TestRasterizer_SizeGrowsWithStroke(t *testing.T) {
	r, err := NewRasterizer(assets.FontTTF)
	require.NoError(t, err)

	s := asciiSettings()
	plain := r.Size(NewFrame(sample, s))
	assert.Positive(t, plain.X)
	assert.Positive(t, plain.Y)

	s.TextStroke = true
	stroked := r.Size(NewFrame(sample, s))
	assert.Equal(t, plain.X+4, stroked.X)
	assert.Equal(t, plain.Y+4, stroked.Y)
}

func TestRasterizer_VerticalIsTallerAndNarrower(t *testing.T) {
	r, err := NewRasterizer(assets.FontTTF)
	require.NoError(t, err)

	s := asciiSettings()
	row := r.Size(NewFrame(sample, s))
	s.Layout = settings.LayoutVertical
	stacked := r.Size(NewFrame(sample, s))

	assert.Less(t, stacked.X, row.X)
	assert.Greater(t, stacked.Y, row.Y)
}

func TestRasterizer_DrawsFillColor(t *testing.T) {
	r, err := NewRasterizer(assets.FontTTF)
	require.NoError(t, err)

	s := asciiSettings()
	s.FontColor = "#ff0000"
	img := r.RenderImage(NewFrame(sample, s))

	found := false
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y && !found; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.A == 0xFF && c.R == 0xFF && c.G == 0 && c.B == 0 {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "expected solid red glyph pixels")
}

func TestRasterizer_RenderPNG(t *testing.T) {
	r, err := NewRasterizer(assets.FontTTF)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderPNG(&buf, NewFrame(sample, asciiSettings())))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, r.Size(NewFrame(sample, asciiSettings())), img.Bounds().Size())
}

func TestNewRasterizer_RejectsGarbage(t *testing.T) {
	_, err := NewRasterizer([]byte("not a font"))
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}, ParseColor("#123456", color.Black))
	assert.Equal(t, color.Black, ParseColor("red", color.Black))
}

func TestRasterizer_ConcurrentRenders(t *testing.T) {
	r, err := NewRasterizer(assets.FontTTF)
	require.NoError(t, err)

	s := asciiSettings()
	s.TextStroke = true
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := s
			s.TimeFontSize += i
			for range 20 {
				assert.NoError(t, r.RenderPNG(io.Discard, NewFrame(sample, s)))
			}
		}()
	}
	wg.Wait()
}

func TestRasterizer_HugeSpacingStaysOnCanvas(t *testing.T) {
	r, err := NewRasterizer(assets.FontTTF)
	require.NoError(t, err)

	s := asciiSettings()
	s.SpacingDayTime = 200000
	s.LineSpacing = 200000
	size := r.Size(NewFrame(sample, s))
	assert.LessOrEqual(t, size.X, CanvasWidth)
	assert.LessOrEqual(t, size.Y, CanvasHeight)

	s.Layout = settings.LayoutVertical
	s.SpacingDayTime = -200000
	size = r.Size(NewFrame(sample, s))
	assert.Positive(t, size.X)
	assert.LessOrEqual(t, size.Y, CanvasHeight)
}

func TestRasterizer_HugeFontIsCapped(t *testing.T) {
	r, err := NewRasterizer(assets.FontTTF)
	require.NoError(t, err)

	s := asciiSettings()
	s.TimeFontSize = 40000
	img := r.RenderImage(NewFrame(sample, s))
	assert.LessOrEqual(t, img.Bounds().Dx(), CanvasWidth)
	assert.LessOrEqual(t, img.Bounds().Dy(), CanvasHeight)

	_, ok := r.faces[40000]
	assert.False(t, ok)
	_, ok = r.faces[MaxRasterFontPx]
	assert.True(t, ok)
}

func TestRasterizer_FaceCacheIsBounded(t *testing.T) {
	r, err := NewRasterizer(assets.FontTTF)
	require.NoError(t, err)

	s := asciiSettings()
	for size := 10; size < 10+4*maxCachedFaces; size++ {
		s.TimeFontSize = size
		r.Size(NewFrame(sample, s))
		assert.LessOrEqual(t, len(r.faces), maxCachedFaces)
	}
}
