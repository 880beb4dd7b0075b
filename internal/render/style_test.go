package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rook-computer/streamclock/internal/settings"
)

func TestStyles_FontSizesIndependentOfStroke(t *testing.T) {
	s := settings.Defaults()
	s.YearFontSize, s.DateFontSize, s.DayFontSize, s.TimeFontSize = 11, 12, 13, 40

	for _, stroke := range []bool{false, true} {
		s.TextStroke = stroke
		st := Styles(BuildTree(sample, s), s)
		assert.Equal(t, 11, st.FontSize(KindYear))
		assert.Equal(t, 12, st.FontSize(KindSeparator))
		assert.Equal(t, 12, st.FontSize(KindDate))
		assert.Equal(t, 13, st.FontSize(KindDay))
		assert.Equal(t, 40, st.FontSize(KindTime))
	}
}

func TestStyles_OnlyPresentKinds(t *testing.T) {
	s := settings.Defaults()
	s.ShowYear, s.ShowDay = false, false
	st := Styles(BuildTree(sample, s), s)
	assert.NotContains(t, st.FontSizes, KindYear)
	assert.NotContains(t, st.FontSizes, KindDay)
	assert.Contains(t, st.FontSizes, KindDate)
	assert.Contains(t, st.FontSizes, KindTime)
}

func TestStyles_LayoutDirectives(t *testing.T) {
	s := settings.Defaults()
	s.LineSpacing = 17

	st := Styles(BuildTree(sample, s), s)
	assert.Equal(t, "clock-display horizontal", st.ClassName)
	assert.Equal(t, 0, st.SectionGap)

	s.Layout = settings.LayoutVertical
	st = Styles(BuildTree(sample, s), s)
	assert.Equal(t, "clock-display vertical", st.ClassName)
	assert.Equal(t, 17, st.SectionGap)
}

func TestStyles_StrokeDisabled(t *testing.T) {
	s := settings.Defaults()
	s.StrokeWidth = 4
	st := Styles(BuildTree(sample, s), s)

	assert.False(t, st.Stroke.Enabled)
	assert.Equal(t, "none", st.TextShadow())
	css := string(st.ContainerCSS())
	assert.Contains(t, css, "text-shadow: none")
	assert.Contains(t, css, "-webkit-text-stroke: 0")
	assert.Contains(t, css, "-webkit-text-fill-color: inherit")
}

func TestStyles_StrokeZeroWidthIsDisabled(t *testing.T) {
	s := settings.Defaults()
	s.TextStroke = true
	s.StrokeWidth = 0
	st := Styles(BuildTree(sample, s), s)
	assert.False(t, st.Stroke.Enabled)
	assert.Equal(t, "none", st.TextShadow())
}

func TestStyles_RingStroke(t *testing.T) {
	s := settings.Defaults()
	s.TextStroke = true
	s.StrokeColor = "#ff0000"
	s.FontColor = "#00ff00"
	st := Styles(BuildTree(sample, s), s)

	assert.True(t, st.Stroke.Enabled)
	assert.Equal(t, "#00ff00", st.Stroke.FillColor)
	shadow := st.TextShadow()
	assert.Len(t, strings.Split(shadow, ", "), 16)
	assert.True(t, strings.HasPrefix(shadow, "2px 0px 0 #ff0000, 1.85px 0.77px 0 #ff0000"))

	css := string(st.ContainerCSS())
	assert.NotContains(t, css, "-webkit-text-stroke")
	assert.Contains(t, css, "-webkit-text-fill-color: #00ff00")
}

func TestStyles_GridStroke(t *testing.T) {
	s := settings.Defaults()
	s.TextStroke = true
	s.StrokeStyle = settings.StrokeGrid
	s.StrokeWidth = 1
	st := Styles(BuildTree(sample, s), s)

	assert.Len(t, strings.Split(st.TextShadow(), ", "), 8)
	assert.Contains(t, string(st.ContainerCSS()), "-webkit-text-stroke: 1px #000000")
}

func TestStyles_Stylesheet(t *testing.T) {
	s := settings.Defaults()
	assert.Empty(t, Styles(BuildTree(sample, s), s).Stylesheet)

	s.GoogleFont = "https://example.com/font.css"
	assert.Equal(t, "https://example.com/font.css", Styles(BuildTree(sample, s), s).Stylesheet)
}

func TestCSSValue_StripsBreakouts(t *testing.T) {
	assert.Equal(t, "Arial red", cssValue("Arial; }red<"))
	assert.Equal(t, "'Noto Sans JP', sans-serif", cssValue("'Noto Sans JP', sans-serif"))
}

func TestSegmentCSS(t *testing.T) {
	s := settings.Defaults()
	st := Styles(BuildTree(sample, s), s)
	got := st.SegmentCSS(Segment{Kind: KindTime, Text: "09:05", Spacing: 7})
	assert.Equal(t, "font-size: 32px; margin-right: 7px", string(got))
}

func TestStyles_StrokeWidthClamped(t *testing.T) {
	s := settings.Defaults()
	s.TextStroke = true
	s.StrokeStyle = settings.StrokeGrid
	s.StrokeWidth = 3037000500
	st := Styles(BuildTree(sample, s), s)

	assert.Equal(t, MaxGridWidth, st.Stroke.Width)
	assert.Contains(t, string(st.ContainerCSS()), "-webkit-text-stroke: 8px #000000")
}
