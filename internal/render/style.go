package render

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/rook-computer/streamclock/internal/settings"
)

// Stroke describes the synthesized outline. Enabled is false when no outline
// directive should be applied at all.
type Stroke struct {
	Enabled   bool                 `json:"enabled"`
	Style     settings.StrokeStyle `json:"style"`
	Width     int                  `json:"width"`
	Color     string               `json:"color"`
	FillColor string               `json:"fillColor"`
	Offsets   []Offset             `json:"offsets,omitempty"`
}

// StyleDirectives is everything a surface needs to present a Tree.
type StyleDirectives struct {
	ClassName  string              `json:"className"`
	Layout     settings.Layout     `json:"layout"`
	FontFamily string              `json:"fontFamily"`
	Color      string              `json:"color"`
	SectionGap int                 `json:"sectionGap"`
	Stylesheet string              `json:"stylesheet,omitempty"`
	FontSizes  map[SegmentKind]int `json:"fontSizes"`
	Stroke     Stroke              `json:"stroke"`
}

// Styles derives presentation directives for tree under s. Font sizes are applied
// per segment kind independently of the stroke state.
func Styles(tree Tree, s settings.Settings) StyleDirectives {
	st := StyleDirectives{
		ClassName:  "clock-display " + string(s.Layout),
		Layout:     s.Layout,
		FontFamily: s.FontFamily,
		Color:      s.FontColor,
		Stylesheet: s.Stylesheet(),
		FontSizes:  make(map[SegmentKind]int),
	}
	sizes := map[SegmentKind]int{
		KindYear:      s.YearFontSize,
		KindSeparator: s.DateFontSize,
		KindDate:      s.DateFontSize,
		KindDay:       s.DayFontSize,
		KindTime:      s.TimeFontSize,
	}
	// only kinds present in the tree get a directive
	for _, seg := range tree.Segments() {
		st.FontSizes[seg.Kind] = sizes[seg.Kind]
	}
	if s.Layout == settings.LayoutVertical {
		st.SectionGap = s.LineSpacing
	}
	if s.StrokeActive() {
		st.Stroke = Stroke{
			Enabled:   true,
			Style:     s.StrokeStyle,
			Width:     StrokeWidth(s),
			Color:     s.StrokeColor,
			FillColor: s.FontColor,
			Offsets:   StrokeOffsets(s),
		}
	}
	return st
}

// FontSize returns the px size for a segment kind.
func (st StyleDirectives) FontSize(kind SegmentKind) int {
	return st.FontSizes[kind]
}

// TextShadow renders the stroke copies as a CSS text-shadow list, or "none".
func (st StyleDirectives) TextShadow() string {
	if !st.Stroke.Enabled || len(st.Stroke.Offsets) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(st.Stroke.Offsets))
	for _, o := range st.Stroke.Offsets {
		parts = append(parts, px(o.X)+" "+px(o.Y)+" 0 "+st.Stroke.Color)
	}
	return strings.Join(parts, ", ")
}

// ContainerCSS renders the declarations applied to the clock container.
func (st StyleDirectives) ContainerCSS() template.CSS {
	decls := []string{
		"font-family: " + cssValue(st.FontFamily),
		"color: " + cssValue(st.Color),
		"gap: " + strconv.Itoa(st.SectionGap) + "px",
		"text-shadow: " + st.TextShadow(),
	}
	switch {
	case st.Stroke.Enabled && st.Stroke.Style == settings.StrokeGrid:
		decls = append(decls,
			"-webkit-text-stroke: "+strconv.Itoa(st.Stroke.Width)+"px "+cssValue(st.Stroke.Color),
			"-webkit-text-fill-color: "+cssValue(st.Stroke.FillColor),
		)
	case st.Stroke.Enabled:
		decls = append(decls, "-webkit-text-fill-color: "+cssValue(st.Stroke.FillColor))
	default:
		decls = append(decls, "-webkit-text-stroke: 0", "-webkit-text-fill-color: inherit")
	}
	return template.CSS(strings.Join(decls, "; "))
}

// SegmentCSS renders font size and trailing spacing for one segment.
func (st StyleDirectives) SegmentCSS(seg Segment) template.CSS {
	return template.CSS("font-size: " + strconv.Itoa(st.FontSize(seg.Kind)) + "px; margin-right: " + strconv.Itoa(seg.Spacing) + "px")
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// cssValue strips characters that could end a declaration or escape the
// style attribute.
func cssValue(v string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '\\', '\n', '\r':
			return -1
		}
		return r
	}, v)
}
