package settings

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/rook-computer/streamclock/internal/fonts"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Load resolves every recognized key of src independently: a missing or unparseable
// value keeps that field's default. Unknown keys are ignored.
func Load(src map[string]string) Settings {
	s := Defaults()

	loadBool(src, KeyShowYear, &s.ShowYear)
	loadBool(src, KeyShowDate, &s.ShowDate)
	loadBool(src, KeyShowDay, &s.ShowDay)

	loadEnum(src, KeyDateFormat, &s.DateFormat, DateFormat.Valid)
	loadEnum(src, KeyDayFormat, &s.DayFormat, DayFormat.Valid)
	loadEnum(src, KeyTimeFormat, &s.TimeFormat, TimeFormat.Valid)
	loadEnum(src, KeyLayout, &s.Layout, Layout.Valid)

	loadInt(src, KeySpacingYearDate, &s.SpacingYearDate)
	loadInt(src, KeySpacingDateDay, &s.SpacingDateDay)
	loadInt(src, KeySpacingDayTime, &s.SpacingDayTime)
	loadInt(src, KeySpacingDot, &s.SpacingDot)
	loadInt(src, KeyLineSpacing, &s.LineSpacing)

	if v, ok := src[KeyFontFamily]; ok {
		s.FontFamily = v
	}
	loadColor(src, KeyFontColor, &s.FontColor)
	loadColor(src, KeyStrokeColor, &s.StrokeColor)

	loadInt(src, KeyYearFontSize, &s.YearFontSize)
	loadInt(src, KeyDateFontSize, &s.DateFontSize)
	loadInt(src, KeyDayFontSize, &s.DayFontSize)
	loadInt(src, KeyTimeFontSize, &s.TimeFontSize)

	loadBool(src, KeyTextStroke, &s.TextStroke)
	loadInt(src, KeyStrokeWidth, &s.StrokeWidth)
	loadEnum(src, KeyStrokeStyle, &s.StrokeStyle, StrokeStyle.Valid)

	if v, ok := src[KeyGoogleFont]; ok {
		s.GoogleFont = v
	}

	return s.Canonical()
}

// LoadValues is Load over parsed query values; the first value of each key wins.
func LoadValues(values url.Values) Settings {
	src := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) == 0 || !IsKey(k) {
			continue
		}
		src[k] = vs[0]
	}
	return Load(src)
}

// Canonical drops a googleFont that merely repeats the hosted stylesheet of the
// configured family, and lower-cases colors.
func (s Settings) Canonical() Settings {
	if s.GoogleFont != "" {
		if f, ok := fonts.Lookup(s.FontFamily); ok && f.Stylesheet == s.GoogleFont {
			s.GoogleFont = ""
		}
	}
	s.FontColor = strings.ToLower(s.FontColor)
	s.StrokeColor = strings.ToLower(s.StrokeColor)
	return s
}

// Stylesheet returns the web font stylesheet the clock page should load, if any.
func (s Settings) Stylesheet() string {
	if s.GoogleFont != "" {
		return s.GoogleFont
	}
	if f, ok := fonts.Lookup(s.FontFamily); ok {
		return f.Stylesheet
	}
	return ""
}

func loadBool(src map[string]string, key string, dst *bool) {
	v, ok := src[key]
	if !ok {
		return
	}
	*dst = v == "true"
}

func loadInt(src map[string]string, key string, dst *int) {
	v, ok := src[key]
	if !ok {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return
	}
	*dst = n
}

func loadEnum[T ~string](src map[string]string, key string, dst *T, valid func(T) bool) {
	v, ok := src[key]
	if !ok {
		return
	}
	if candidate := T(v); valid(candidate) {
		*dst = candidate
	}
}

func loadColor(src map[string]string, key string, dst *string) {
	v, ok := src[key]
	if !ok {
		return
	}
	v = strings.TrimSpace(v)
	if hexColor.MatchString(v) {
		*dst = strings.ToLower(v)
	}
}

// IsHexColor reports whether v is a #rrggbb color.
func IsHexColor(v string) bool {
	return hexColor.MatchString(v)
}
