package codec

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/rook-computer/streamclock/internal/settings"
)

// ClockPage is the page a share URL points at.
const ClockPage = "clock.html"

// Encode emits every field as key=value in canonical key order. googleFont is taken
// from the field, or from the hosted font registry when the family is a known entry.
func Encode(s settings.Settings) string {
	var b strings.Builder
	add := func(key, value string) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}

	add(settings.KeyShowYear, strconv.FormatBool(s.ShowYear))
	add(settings.KeyShowDate, strconv.FormatBool(s.ShowDate))
	add(settings.KeyShowDay, strconv.FormatBool(s.ShowDay))
	add(settings.KeyDateFormat, string(s.DateFormat))
	add(settings.KeyDayFormat, string(s.DayFormat))
	add(settings.KeyTimeFormat, string(s.TimeFormat))
	add(settings.KeyLayout, string(s.Layout))
	add(settings.KeySpacingYearDate, strconv.Itoa(s.SpacingYearDate))
	add(settings.KeySpacingDateDay, strconv.Itoa(s.SpacingDateDay))
	add(settings.KeySpacingDayTime, strconv.Itoa(s.SpacingDayTime))
	add(settings.KeySpacingDot, strconv.Itoa(s.SpacingDot))
	add(settings.KeyLineSpacing, strconv.Itoa(s.LineSpacing))
	add(settings.KeyFontFamily, s.FontFamily)
	add(settings.KeyFontColor, s.FontColor)
	add(settings.KeyYearFontSize, strconv.Itoa(s.YearFontSize))
	add(settings.KeyDateFontSize, strconv.Itoa(s.DateFontSize))
	add(settings.KeyDayFontSize, strconv.Itoa(s.DayFontSize))
	add(settings.KeyTimeFontSize, strconv.Itoa(s.TimeFontSize))
	add(settings.KeyTextStroke, strconv.FormatBool(s.TextStroke))
	add(settings.KeyStrokeWidth, strconv.Itoa(s.StrokeWidth))
	add(settings.KeyStrokeColor, s.StrokeColor)
	add(settings.KeyStrokeStyle, string(s.StrokeStyle))
	if sheet := s.Stylesheet(); sheet != "" {
		add(settings.KeyGoogleFont, sheet)
	}

	return b.String()
}

// Decode parses a query string (with or without the leading '?') into Settings.
// Malformed pairs are skipped; every other field still resolves.
func Decode(query string) settings.Settings {
	query = strings.TrimPrefix(query, "?")
	// ParseQuery keeps every well-formed pair even when it reports an error.
	values, _ := url.ParseQuery(query)
	return settings.LoadValues(values)
}

// DecodeURL decodes the query part of a full clock URL.
func DecodeURL(raw string) (settings.Settings, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return settings.Settings{}, err
	}
	return Decode(u.RawQuery), nil
}

// Parse accepts either a full clock URL or a bare query string, with or without
// the leading '?'.
func Parse(raw string) (settings.Settings, error) {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "://") || (strings.Contains(raw, "?") && !strings.HasPrefix(raw, "?")) {
		return DecodeURL(raw)
	}
	return Decode(strings.TrimPrefix(raw, "?")), nil
}

// ShareURL builds <base>/clock.html?<query>.
func ShareURL(base string, s settings.Settings) string {
	return strings.TrimRight(base, "/") + "/" + ClockPage + "?" + Encode(s)
}

// BaseURL derives the share base from the configurator page location: the page
// file name and any trailing slash are removed from the path.
func BaseURL(origin, path string) string {
	path = strings.Replace(path, "index.html", "", 1)
	path = strings.TrimRight(path, "/")
	return strings.TrimRight(origin, "/") + path
}
