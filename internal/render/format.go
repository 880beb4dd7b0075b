package render

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rook-computer/streamclock/internal/settings"
)

// Weekday tables, indexed 0=Sunday..6=Saturday.
var dayNames = map[settings.DayFormat][7]string{
	settings.DayShort:   {"(日)", "(月)", "(火)", "(水)", "(木)", "(金)", "(土)"},
	settings.DayMedium:  {"日曜", "月曜", "火曜", "水曜", "木曜", "金曜", "土曜"},
	settings.DayLong:    {"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
	settings.DayEnShort: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	settings.DayEnUpper: {"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"},
}

// FormatYear renders the bare year number.
func FormatYear(t time.Time) string {
	return strconv.Itoa(t.Year())
}

// FormatDate renders month and day. Unknown formats render as japanese.
func FormatDate(t time.Time, format settings.DateFormat) string {
	m, d := int(t.Month()), t.Day()
	switch format {
	case settings.DateSlash:
		return fmt.Sprintf("%02d/%02d", m, d)
	case settings.DateDot:
		return fmt.Sprintf("%02d.%02d", m, d)
	default:
		return fmt.Sprintf("%d月%d日", m, d)
	}
}

// FormatDay looks up the weekday name. Unknown formats use the short table.
func FormatDay(t time.Time, format settings.DayFormat) string {
	return DayName(int(t.Weekday()), format)
}

// DayName returns the table entry for weekday index 0..6 (0=Sunday).
func DayName(weekday int, format settings.DayFormat) string {
	table, ok := dayNames[format]
	if !ok {
		table = dayNames[settings.DayShort]
	}
	return table[((weekday%7)+7)%7]
}

// FormatTime renders a 24-hour time. Japanese variants are unpadded, colon variants
// zero-padded. Unknown formats render as colon-hm.
func FormatTime(t time.Time, format settings.TimeFormat) string {
	h, m, s := t.Hour(), t.Minute(), t.Second()
	switch format {
	case settings.TimeJapaneseHM:
		return fmt.Sprintf("%d時%d分", h, m)
	case settings.TimeJapaneseHMS:
		return fmt.Sprintf("%d時%d分%d秒", h, m, s)
	case settings.TimeColonHMS:
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	default:
		return fmt.Sprintf("%02d:%02d", h, m)
	}
}

// Joiner is the text placed between year and date when both are shown.
func Joiner(format settings.DateFormat) string {
	switch format {
	case settings.DateSlash:
		return "/"
	case settings.DateDot:
		return "."
	default:
		return "年"
	}
}
