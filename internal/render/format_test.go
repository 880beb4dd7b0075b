package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rook-computer/streamclock/internal/settings"
)

func TestFormatDate(t *testing.T) {
	day := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		format settings.DateFormat
		in     time.Time
		want   string
	}{
		{settings.DateJapanese, day, "3月5日"},
		{settings.DateSlash, day, "03/05"},
		{settings.DateDot, day, "03.05"},
		{settings.DateJapanese, late, "12月31日"},
		{settings.DateSlash, late, "12/31"},
		{settings.DateDot, late, "12.31"},
		{settings.DateFormat("bogus"), day, "3月5日"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format)+"/"+tt.in.Format("01-02"), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.in, tt.format))
		})
	}
}

func TestDayName_AllTables(t *testing.T) {
	want := map[settings.DayFormat][]string{
		settings.DayShort:   {"(日)", "(月)", "(火)", "(水)", "(木)", "(金)", "(土)"},
		settings.DayMedium:  {"日曜", "月曜", "火曜", "水曜", "木曜", "金曜", "土曜"},
		settings.DayLong:    {"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
		settings.DayEnShort: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		settings.DayEnUpper: {"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"},
	}

	for format, names := range want {
		for weekday, name := range names {
			assert.Equal(t, name, DayName(weekday, format), "%s/%d", format, weekday)
		}
	}
	assert.Equal(t, "(日)", DayName(0, settings.DayFormat("klingon")))
}

func TestFormatDay_FollowsWeekday(t *testing.T) {
	// 2024-03-05 is a Tuesday
	tue := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "(火)", FormatDay(tue, settings.DayShort))
	assert.Equal(t, "TUE", FormatDay(tue, settings.DayEnUpper))
}

func TestFormatTime(t *testing.T) {
	morning := time.Date(2024, time.March, 5, 9, 5, 3, 0, time.UTC)
	evening := time.Date(2024, time.March, 5, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name   string
		format settings.TimeFormat
		in     time.Time
		want   string
	}{
		{"colon hms padded", settings.TimeColonHMS, morning, "09:05:03"},
		{"colon hm padded", settings.TimeColonHM, morning, "09:05"},
		{"japanese hm unpadded", settings.TimeJapaneseHM, morning, "9時5分"},
		{"japanese hms unpadded", settings.TimeJapaneseHMS, morning, "9時5分3秒"},
		{"colon hms evening", settings.TimeColonHMS, evening, "23:59:59"},
		{"japanese hm evening", settings.TimeJapaneseHM, evening, "23時59分"},
		{"unknown falls back to colon hm", settings.TimeFormat("x"), morning, "09:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTime(tt.in, tt.format))
		})
	}
}

func TestFormatTime_UsesInstantLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	instant := time.Date(2024, time.March, 5, 0, 30, 0, 0, time.UTC).In(tokyo)
	assert.Equal(t, "09:30", FormatTime(instant, settings.TimeColonHM))
}

func TestJoiner(t *testing.T) {
	assert.Equal(t, "年", Joiner(settings.DateJapanese))
	assert.Equal(t, "/", Joiner(settings.DateSlash))
	assert.Equal(t, ".", Joiner(settings.DateDot))
}
