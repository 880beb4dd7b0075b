package settings

// Settings is the full clock configuration. It is a value type: callers replace it
// wholesale and never mutate one that has been handed to the render engine.
type Settings struct {
	ShowYear bool `json:"showYear"`
	ShowDate bool `json:"showDate"`
	ShowDay  bool `json:"showDay"`

	DateFormat DateFormat `json:"dateFormat"`
	DayFormat  DayFormat  `json:"dayFormat"`
	TimeFormat TimeFormat `json:"timeFormat"`
	Layout     Layout     `json:"layout"`

	SpacingYearDate int `json:"spacingYearDate"`
	SpacingDateDay  int `json:"spacingDateDay"`
	SpacingDayTime  int `json:"spacingDayTime"`
	SpacingDot      int `json:"spacingDot"`
	LineSpacing     int `json:"lineSpacing"`

	FontFamily  string `json:"fontFamily"`
	FontColor   string `json:"fontColor"`
	StrokeColor string `json:"strokeColor"`

	YearFontSize int `json:"yearFontSize"`
	DateFontSize int `json:"dateFontSize"`
	DayFontSize  int `json:"dayFontSize"`
	TimeFontSize int `json:"timeFontSize"`

	TextStroke  bool        `json:"textStroke"`
	StrokeWidth int         `json:"strokeWidth"`
	StrokeStyle StrokeStyle `json:"strokeStyle"`

	GoogleFont string `json:"googleFont"`
}

// Query parameter keys, in canonical encoding order.
const (
	KeyShowYear        = "showYear"
	KeyShowDate        = "showDate"
	KeyShowDay         = "showDay"
	KeyDateFormat      = "dateFormat"
	KeyDayFormat       = "dayFormat"
	KeyTimeFormat      = "timeFormat"
	KeyLayout          = "layout"
	KeySpacingYearDate = "spacingYearDate"
	KeySpacingDateDay  = "spacingDateDay"
	KeySpacingDayTime  = "spacingDayTime"
	KeySpacingDot      = "spacingDot"
	KeyLineSpacing     = "lineSpacing"
	KeyFontFamily      = "fontFamily"
	KeyFontColor       = "fontColor"
	KeyYearFontSize    = "yearFontSize"
	KeyDateFontSize    = "dateFontSize"
	KeyDayFontSize     = "dayFontSize"
	KeyTimeFontSize    = "timeFontSize"
	KeyTextStroke      = "textStroke"
	KeyStrokeWidth     = "strokeWidth"
	KeyStrokeColor     = "strokeColor"
	KeyStrokeStyle     = "strokeStyle"
	KeyGoogleFont      = "googleFont"
)

var keys = []string{
	KeyShowYear, KeyShowDate, KeyShowDay,
	KeyDateFormat, KeyDayFormat, KeyTimeFormat, KeyLayout,
	KeySpacingYearDate, KeySpacingDateDay, KeySpacingDayTime, KeySpacingDot, KeyLineSpacing,
	KeyFontFamily, KeyFontColor,
	KeyYearFontSize, KeyDateFontSize, KeyDayFontSize, KeyTimeFontSize,
	KeyTextStroke, KeyStrokeWidth, KeyStrokeColor, KeyStrokeStyle,
	KeyGoogleFont,
}

// Keys returns every recognized query key in canonical order.
func Keys() []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// IsKey reports whether key is a recognized query parameter.
func IsKey(key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// Defaults returns the canonical default record.
func Defaults() Settings {
	return Settings{
		ShowYear: true,
		ShowDate: true,
		ShowDay:  true,

		DateFormat: DateJapanese,
		DayFormat:  DayShort,
		TimeFormat: TimeColonHM,
		Layout:     LayoutHorizontal,

		SpacingYearDate: 0,
		SpacingDateDay:  10,
		SpacingDayTime:  10,
		SpacingDot:      0,
		LineSpacing:     5,

		FontFamily:  "Arial, sans-serif",
		FontColor:   "#ffffff",
		StrokeColor: "#000000",

		YearFontSize: 24,
		DateFontSize: 24,
		DayFontSize:  24,
		TimeFontSize: 32,

		TextStroke:  false,
		StrokeWidth: 2,
		StrokeStyle: StrokeRing,
	}
}

// StrokeActive reports whether an outline should be synthesized at all.
func (s Settings) StrokeActive() bool {
	return s.TextStroke && s.StrokeWidth > 0
}
