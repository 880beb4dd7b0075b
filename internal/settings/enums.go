package settings

type DateFormat string

const (
	DateJapanese DateFormat = "japanese"
	DateSlash    DateFormat = "slash"
	DateDot      DateFormat = "dot"
)

var DateFormats = []DateFormat{DateJapanese, DateSlash, DateDot}

func (f DateFormat) Valid() bool { return containsEnum(DateFormats, f) }

type DayFormat string

const (
	DayShort   DayFormat = "short"
	DayMedium  DayFormat = "medium"
	DayLong    DayFormat = "long"
	DayEnShort DayFormat = "en-short"
	DayEnUpper DayFormat = "en-upper"
)

var DayFormats = []DayFormat{DayShort, DayMedium, DayLong, DayEnShort, DayEnUpper}

func (f DayFormat) Valid() bool { return containsEnum(DayFormats, f) }

type TimeFormat string

const (
	TimeJapaneseHM  TimeFormat = "japanese-hm"
	TimeColonHM     TimeFormat = "colon-hm"
	TimeJapaneseHMS TimeFormat = "japanese-hms"
	TimeColonHMS    TimeFormat = "colon-hms"
)

var TimeFormats = []TimeFormat{TimeJapaneseHM, TimeColonHM, TimeJapaneseHMS, TimeColonHMS}

func (f TimeFormat) Valid() bool { return containsEnum(TimeFormats, f) }

// WithSeconds reports whether the format includes a seconds field.
func (f TimeFormat) WithSeconds() bool {
	return f == TimeJapaneseHMS || f == TimeColonHMS
}

type Layout string

const (
	LayoutHorizontal Layout = "horizontal"
	LayoutVertical   Layout = "vertical"
)

var Layouts = []Layout{LayoutHorizontal, LayoutVertical}

func (l Layout) Valid() bool { return containsEnum(Layouts, l) }

// StrokeStyle selects how the outline is approximated from offset copies.
type StrokeStyle string

const (
	StrokeRing StrokeStyle = "ring"
	StrokeGrid StrokeStyle = "grid"
)

var StrokeStyles = []StrokeStyle{StrokeRing, StrokeGrid}

func (s StrokeStyle) Valid() bool { return containsEnum(StrokeStyles, s) }

func containsEnum[T ~string](set []T, v T) bool {
	for _, candidate := range set {
		if candidate == v {
			return true
		}
	}
	return false
}
