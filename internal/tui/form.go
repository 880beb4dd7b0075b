package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/rook-computer/streamclock/internal/fonts"
	"github.com/rook-computer/streamclock/internal/render"
	"github.com/rook-computer/streamclock/internal/settings"
)

// formValues mirrors Settings as the string and bool fields huh binds to.
type formValues struct {
	show       []string
	dateFormat string
	dayFormat  string
	timeFormat string
	layout     string
	fontFamily string
	fontColor  string
	timeSize   string
	dateSize   string
	stroke     bool
	strokeW    string
	strokeClr  string
}

func newFormValues(s settings.Settings) *formValues {
	v := &formValues{
		dateFormat: string(s.DateFormat),
		dayFormat:  string(s.DayFormat),
		timeFormat: string(s.TimeFormat),
		layout:     string(s.Layout),
		fontFamily: s.FontFamily,
		fontColor:  s.FontColor,
		timeSize:   strconv.Itoa(s.TimeFontSize),
		dateSize:   strconv.Itoa(s.DateFontSize),
		stroke:     s.TextStroke,
		strokeW:    strconv.Itoa(s.StrokeWidth),
		strokeClr:  s.StrokeColor,
	}
	if s.ShowYear {
		v.show = append(v.show, settings.KeyShowYear)
	}
	if s.ShowDate {
		v.show = append(v.show, settings.KeyShowDate)
	}
	if s.ShowDay {
		v.show = append(v.show, settings.KeyShowDay)
	}
	return v
}

// apply resolves the edited values over base with the same per-field fallback as
// a decoded URL. Fields the form does not show keep their base value.
func (v *formValues) apply(base settings.Settings) settings.Settings {
	src := map[string]string{
		settings.KeyShowYear:        "false",
		settings.KeyShowDate:        "false",
		settings.KeyShowDay:         "false",
		settings.KeyDateFormat:      v.dateFormat,
		settings.KeyDayFormat:       v.dayFormat,
		settings.KeyTimeFormat:      v.timeFormat,
		settings.KeyLayout:          v.layout,
		settings.KeySpacingYearDate: strconv.Itoa(base.SpacingYearDate),
		settings.KeySpacingDateDay:  strconv.Itoa(base.SpacingDateDay),
		settings.KeySpacingDayTime:  strconv.Itoa(base.SpacingDayTime),
		settings.KeySpacingDot:      strconv.Itoa(base.SpacingDot),
		settings.KeyLineSpacing:     strconv.Itoa(base.LineSpacing),
		settings.KeyFontFamily:      v.fontFamily,
		settings.KeyFontColor:       v.fontColor,
		settings.KeyYearFontSize:    strconv.Itoa(base.YearFontSize),
		settings.KeyDateFontSize:    v.dateSize,
		settings.KeyDayFontSize:     strconv.Itoa(base.DayFontSize),
		settings.KeyTimeFontSize:    v.timeSize,
		settings.KeyTextStroke:      strconv.FormatBool(v.stroke),
		settings.KeyStrokeWidth:     v.strokeW,
		settings.KeyStrokeColor:     v.strokeClr,
		settings.KeyStrokeStyle:     string(base.StrokeStyle),
	}
	// year and weekday sizes track the date size unless they were set apart
	if base.YearFontSize == base.DateFontSize {
		src[settings.KeyYearFontSize] = v.dateSize
	}
	if base.DayFontSize == base.DateFontSize {
		src[settings.KeyDayFontSize] = v.dateSize
	}
	for _, key := range v.show {
		src[key] = "true"
	}
	if base.GoogleFont != "" && base.FontFamily == v.fontFamily {
		src[settings.KeyGoogleFont] = base.GoogleFont
	}
	return settings.Load(src)
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("enter a whole number of pixels")
	}
	return nil
}

func validateColor(s string) error {
	if !settings.IsHexColor(s) {
		return fmt.Errorf("use #rrggbb")
	}
	return nil
}

func enumOptions[T ~string](values []T, label func(T) string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		opts = append(opts, huh.NewOption(label(v), string(v)))
	}
	return opts
}

// exampleDate labels format choices with a concrete rendering.
var exampleDate = time.Date(2024, time.March, 5, 9, 5, 3, 0, time.UTC)

// fontOptions offers the default family plus every hosted font.
func fontOptions(current string) []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("Arial", settings.Defaults().FontFamily)}
	known := current == settings.Defaults().FontFamily
	for _, f := range fonts.Hosted() {
		family := fonts.FamilyList(f)
		opts = append(opts, huh.NewOption(f.Label, family))
		if family == current {
			known = true
		}
	}
	if !known && current != "" {
		opts = append(opts, huh.NewOption(current, current))
	}
	return opts
}

// NewSettingsForm builds an interactive editor seeded from s. Once the form
// completes, Result returns the edited settings.
func NewSettingsForm(s settings.Settings) (*huh.Form, func() settings.Settings) {
	v := newFormValues(s)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Show").
				Options(
					huh.NewOption("Year", settings.KeyShowYear),
					huh.NewOption("Date", settings.KeyShowDate),
					huh.NewOption("Weekday", settings.KeyShowDay),
				).
				Value(&v.show),
			huh.NewSelect[string]().
				Title("Date format").
				Options(enumOptions(settings.DateFormats, func(f settings.DateFormat) string {
					return render.FormatDate(exampleDate, f)
				})...).
				Value(&v.dateFormat),
			huh.NewSelect[string]().
				Title("Weekday format").
				Options(enumOptions(settings.DayFormats, func(f settings.DayFormat) string {
					return render.FormatDay(exampleDate, f)
				})...).
				Value(&v.dayFormat),
			huh.NewSelect[string]().
				Title("Time format").
				Options(enumOptions(settings.TimeFormats, func(f settings.TimeFormat) string {
					return render.FormatTime(exampleDate, f)
				})...).
				Value(&v.timeFormat),
			huh.NewSelect[string]().
				Title("Layout").
				Options(enumOptions(settings.Layouts, func(l settings.Layout) string { return string(l) })...).
				Value(&v.layout),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Font").
				Options(fontOptions(s.FontFamily)...).
				Value(&v.fontFamily),
			huh.NewInput().Title("Text color").Value(&v.fontColor).Validate(validateColor),
			huh.NewInput().Title("Time size (px)").Value(&v.timeSize).Validate(validateInt),
			huh.NewInput().Title("Date size (px)").Value(&v.dateSize).Validate(validateInt),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Outline").Value(&v.stroke),
			huh.NewInput().Title("Outline width (px)").Value(&v.strokeW).Validate(validateInt),
			huh.NewInput().Title("Outline color").Value(&v.strokeClr).Validate(validateColor),
		),
	)

	return form, func() settings.Settings { return v.apply(s) }
}
