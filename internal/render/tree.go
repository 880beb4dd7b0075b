package render

import (
	"time"

	"github.com/rook-computer/streamclock/internal/settings"
)

type SegmentKind string

const (
	KindYear      SegmentKind = "year"
	KindDate      SegmentKind = "date"
	KindDay       SegmentKind = "day"
	KindTime      SegmentKind = "time"
	KindSeparator SegmentKind = "separator"
)

type SectionKind string

const (
	SectionRow  SectionKind = "row"
	SectionDate SectionKind = "date-section"
	SectionTime SectionKind = "time-section"
)

// Segment is one independently styled piece of the clock. Spacing is the trailing
// gap in px before the next segment of the same section.
type Segment struct {
	Kind    SegmentKind `json:"kind"`
	Text    string      `json:"text"`
	Spacing int         `json:"spacing"`
}

type Section struct {
	Kind     SectionKind `json:"kind"`
	Segments []Segment   `json:"segments"`
}

// Tree is the display tree for a single render pass.
type Tree struct {
	Layout   settings.Layout `json:"layout"`
	Sections []Section       `json:"sections"`
}

// Segments flattens the tree in display order.
func (t Tree) Segments() []Segment {
	var out []Segment
	for _, section := range t.Sections {
		out = append(out, section.Segments...)
	}
	return out
}

// Section returns the first section of the given kind.
func (t Tree) Section(kind SectionKind) (Section, bool) {
	for _, section := range t.Sections {
		if section.Kind == kind {
			return section, true
		}
	}
	return Section{}, false
}

// BuildTree lays out the visible segments for instant. Year, date and day follow
// their show flags; time is always present.
func BuildTree(instant time.Time, s settings.Settings) Tree {
	var dateSegments []Segment
	if s.ShowYear {
		year := FormatYear(instant)
		if s.DateFormat == settings.DateJapanese && !s.ShowDate {
			year += Joiner(settings.DateJapanese)
		}
		dateSegments = append(dateSegments, Segment{Kind: KindYear, Text: year})
	}
	if s.ShowYear && s.ShowDate {
		dateSegments = append(dateSegments, Segment{Kind: KindSeparator, Text: Joiner(s.DateFormat)})
	}
	if s.ShowDate {
		dateSegments = append(dateSegments, Segment{Kind: KindDate, Text: FormatDate(instant, s.DateFormat)})
	}
	if s.ShowDay {
		dateSegments = append(dateSegments, Segment{Kind: KindDay, Text: FormatDay(instant, s.DayFormat)})
	}
	timeSegment := Segment{Kind: KindTime, Text: FormatTime(instant, s.TimeFormat)}

	tree := Tree{Layout: s.Layout}
	if s.Layout == settings.LayoutVertical {
		if len(dateSegments) > 0 {
			tree.Sections = append(tree.Sections, Section{Kind: SectionDate, Segments: space(dateSegments, s)})
		}
		tree.Sections = append(tree.Sections, Section{Kind: SectionTime, Segments: space([]Segment{timeSegment}, s)})
		return tree
	}

	row := append(dateSegments, timeSegment)
	tree.Sections = []Section{{Kind: SectionRow, Segments: space(row, s)}}
	return tree
}

// space assigns trailing gaps; the last segment always gets zero.
func space(segments []Segment, s settings.Settings) []Segment {
	for i := range segments {
		if i == len(segments)-1 {
			segments[i].Spacing = 0
			continue
		}
		segments[i].Spacing = gapBefore(segments[i], segments[i+1], s)
	}
	return segments
}

func gapBefore(prev, next Segment, s settings.Settings) int {
	japanese := s.DateFormat == settings.DateJapanese
	switch next.Kind {
	case KindSeparator:
		if japanese {
			return 0
		}
		return s.SpacingDot
	case KindDate:
		if prev.Kind == KindSeparator && !japanese {
			return s.SpacingDot
		}
		return s.SpacingYearDate
	case KindDay:
		return s.SpacingDateDay
	case KindTime:
		return s.SpacingDayTime
	}
	return 0
}
