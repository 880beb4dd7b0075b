package render

import (
	"bytes"
	"html/template"
	"time"

	"github.com/rook-computer/streamclock/internal/settings"
)

// Frame is one render pass: the tree and its directives for a single instant.
// It is discarded after a surface applies it.
type Frame struct {
	Instant  time.Time
	Settings settings.Settings
	Tree     Tree
	Styles   StyleDirectives
}

// NewFrame runs both pipeline phases for instant.
func NewFrame(instant time.Time, s settings.Settings) Frame {
	tree := BuildTree(instant, s)
	return Frame{Instant: instant, Settings: s, Tree: tree, Styles: Styles(tree, s)}
}

var markupTemplate = template.Must(template.New("clock").Parse(
	`{{range .Sections}}{{if $.Grouped}}<div class="{{.Kind}}">{{end}}` +
		`{{range .Segments}}<span class="{{.Class}}" style="{{.Style}}">{{.Text}}</span>{{end}}` +
		`{{if $.Grouped}}</div>{{end}}{{end}}`))

type markupSegment struct {
	Class string
	Style template.CSS
	Text  string
}

type markupSection struct {
	Kind     SectionKind
	Segments []markupSegment
}

type markupData struct {
	Grouped  bool
	Sections []markupSection
}

// Markup renders tree as container inner HTML. Sections become wrapper elements
// only under the vertical layout.
func Markup(tree Tree, st StyleDirectives) (template.HTML, error) {
	data := markupData{Grouped: tree.Layout == settings.LayoutVertical}
	for _, section := range tree.Sections {
		ms := markupSection{Kind: section.Kind}
		for _, seg := range section.Segments {
			ms.Segments = append(ms.Segments, markupSegment{
				Class: string(seg.Kind) + "-element",
				Style: st.SegmentCSS(seg),
				Text:  seg.Text,
			})
		}
		data.Sections = append(data.Sections, ms)
	}

	var buf bytes.Buffer
	if err := markupTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// HTML renders the frame's markup.
func (f Frame) HTML() (template.HTML, error) {
	return Markup(f.Tree, f.Styles)
}

// ProduceMarkup is the one-call form used by page drivers.
func ProduceMarkup(instant time.Time, s settings.Settings) (template.HTML, error) {
	return NewFrame(instant, s).HTML()
}
