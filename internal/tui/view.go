package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rook-computer/streamclock/internal/render"
	"github.com/rook-computer/streamclock/internal/settings"
)

// Terminal cells are far coarser than pixels; spacing is scaled down and any
// positive gap keeps at least one cell.
const pxPerCell = 10

func cells(px int) int {
	if px <= 0 {
		return 0
	}
	n := px / pxPerCell
	if n == 0 {
		n = 1
	}
	return n
}

// largestKind is the segment kind with the biggest font size; it is drawn bold.
func largestKind(st render.StyleDirectives) render.SegmentKind {
	var best render.SegmentKind
	biggest := -1
	for _, kind := range []render.SegmentKind{render.KindTime, render.KindDate, render.KindDay, render.KindYear} {
		if size, ok := st.FontSizes[kind]; ok && size > biggest {
			best, biggest = kind, size
		}
	}
	return best
}

// RenderFrame draws frame as styled terminal text.
func RenderFrame(frame render.Frame) string {
	st := frame.Styles
	base := lipgloss.NewStyle().Foreground(lipgloss.Color(st.Color))
	bold := largestKind(st)

	rows := make([]string, 0, len(frame.Tree.Sections))
	for _, section := range frame.Tree.Sections {
		parts := make([]string, 0, len(section.Segments))
		for _, seg := range section.Segments {
			style := base.MarginRight(cells(seg.Spacing))
			if seg.Kind == bold {
				style = style.Bold(true)
			}
			parts = append(parts, style.Render(seg.Text))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Bottom, parts...))
	}

	var out string
	if st.Layout == settings.LayoutVertical {
		gap := strings.Repeat("\n", cells(st.SectionGap))
		for i, row := range rows {
			if i > 0 && gap != "" {
				rows[i] = gap + row
			}
		}
		out = lipgloss.JoinVertical(lipgloss.Center, rows...)
	} else {
		out = strings.Join(rows, "")
	}

	if st.Stroke.Enabled {
		outline := lipgloss.NewStyle().
			Border(strokeBorder(st.Stroke.Style)).
			BorderForeground(lipgloss.Color(st.Stroke.Color)).
			Padding(0, 1)
		out = outline.Render(out)
	}
	return out
}

func strokeBorder(style settings.StrokeStyle) lipgloss.Border {
	if style == settings.StrokeGrid {
		return lipgloss.BlockBorder()
	}
	return lipgloss.RoundedBorder()
}
