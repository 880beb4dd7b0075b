package layout

import "image"

// Box is a measured run of text. Trailing is the gap after it; it may be negative.
type Box struct {
	Width    int
	Ascent   int
	Descent  int
	Trailing int
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Center returns a rectangle of size (widthPx,heightPx) centered in rect.
// The result may extend past rect when the content is larger.
func Center(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	x := rect.Min.X + (rect.Dx()-widthPx)/2
	y := rect.Min.Y + (rect.Dy()-heightPx)/2
	return image.Rect(x, y, x+widthPx, y+heightPx)
}

// RowSize measures a row: total advance including trailing gaps, and the tallest
// ascent/descent.
func RowSize(boxes []Box) (width, ascent, descent int) {
	for _, b := range boxes {
		width += b.Width + b.Trailing
		if b.Ascent > ascent {
			ascent = b.Ascent
		}
		if b.Descent > descent {
			descent = b.Descent
		}
	}
	if width < 0 {
		width = 0
	}
	return width, ascent, descent
}

// BlockSize measures rows stacked with rowGap between them.
func BlockSize(rows [][]Box, rowGap int) (width, height int) {
	for i, row := range rows {
		w, a, d := RowSize(row)
		if w > width {
			width = w
		}
		height += a + d
		if i > 0 {
			height += rowGap
		}
	}
	if height < 0 {
		height = 0
	}
	return width, height
}

// Place centers the block of rows in rect, each row centered horizontally and
// all boxes of a row sharing one baseline. It returns the baseline-left origin of
// every box, row by row.
func Place(rect image.Rectangle, rows [][]Box, rowGap int) [][]image.Point {
	blockW, blockH := BlockSize(rows, rowGap)
	block := Center(rect, blockW, blockH)

	out := make([][]image.Point, len(rows))
	top := block.Min.Y
	for i, row := range rows {
		w, a, d := RowSize(row)
		baseline := top + a
		x := block.Min.X + (blockW-w)/2
		points := make([]image.Point, len(row))
		for j, b := range row {
			points[j] = image.Pt(x, baseline)
			x += b.Width + b.Trailing
		}
		out[i] = points
		top += a + d + rowGap
	}
	return out
}
