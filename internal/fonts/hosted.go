package fonts

import (
	"net/url"
	"strings"
)

const googleFontsCSS = "https://fonts.googleapis.com/css2"

// Font is a hosted web font entry: a family the clock page can load by stylesheet.
type Font struct {
	Family     string `json:"family"`
	Label      string `json:"label"`
	Stylesheet string `json:"stylesheet"`
}

var hosted = []Font{
	newGoogleFont("Noto Sans JP", "Noto Sans JP", "400;700"),
	newGoogleFont("M PLUS Rounded 1c", "M PLUS Rounded 1c", "400;700"),
	newGoogleFont("Kosugi Maru", "Kosugi Maru", ""),
	newGoogleFont("Sawarabi Gothic", "Sawarabi Gothic", ""),
	newGoogleFont("DotGothic16", "DotGothic16", ""),
	newGoogleFont("Zen Maru Gothic", "Zen Maru Gothic", "400;700"),
	newGoogleFont("Roboto", "Roboto", "400;700"),
	newGoogleFont("Orbitron", "Orbitron", "400;700"),
}

func newGoogleFont(family, label, weights string) Font {
	query := family
	if weights != "" {
		query += ":wght@" + weights
	}
	q := url.Values{}
	q.Set("family", query)
	q.Set("display", "swap")
	return Font{
		Family:     family,
		Label:      label,
		Stylesheet: googleFontsCSS + "?" + q.Encode(),
	}
}

// Hosted returns the registry in display order.
func Hosted() []Font {
	out := make([]Font, len(hosted))
	copy(out, hosted)
	return out
}

// Lookup matches the first family of a CSS font-family list against the registry.
func Lookup(fontFamily string) (Font, bool) {
	name := PrimaryFamily(fontFamily)
	if name == "" {
		return Font{}, false
	}
	for _, f := range hosted {
		if strings.EqualFold(f.Family, name) {
			return f, true
		}
	}
	return Font{}, false
}

// PrimaryFamily returns the first family of a CSS font-family list, unquoted.
func PrimaryFamily(fontFamily string) string {
	first, _, _ := strings.Cut(fontFamily, ",")
	first = strings.TrimSpace(first)
	first = strings.Trim(first, `"'`)
	return strings.TrimSpace(first)
}

// FamilyList renders a CSS family list with a generic fallback for a hosted family.
func FamilyList(f Font) string {
	return "'" + f.Family + "', sans-serif"
}
