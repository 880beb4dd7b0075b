package fonts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		family string
		want   string
		found  bool
	}{
		{"bare name", "Roboto", "Roboto", true},
		{"quoted list", "'Noto Sans JP', sans-serif", "Noto Sans JP", true},
		{"double quoted", `"DotGothic16"`, "DotGothic16", true},
		{"case insensitive", "orbitron, monospace", "Orbitron", true},
		{"system font", "Arial, sans-serif", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Lookup(tt.family)
			require.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, f.Family)
		})
	}
}

func TestHosted_StylesheetURLs(t *testing.T) {
	for _, f := range Hosted() {
		assert.True(t, strings.HasPrefix(f.Stylesheet, "https://fonts.googleapis.com/css2?"), f.Family)
		assert.Contains(t, f.Stylesheet, "display=swap")
	}
}

func TestFamilyList(t *testing.T) {
	f, ok := Lookup("Kosugi Maru")
	require.True(t, ok)
	assert.Equal(t, "'Kosugi Maru', sans-serif", FamilyList(f))
	assert.Equal(t, "Kosugi Maru", PrimaryFamily(FamilyList(f)))
}
