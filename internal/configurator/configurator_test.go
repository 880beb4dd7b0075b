package configurator

import (
	"bytes"
	"encoding/base64"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/streamclock/internal/codec"
	"github.com/rook-computer/streamclock/internal/settings"
)

func TestReadForm_UncheckedBoxesAreFalse(t *testing.T) {
	s := ReadForm(url.Values{})
	assert.False(t, s.ShowYear)
	assert.False(t, s.ShowDate)
	assert.False(t, s.ShowDay)
	assert.False(t, s.TextStroke)
	assert.Equal(t, settings.Defaults().TimeFontSize, s.TimeFontSize)
}

func TestReadForm_CheckedBoxes(t *testing.T) {
	s := ReadForm(url.Values{
		"showYear":   {"true"},
		"showDate":   {"on"},
		"textStroke": {"true"},
		"showDay":    {"false"},
	})
	assert.True(t, s.ShowYear)
	assert.True(t, s.ShowDate)
	assert.True(t, s.TextStroke)
	assert.False(t, s.ShowDay)
}

func TestReadForm_FieldsFallBackIndependently(t *testing.T) {
	s := ReadForm(url.Values{
		"timeFontSize":   {"abc"},
		"dateFontSize":   {"40"},
		"layout":         {"diagonal"},
		"dateFormat":     {"dot"},
		"fontColor":      {"#FF00AA"},
		"strokeColor":    {"black"},
		"spacingDateDay": {""},
	})
	def := settings.Defaults()
	assert.Equal(t, def.TimeFontSize, s.TimeFontSize)
	assert.Equal(t, 40, s.DateFontSize)
	assert.Equal(t, def.Layout, s.Layout)
	assert.Equal(t, settings.DateDot, s.DateFormat)
	assert.Equal(t, "#ff00aa", s.FontColor)
	assert.Equal(t, def.StrokeColor, s.StrokeColor)
	assert.Equal(t, def.SpacingDateDay, s.SpacingDateDay)
}

func TestPreview(t *testing.T) {
	now := time.Date(2024, time.March, 5, 9, 5, 3, 0, time.UTC)
	s := settings.Defaults()
	frame := Preview(now, s)
	assert.Equal(t, now, frame.Instant)
	html, err := frame.HTML()
	require.NoError(t, err)
	assert.Contains(t, string(html), "09:05")
}

func TestNewShare(t *testing.T) {
	s := settings.Defaults()
	s.Layout = settings.LayoutVertical

	share, err := NewShare("https://example.com/tools", s)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/tools/clock.html?"+codec.Encode(s), share.URL)
	assert.Equal(t, codec.Encode(s), share.Query)
	assert.True(t, bytes.HasPrefix(share.QR, []byte("\x89PNG")))
	assert.True(t, strings.HasPrefix(share.QRDataURI(), "data:image/png;base64,"))

	decoded, err := codec.DecodeURL(share.URL)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)

	assert.Empty(t, Share{}.QRDataURI())
}

func TestCopyURL_EmptyIsReported(t *testing.T) {
	_, err := CopyURL("", &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrEmptyURL)
}

func TestCopyURL_Clipboard(t *testing.T) {
	var got string
	restore := writeClipboard
	writeClipboard = func(s string) error { got = s; return nil }
	t.Cleanup(func() { writeClipboard = restore })

	var term bytes.Buffer
	method, err := CopyURL("https://example.com/clock.html", &term)
	if err != nil {
		t.Fatal(err)
	}
	if method == CopyOSC52 {
		t.Skip("no clipboard on this platform")
	}
	assert.Equal(t, CopyClipboard, method)
	assert.Equal(t, "https://example.com/clock.html", got)
	assert.Zero(t, term.Len())
}

func TestCopyURL_FallsBackToOSC52(t *testing.T) {
	restore := writeClipboard
	writeClipboard = func(string) error { return errors.New("no display") }
	t.Cleanup(func() { writeClipboard = restore })

	var term bytes.Buffer
	u := "https://example.com/clock.html?layout=vertical"
	method, err := CopyURL(u, &term)
	require.NoError(t, err)
	assert.Equal(t, CopyOSC52, method)
	assert.Contains(t, term.String(), base64.StdEncoding.EncodeToString([]byte(u)))
	assert.True(t, strings.HasPrefix(term.String(), "\x1b]52;"))

	_, err = CopyURL(u, nil)
	assert.Error(t, err)
}
