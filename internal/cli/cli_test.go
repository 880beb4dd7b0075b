package cli

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/streamclock/internal/codec"
	"github.com/rook-computer/streamclock/internal/settings"
	"github.com/rook-computer/streamclock/internal/state"
	"github.com/rook-computer/streamclock/internal/web"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	var c CLI
	c.Globals.Out = &buf
	parser, err := kong.New(&c, kong.Name("clockctl"), kong.Vars{"version": "test"}, kong.Exit(func(int) {}))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}
	defer c.Close()
	err = ctx.Run(&c.Globals)
	return buf.String(), err
}

func TestResolve(t *testing.T) {
	s, err := SettingsFlags{}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, settings.Defaults(), s)

	s, err = SettingsFlags{
		From: "https://example.com/clock.html?layout=vertical&timeFontSize=50",
		Set:  map[string]string{"timeFontSize": "64", "textStroke": "true"},
	}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, settings.LayoutVertical, s.Layout)
	assert.Equal(t, 64, s.TimeFontSize)
	assert.True(t, s.TextStroke)

	_, err = SettingsFlags{Set: map[string]string{"colour": "#fff"}}.Resolve()
	assert.ErrorContains(t, err, `unknown setting "colour"`)
}

func TestResolve_FamilyOverrideDropsStylesheet(t *testing.T) {
	base := settings.Defaults()
	base.FontFamily = "'Custom', serif"
	base.GoogleFont = "https://example.com/custom.css"

	s, err := SettingsFlags{
		From: codec.Encode(base),
		Set:  map[string]string{"fontFamily": "Arial, sans-serif"},
	}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "Arial, sans-serif", s.FontFamily)
	assert.Empty(t, s.GoogleFont)
}

func TestURLCommand(t *testing.T) {
	out, err := run(t, "url", "--base", "https://obs.example/clock/", "--set", "layout=vertical")
	require.NoError(t, err)

	line := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(line, "https://obs.example/clock/clock.html?"), line)
	s, err := codec.DecodeURL(line)
	require.NoError(t, err)
	assert.Equal(t, settings.LayoutVertical, s.Layout)
}

func TestURLCommand_QueryAndQR(t *testing.T) {
	out, err := run(t, "url", "--query", "--qr")
	require.NoError(t, err)
	lines := strings.SplitN(out, "\n", 2)
	assert.Equal(t, codec.Encode(settings.Defaults()), lines[0])
	assert.NotEmpty(t, strings.TrimSpace(lines[1]))
}

func TestDecodeCommand(t *testing.T) {
	out, err := run(t, "decode", "https://example.com/clock.html?showYear=false&fontColor=%23ABCDEF")
	require.NoError(t, err)

	var s settings.Settings
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.False(t, s.ShowYear)
	assert.Equal(t, "#abcdef", s.FontColor)

	out, err = run(t, "decode", "--canonical", "layout=bogus")
	require.NoError(t, err)
	assert.Equal(t, codec.Encode(settings.Defaults()), strings.TrimSpace(out))
}

func TestRenderCommand_HTML(t *testing.T) {
	out, err := run(t, "render", "--at", "2024-03-05T09:05:03Z", "--tz", "UTC")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `<div class="clock-display horizontal"`), out)
	assert.Contains(t, out, ">09:05</span>")
	assert.Contains(t, out, ">3月5日</span>")
}

func TestRenderCommand_JSONAndPNG(t *testing.T) {
	out, err := run(t, "render", "--format", "json", "--at", "2024-03-05T09:05:03Z", "--tz", "UTC", "--set", "timeFormat=colon-hms")
	require.NoError(t, err)
	var got struct {
		HTML   string `json:"html"`
		Styles struct {
			ClassName string `json:"className"`
		} `json:"styles"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Contains(t, got.HTML, "09:05:03")
	assert.Equal(t, "clock-display horizontal", got.Styles.ClassName)

	path := filepath.Join(t.TempDir(), "clock.png")
	_, err = run(t, "render", "--format", "png", "-o", path, "--set", "dateFormat=slash", "--set", "dayFormat=en-short")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestRenderCommand_BadInstant(t *testing.T) {
	_, err := run(t, "render", "--at", "yesterday")
	assert.ErrorContains(t, err, "RFC 3339")
}

func TestRenderCmd_DefaultsToNow(t *testing.T) {
	fixed := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC)
	c := RenderCmd{TZ: "UTC", now: func() time.Time { return fixed }}
	got, err := c.instant()
	require.NoError(t, err)
	assert.Equal(t, fixed, got)
}

func TestPushCommand(t *testing.T) {
	store := state.NewStore()
	srv := web.NewHTTPServer("")
	srv.Deps = &web.Deps{Display: store}
	handler, err := srv.Handler()
	require.NoError(t, err)
	ts := httptest.NewServer(handler)
	defer ts.Close()

	out, err := run(t, "push", "--device", ts.URL, "--set", "layout=vertical", "--set", "textStroke=true")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "revision 1: "), out)
	assert.Equal(t, settings.LayoutVertical, store.Settings().Layout)
	assert.True(t, store.Settings().TextStroke)
}

func TestPushCommand_DeviceWithoutDisplay(t *testing.T) {
	srv := web.NewHTTPServer("")
	handler, err := srv.Handler()
	require.NoError(t, err)
	ts := httptest.NewServer(handler)
	defer ts.Close()

	_, err = run(t, "push", "--device", ts.URL)
	assert.ErrorContains(t, err, "not_implemented")
}
