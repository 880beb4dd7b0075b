// Package cli implements the clockctl command line.
package cli

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/rook-computer/streamclock/internal/app"
	"github.com/rook-computer/streamclock/internal/codec"
	"github.com/rook-computer/streamclock/internal/settings"
)

// CLI is the clockctl command tree.
type CLI struct {
	Version kong.VersionFlag `help:"Show version information"`
	Debug   bool             `help:"Enable debug logging to file" short:"d"`
	LogDir  string           `help:"Directory for the debug log" default:"." type:"path"`

	Show      ShowCmd      `cmd:"" help:"Show the clock in the terminal (default)" default:"1"`
	URL       URLCmd       `cmd:"url" help:"Print the clock URL for a set of settings"`
	Configure ConfigureCmd `cmd:"configure" help:"Edit settings interactively and print the clock URL"`
	Decode    DecodeCmd    `cmd:"decode" help:"Print the settings a clock URL resolves to"`
	Render    RenderCmd    `cmd:"render" help:"Render one frame as HTML, PNG or JSON"`
	Push      PushCmd      `cmd:"push" help:"Replace the settings shown on a device's local display"`

	// Internal fields (not flags)
	Globals Globals `kong:"-"`
}

// Globals is bound into every command's Run.
type Globals struct {
	Out    io.Writer
	Logger app.Logger
	closer io.Closer
}

// AfterApply initializes logging after CLI parsing.
func (c *CLI) AfterApply() error {
	if c.Globals.Out == nil {
		c.Globals.Out = os.Stdout
	}
	logger, closer, err := app.NewLogger(app.LogConfig{Debug: c.Debug, Dir: c.LogDir})
	if err != nil {
		return err
	}
	c.Globals.Logger = logger
	c.Globals.closer = closer
	logger.Infof("cli", "clockctl started")
	return nil
}

// Close releases the debug log.
func (c *CLI) Close() error {
	if c.Globals.closer != nil {
		return c.Globals.closer.Close()
	}
	return nil
}

func (g *Globals) log() app.Logger {
	if g.Logger == nil {
		return app.NoopLogger{}
	}
	return g.Logger
}

func (g *Globals) out() io.Writer {
	if g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// SettingsFlags selects a settings record: a clock URL or query to start from,
// then individual key overrides.
type SettingsFlags struct {
	From string            `help:"Start from this clock URL or query string" short:"f"`
	Set  map[string]string `help:"Override a setting, e.g. --set layout=vertical" short:"s"`
}

// Resolve applies From then Set. Unknown keys are an error; bad values fall back
// per field like any decoded URL.
func (f SettingsFlags) Resolve() (settings.Settings, error) {
	base, err := codec.Parse(f.From)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("parse --from: %w", err)
	}
	if len(f.Set) == 0 {
		return base, nil
	}

	values, _ := url.ParseQuery(codec.Encode(base))
	for _, key := range sortedKeys(f.Set) {
		if !settings.IsKey(key) {
			return settings.Settings{}, fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(settings.Keys(), ", "))
		}
		values.Set(key, f.Set[key])
	}
	// a new family should not keep the old family's stylesheet
	if _, ok := f.Set[settings.KeyFontFamily]; ok {
		if _, ok := f.Set[settings.KeyGoogleFont]; !ok {
			values.Del(settings.KeyGoogleFont)
		}
	}
	return settings.LoadValues(values), nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// loadLocation resolves an IANA zone name; empty means the local zone.
func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", name, err)
	}
	return loc, nil
}
