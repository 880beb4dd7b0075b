package cli

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"github.com/rook-computer/streamclock/internal/assets"
	"github.com/rook-computer/streamclock/internal/render"
)

// RenderCmd renders a single frame, by default for the current instant.
type RenderCmd struct {
	SettingsFlags `embed:""`

	Format string `help:"Output format" enum:"html,png,json" default:"html"`
	Output string `help:"Write to this file instead of stdout" short:"o" type:"path"`
	At     string `help:"Render this RFC 3339 instant instead of now"`
	TZ     string `help:"IANA time zone to render in (default local)" name:"tz"`
	Font   string `help:"TrueType font for PNG output" type:"existingfile"`

	now func() time.Time `kong:"-"`
}

var containerTemplate = template.Must(template.New("container").Parse(
	`<div class="{{.ClassName}}" style="{{.CSS}}">{{.Markup}}</div>` + "\n"))

type frameJSON struct {
	Instant time.Time              `json:"instant"`
	HTML    template.HTML          `json:"html"`
	Tree    render.Tree            `json:"tree"`
	Styles  render.StyleDirectives `json:"styles"`
}

func (c *RenderCmd) instant() (time.Time, error) {
	loc, err := loadLocation(c.TZ)
	if err != nil {
		return time.Time{}, err
	}
	if c.At != "" {
		t, err := time.Parse(time.RFC3339, c.At)
		if err != nil {
			return time.Time{}, fmt.Errorf("--at must be RFC 3339: %w", err)
		}
		return t.In(loc), nil
	}
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	return now().In(loc), nil
}

func (c *RenderCmd) Run(g *Globals) error {
	s, err := c.Resolve()
	if err != nil {
		return err
	}
	at, err := c.instant()
	if err != nil {
		return err
	}
	frame := render.NewFrame(at, s)

	out := g.out()
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	g.log().Infof("cli", "render %s at %s", c.Format, at.Format(time.RFC3339))
	switch c.Format {
	case "png":
		return c.writePNG(out, frame)
	case "json":
		markup, err := frame.HTML()
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(frameJSON{Instant: at, HTML: markup, Tree: frame.Tree, Styles: frame.Styles})
	default:
		markup, err := frame.HTML()
		if err != nil {
			return err
		}
		return containerTemplate.Execute(out, struct {
			ClassName string
			CSS       template.CSS
			Markup    template.HTML
		}{frame.Styles.ClassName, frame.Styles.ContainerCSS(), markup})
	}
}

func (c *RenderCmd) writePNG(w io.Writer, frame render.Frame) error {
	ttf := assets.FontTTF
	if c.Font != "" {
		data, err := os.ReadFile(c.Font)
		if err != nil {
			return err
		}
		ttf = data
	}
	r, err := render.NewRasterizer(ttf)
	if err != nil {
		return err
	}
	return r.RenderPNG(w, frame)
}
