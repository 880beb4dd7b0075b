package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rook-computer/streamclock/internal/codec"
	"github.com/rook-computer/streamclock/internal/configurator"
	"github.com/rook-computer/streamclock/internal/render"
	"github.com/rook-computer/streamclock/internal/settings"
)

// ShareFlags control how a resolved URL is delivered.
type ShareFlags struct {
	Base  string `help:"Where the clock page is served" default:"http://localhost"`
	Query bool   `help:"Print only the query string"`
	Copy  bool   `help:"Copy the URL to the clipboard" short:"c"`
	QR    bool   `help:"Print a QR code of the URL" name:"qr"`
}

// URLCmd prints the clock URL for a settings record.
type URLCmd struct {
	SettingsFlags `embed:""`
	ShareFlags    `embed:""`
}

func (c *URLCmd) Run(g *Globals) error {
	s, err := c.Resolve()
	if err != nil {
		return err
	}
	return c.deliver(g, s)
}

func (f ShareFlags) deliver(g *Globals, s settings.Settings) error {
	out := g.out()
	u := codec.ShareURL(f.Base, s)
	if f.Query {
		fmt.Fprintln(out, codec.Encode(s))
	} else {
		fmt.Fprintln(out, u)
	}

	if f.QR {
		text, err := render.GenerateQRCodeText(u)
		if err != nil {
			return fmt.Errorf("qr: %w", err)
		}
		fmt.Fprint(out, text)
	}

	if f.Copy {
		var term io.Writer = os.Stderr
		method, err := configurator.CopyURL(u, term)
		if err != nil {
			return fmt.Errorf("copy: %w", err)
		}
		g.log().Infof("cli", "url copied via %s", method)
		fmt.Fprintln(os.Stderr, "copied ("+string(method)+")")
	}
	return nil
}
