package cli

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/rook-computer/streamclock/internal/state"
	"github.com/rook-computer/streamclock/internal/tui"
)

// ShowCmd runs the terminal clock.
type ShowCmd struct {
	SettingsFlags `embed:""`

	TZ       string        `help:"IANA time zone to display (default local)" name:"tz"`
	Interval time.Duration `help:"Refresh interval" default:"1s"`
	NoHelp   bool          `help:"Hide the key help line"`
}

func (c *ShowCmd) Run(g *Globals) error {
	s, err := c.Resolve()
	if err != nil {
		return err
	}
	loc, err := loadLocation(c.TZ)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g.log().Infof("cli", "show layout=%s tz=%s", s.Layout, loc)
	return tui.Run(ctx, state.NewStoreWith(s), tui.Options{
		Location: loc,
		Interval: c.Interval,
		NoHelp:   c.NoHelp,
		Logger:   g.log(),
	})
}
