package cli

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/rook-computer/streamclock/internal/tui"
)

// ConfigureCmd edits settings in a form and prints the resulting URL.
type ConfigureCmd struct {
	SettingsFlags `embed:""`
	ShareFlags    `embed:""`
}

func (c *ConfigureCmd) Run(g *Globals) error {
	s, err := c.Resolve()
	if err != nil {
		return err
	}

	form, result := tui.NewSettingsForm(s)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			g.log().Infof("cli", "configure aborted")
			return nil
		}
		return err
	}
	return c.deliver(g, result())
}
