package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rook-computer/streamclock/internal/display"
	"github.com/rook-computer/streamclock/internal/render"
	"github.com/rook-computer/streamclock/internal/state"
)

// Options configures Run.
type Options struct {
	Location *time.Location
	Interval time.Duration
	NoHelp   bool
	Logger   interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

// Run shows the clock fed by store until the user quits or ctx is done.
func Run(ctx context.Context, store *state.Store, opts Options) error {
	m := NewModel(store)
	m.Help = !opts.NoHelp
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	driver := &display.Driver{
		Source:   store,
		Surface:  display.FuncSurface(func(f render.Frame) error { program.Send(FrameMsg(f)); return nil }),
		Location: opts.Location,
		Interval: opts.Interval,
	}
	if opts.Logger != nil {
		driver.Logger = opts.Logger
	}

	driverCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	// the first frame is delivered once the program loop is running
	go func() {
		if err := driver.Start(driverCtx); err != nil && opts.Logger != nil {
			opts.Logger.Errorf("tui", "display: %v", err)
		}
	}()
	defer driver.Stop()

	_, err := program.Run()
	return err
}
