// Package tui presents the clock in a terminal.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rook-computer/streamclock/internal/render"
	"github.com/rook-computer/streamclock/internal/settings"
	"github.com/rook-computer/streamclock/internal/state"
)

// FrameMsg delivers a rendered frame from the display driver.
type FrameMsg render.Frame

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the clock view. Settings edits go through the store, so the next
// frame from the driver reflects them.
type Model struct {
	store  *state.Store
	keys   KeyMap
	frame  *render.Frame
	width  int
	height int
	Help   bool
}

func NewModel(store *state.Store) Model {
	return Model{store: store, keys: newKeyMap(), Help: true}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		f := render.Frame(msg)
		m.frame = &f
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleLayout):
			m.edit(func(s *settings.Settings) {
				if s.Layout == settings.LayoutVertical {
					s.Layout = settings.LayoutHorizontal
				} else {
					s.Layout = settings.LayoutVertical
				}
			})
		case key.Matches(msg, m.keys.ToggleStroke):
			m.edit(func(s *settings.Settings) { s.TextStroke = !s.TextStroke })
		}
	}
	return m, nil
}

func (m Model) edit(fn func(s *settings.Settings)) {
	if m.store == nil {
		return
	}
	s := m.store.Settings()
	fn(&s)
	m.store.Replace(s)
}

// View implements tea.Model
func (m Model) View() string {
	if m.frame == nil {
		return ""
	}
	clock := RenderFrame(*m.frame)
	if m.Help {
		help := helpStyle.Render(m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc + " • " +
			m.keys.ToggleLayout.Help().Key + " " + m.keys.ToggleLayout.Help().Desc + " • " +
			m.keys.ToggleStroke.Help().Key + " " + m.keys.ToggleStroke.Help().Desc)
		clock = lipgloss.JoinVertical(lipgloss.Center, clock, "", help)
	}
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, clock)
	}
	return clock
}
