// Package tui implements the interactive display panel.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/displayctl/internal/display"
	"github.com/cristianoliveira/displayctl/internal/xrandr"
)

const (
	headerFooterLines     = 4
	defaultViewportWidth  = 80
	defaultViewportHeight = 22
)

// rotationCycle is the order the "r" key steps through.
var rotationCycle = []string{
	display.RotationNormal,
	display.RotationLeft,
	display.RotationInverted,
	display.RotationRight,
}

// Model represents the TUI model for bubbletea.
type Model struct {
	client   xrandr.Client
	displays []*display.Display
	cursor   int
	viewport viewport.Model
	ready    bool

	statusMessage string
	statusIsError bool
}

// applyResultMsg reports the outcome of applying changes to one output.
type applyResultMsg struct {
	name string
	err  error
}

// reloadResultMsg carries a fresh set of displays.
type reloadResultMsg struct {
	displays []*display.Display
	err      error
}

// NewModel creates a new TUI model.
// If client is nil, a new DefaultClient is created.
func NewModel(client xrandr.Client) (*Model, error) {
	if client == nil {
		client = xrandr.NewDefaultClient()
	}
	displays, err := display.Connected(client)
	if err != nil {
		return nil, err
	}
	m := &Model{
		client:   client,
		displays: displays,
		viewport: viewport.New(defaultViewportWidth, defaultViewportHeight),
	}
	m.viewport.SetContent(m.renderRows())
	return m, nil
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerFooterLines
		m.ready = true
		m.viewport.SetContent(m.renderRows())
		return m, nil
	case applyResultMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("apply failed for %s: %v", msg.name, msg.err), true)
		} else {
			m.setStatus("applied "+msg.name, false)
		}
		m.viewport.SetContent(m.renderRows())
		return m, nil
	case reloadResultMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("reload failed: %v", msg.err), true)
			return m, nil
		}
		m.displays = msg.displays
		if m.cursor >= len(m.displays) {
			m.cursor = len(m.displays) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.setStatus("reloaded", false)
		m.viewport.SetContent(m.renderRows())
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(m.displays)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "e":
		if d := m.selected(); d != nil {
			d.SetEnabled(!d.IsEnabled())
			m.setStatus("toggled "+d.Name(), false)
		}
	case "p":
		if d := m.selected(); d != nil {
			d.SetPrimary(true)
			m.setStatus("primary queued for "+d.Name(), false)
		}
	case "r":
		if d := m.selected(); d != nil {
			next := nextRotation(d.Rotation())
			if err := d.SetRotation(next); err != nil {
				m.setStatus(err.Error(), true)
			} else {
				m.setStatus(d.Name()+" rotation "+next, false)
			}
		}
	case "a":
		if d := m.selected(); d != nil {
			if !d.Pending().Any() {
				m.setStatus("no changes pending for "+d.Name(), false)
				break
			}
			return m, applyCmd(d)
		}
	case "R":
		return m, reloadCmd(m.client)
	}
	m.viewport.SetContent(m.renderRows())
	return m, nil
}

// selected returns the display under the cursor, or nil when the list is empty.
func (m *Model) selected() *display.Display {
	if m.cursor < 0 || m.cursor >= len(m.displays) {
		return nil
	}
	return m.displays[m.cursor]
}

func (m *Model) setStatus(msg string, isError bool) {
	m.statusMessage = msg
	m.statusIsError = isError
}

// nextRotation returns the rotation following current in the cycle.
func nextRotation(current string) string {
	for i, rot := range rotationCycle {
		if rot == current {
			return rotationCycle[(i+1)%len(rotationCycle)]
		}
	}
	return display.RotationNormal
}

// applyCmd applies the pending changes of one display off the update loop.
func applyCmd(d *display.Display) tea.Cmd {
	return func() tea.Msg {
		return applyResultMsg{name: d.Name(), err: d.Apply()}
	}
}

// reloadCmd re-queries all connected displays.
func reloadCmd(client xrandr.Client) tea.Cmd {
	return func() tea.Msg {
		displays, err := display.Connected(client)
		return reloadResultMsg{displays: displays, err: err}
	}
}
