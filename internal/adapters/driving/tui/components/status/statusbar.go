// Package status provides the status bar component for the viewer.
package status

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/gearscan/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/gearscan/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gearscan/internal/core/domain"
)

// State represents the current viewer state for display.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
	StateHelp    State = "help"
)

// Bar displays both answers, the scroll position and keybinding hints.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     State
	message   string
	partSum   int
	gearSum   int
	row, rows int
	width     int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateLoading,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := max(s.width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Scanning...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StateReady:
	}

	totals := fmt.Sprintf("parts %d | gears %d", s.partSum, s.gearSum)
	if s.rows > 0 {
		totals += fmt.Sprintf(" | row %d/%d", s.row+1, s.rows)
	}
	return s.styles.Normal.Render(totals)
}

func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetAnalysis copies both totals from an analysis.
func (s *Bar) SetAnalysis(a *domain.Analysis) {
	if a == nil {
		s.partSum, s.gearSum = 0, 0
		return
	}
	s.partSum = a.PartNumberSum
	s.gearSum = a.GearRatioSum
}

// Totals returns the part number sum and the gear ratio sum.
func (s *Bar) Totals() (parts, gears int) {
	return s.partSum, s.gearSum
}

// SetPosition sets the first visible row and the total row count.
func (s *Bar) SetPosition(row, rows int) {
	s.row, s.rows = row, rows
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to its loading state.
func (s *Bar) Clear() {
	s.state = StateLoading
	s.message = ""
	s.partSum, s.gearSum = 0, 0
	s.row, s.rows = 0, 0
}
