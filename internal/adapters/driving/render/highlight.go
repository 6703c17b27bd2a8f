// Package render draws schematics with part numbers, gears and symbols
// highlighted. It is shared by the static view command and the viewer.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/gearscan/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gearscan/internal/core/domain"
)

// Role is how a single cell is drawn.
type Role int

const (
	// RoleNone is outside the grid.
	RoleNone Role = iota

	// RoleSeparator is the '.' filler.
	RoleSeparator

	// RolePartNumber is a digit of a number adjacent to a symbol.
	RolePartNumber

	// RoleNumber is a digit of a number adjacent to no symbol.
	RoleNumber

	// RoleGear is a gear cell meshing exactly two numbers.
	RoleGear

	// RoleSymbol is any other symbol cell.
	RoleSymbol
)

// String returns the string representation.
func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleSeparator:
		return "separator"
	case RolePartNumber:
		return "part"
	case RoleNumber:
		return "number"
	case RoleGear:
		return "gear"
	case RoleSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Highlighter renders a grid using the roles derived from its analysis.
type Highlighter struct {
	grid   *domain.Grid
	styles *styles.Styles
	parts  map[domain.Coord]bool
	gears  map[domain.Coord]bool
}

// NewHighlighter creates a highlighter for grid. A nil styles value renders
// the grid as plain text.
func NewHighlighter(grid *domain.Grid, analysis *domain.Analysis, s *styles.Styles) *Highlighter {
	h := &Highlighter{
		grid:   grid,
		styles: s,
		parts:  make(map[domain.Coord]bool),
		gears:  make(map[domain.Coord]bool),
	}
	if analysis == nil {
		return h
	}
	for _, tok := range analysis.PartNumbers {
		for col := tok.Start; col <= tok.End; col++ {
			h.parts[domain.Coord{Row: tok.Row, Col: col}] = true
		}
	}
	for _, g := range analysis.Gears {
		h.gears[g.Cell] = true
	}
	return h
}

// Role returns how the cell at (row, col) is drawn.
func (h *Highlighter) Role(row, col int) Role {
	kind, ok := h.grid.Kind(row, col)
	if !ok {
		return RoleNone
	}
	c := domain.Coord{Row: row, Col: col}
	switch kind {
	case domain.CellDigit:
		if h.parts[c] {
			return RolePartNumber
		}
		return RoleNumber
	case domain.CellSymbol:
		if h.gears[c] {
			return RoleGear
		}
		return RoleSymbol
	default:
		return RoleSeparator
	}
}

// Line renders columns [from, to) of row. Columns past the end of the row
// are dropped.
func (h *Highlighter) Line(row, from, to int) string {
	from = max(from, 0)
	to = min(to, h.grid.Width(row))
	if from >= to {
		return ""
	}

	var b strings.Builder
	runStart := from
	runRole := h.Role(row, from)
	for col := from + 1; col <= to; col++ {
		role := RoleNone
		if col < to {
			role = h.Role(row, col)
		}
		if col < to && role == runRole {
			continue
		}
		b.WriteString(h.paint(runRole, h.grid.Span(row, runStart, col-1)))
		runStart, runRole = col, role
	}
	return b.String()
}

// Lines renders every row in full.
func (h *Highlighter) Lines() []string {
	lines := make([]string, h.grid.Rows())
	for row := range lines {
		lines[row] = h.Line(row, 0, h.grid.Width(row))
	}
	return lines
}

// Render renders the whole grid as one newline separated string.
func (h *Highlighter) Render() string {
	return strings.Join(h.Lines(), "\n")
}

// Legend describes the highlight colours.
func (h *Highlighter) Legend() string {
	entries := []struct {
		role  Role
		label string
	}{
		{RolePartNumber, "part number"},
		{RoleNumber, "not a part"},
		{RoleGear, "gear"},
		{RoleSymbol, "symbol"},
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, h.paint(e.role, e.role.sample())+" "+e.label)
	}
	return strings.Join(parts, "  ")
}

// Summary formats both totals of an analysis on one line.
func Summary(a *domain.Analysis) string {
	totals := make([]string, 0, len(domain.AllParts()))
	for _, p := range domain.AllParts() {
		totals = append(totals, fmt.Sprintf("%s: %d", p.Description(), a.Answer(p)))
	}
	return strings.Join(totals, "  ")
}

func (h *Highlighter) paint(role Role, text string) string {
	if h.styles == nil {
		return text
	}
	return h.style(role).Render(text)
}

func (h *Highlighter) style(role Role) lipgloss.Style {
	switch role {
	case RolePartNumber:
		return h.styles.PartNumber
	case RoleNumber:
		return h.styles.Number
	case RoleGear:
		return h.styles.Gear
	case RoleSymbol:
		return h.styles.Symbol
	default:
		return h.styles.Separator
	}
}

func (r Role) sample() string {
	switch r {
	case RolePartNumber, RoleNumber:
		return "123"
	case RoleGear:
		return string(domain.DefaultGearSymbol)
	case RoleSymbol:
		return "#"
	default:
		return string(domain.Separator)
	}
}
