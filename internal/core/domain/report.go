package domain

import (
	"fmt"
	"strings"
)

// Part selects which aggregate query to run over a schematic.
type Part int

// Available parts.
const (
	// PartNumbers sums every number adjacent to at least one symbol.
	PartNumbers Part = 1

	// PartGearRatios sums the ratios of every gear.
	PartGearRatios Part = 2
)

// AllParts lists the parts in execution order.
func AllParts() []Part {
	return []Part{PartNumbers, PartGearRatios}
}

// IsValid returns true if the part is recognised.
func (p Part) IsValid() bool {
	return p == PartNumbers || p == PartGearRatios
}

// String returns the string representation.
func (p Part) String() string {
	switch p {
	case PartNumbers:
		return "parts"
	case PartGearRatios:
		return "gears"
	default:
		return unknownDescription
	}
}

// Description returns the label used when printing an answer.
func (p Part) Description() string {
	switch p {
	case PartNumbers:
		return "sum of part numbers"
	case PartGearRatios:
		return "sum of gear ratios"
	default:
		return unknownDescription
	}
}

// ParsePart accepts "1", "2", "parts" or "gears".
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "parts":
		return PartNumbers, nil
	case "2", "gears":
		return PartGearRatios, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPart, s)
	}
}

// Report is the answer to a single part for a single schematic.
type Report struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Part   Part   `json:"part"`
	Answer int    `json:"answer"`
	Rows   int    `json:"rows"`
	Tokens int    `json:"tokens"`
}

// Analysis is the full breakdown of a schematic: every token, the subset
// that are part numbers, every gear, and both totals.
type Analysis struct {
	Source        string        `json:"source"`
	Rows          int           `json:"rows"`
	Tokens        []NumberToken `json:"tokens"`
	PartNumbers   []NumberToken `json:"part_numbers"`
	Gears         []Gear        `json:"gears"`
	PartNumberSum int           `json:"part_number_sum"`
	GearRatioSum  int           `json:"gear_ratio_sum"`
}

// IsPartNumber reports whether the token with the given ID is a part number.
func (a *Analysis) IsPartNumber(id TokenID) bool {
	for _, t := range a.PartNumbers {
		if t.ID() == id {
			return true
		}
	}
	return false
}

// IsGear reports whether the given cell is a qualifying gear.
func (a *Analysis) IsGear(c Coord) bool {
	for _, g := range a.Gears {
		if g.Cell == c {
			return true
		}
	}
	return false
}

// Answer returns the total for the given part.
func (a *Analysis) Answer(p Part) int {
	switch p {
	case PartNumbers:
		return a.PartNumberSum
	case PartGearRatios:
		return a.GearRatioSum
	default:
		return 0
	}
}
