package domain

// Separator is the filler character of a schematic. It is neither a digit
// nor a symbol.
const Separator = '.'

// DefaultGearSymbol is the character that marks a potential gear.
const DefaultGearSymbol = '*'

// CellKind classifies a single grid character.
type CellKind int

const (
	// CellSeparator is the '.' filler.
	CellSeparator CellKind = iota

	// CellDigit is a decimal digit 0-9.
	CellDigit

	// CellSymbol is anything that is neither a digit nor a separator.
	CellSymbol
)

// String returns the string representation.
func (k CellKind) String() string {
	switch k {
	case CellSeparator:
		return "separator"
	case CellDigit:
		return "digit"
	case CellSymbol:
		return "symbol"
	default:
		return unknownDescription
	}
}

// Classify returns the kind of the given character.
func Classify(r rune) CellKind {
	switch {
	case IsDigit(r):
		return CellDigit
	case r == Separator:
		return CellSeparator
	default:
		return CellSymbol
	}
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsSymbol reports whether r is a symbol character.
func IsSymbol(r rune) bool {
	return Classify(r) == CellSymbol
}

// Coord is a (row, column) position in a grid.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid is an immutable schematic. Rows may have different lengths, so every
// lookup is bounds-checked against the row it addresses.
type Grid struct {
	rows [][]rune
}

// NewGrid takes ownership of rows and returns a grid over them.
// Callers must not mutate rows afterwards.
func NewGrid(rows [][]rune) *Grid {
	return &Grid{rows: rows}
}

// GridFromLines builds a grid mapping each line's characters 1:1 to a row.
func GridFromLines(lines []string) *Grid {
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}
	return NewGrid(rows)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}
	return len(g.rows)
}

// Width returns the length of the given row, or 0 if the row does not exist.
func (g *Grid) Width(row int) int {
	if row < 0 || row >= g.Rows() {
		return 0
	}
	return len(g.rows[row])
}

// Contains reports whether (row, col) addresses an existing cell.
func (g *Grid) Contains(row, col int) bool {
	return col >= 0 && col < g.Width(row)
}

// At returns the character at (row, col). The boolean is false when the
// coordinate falls outside the grid.
func (g *Grid) At(row, col int) (rune, bool) {
	if !g.Contains(row, col) {
		return 0, false
	}
	return g.rows[row][col], true
}

// Kind returns the classification of (row, col). The boolean is false when
// the coordinate falls outside the grid.
func (g *Grid) Kind(row, col int) (CellKind, bool) {
	r, ok := g.At(row, col)
	if !ok {
		return CellSeparator, false
	}
	return Classify(r), true
}

// Line returns row as a string.
func (g *Grid) Line(row int) string {
	if row < 0 || row >= g.Rows() {
		return ""
	}
	return string(g.rows[row])
}

// Lines returns every row as a string.
func (g *Grid) Lines() []string {
	lines := make([]string, g.Rows())
	for i := range lines {
		lines[i] = g.Line(i)
	}
	return lines
}

// Cells returns the total number of cells across all rows.
func (g *Grid) Cells() int {
	n := 0
	for row := 0; row < g.Rows(); row++ {
		n += g.Width(row)
	}
	return n
}

// Span returns the characters of row between the inclusive columns start
// and end, clipped to the row.
func (g *Grid) Span(row, start, end int) string {
	width := g.Width(row)
	start = max(start, 0)
	end = min(end, width-1)
	if start > end {
		return ""
	}
	return string(g.rows[row][start : end+1])
}
