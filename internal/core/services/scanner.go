package services

import (
	"iter"
	"strconv"

	"github.com/custodia-labs/gearscan/internal/core/domain"
)

// Scanner answers the schematic queries over a single grid. It never
// mutates the grid, so every query can be repeated with the same result.
type Scanner struct {
	grid *domain.Grid
	gear rune
}

// NewScanner creates a scanner over grid. A zero gear selects
// domain.DefaultGearSymbol.
func NewScanner(grid *domain.Grid, gear rune) *Scanner {
	if gear == 0 {
		gear = domain.DefaultGearSymbol
	}
	if grid == nil {
		grid = domain.NewGrid(nil)
	}
	return &Scanner{grid: grid, gear: gear}
}

// Grid returns the scanned grid.
func (s *Scanner) Grid() *domain.Grid {
	return s.grid
}

// RowTokens returns the number tokens of one row, left to right. The
// sequence is lazy and may be ranged over any number of times. A run that
// cannot be parsed is yielded once with a *domain.ParseError and ends the
// sequence.
func (s *Scanner) RowTokens(row int) iter.Seq2[domain.NumberToken, error] {
	return func(yield func(domain.NumberToken, error) bool) {
		width := s.grid.Width(row)
		for col := 0; col < width; col++ {
			if kind, _ := s.grid.Kind(row, col); kind != domain.CellDigit {
				continue
			}
			end := col
			for {
				kind, ok := s.grid.Kind(row, end+1)
				if !ok || kind != domain.CellDigit {
					break
				}
				end++
			}

			tok, err := s.parseToken(row, col, end)
			if !yield(tok, err) || err != nil {
				return
			}
			col = end
		}
	}
}

// Tokens returns every number token in row-major order.
func (s *Scanner) Tokens() iter.Seq2[domain.NumberToken, error] {
	return func(yield func(domain.NumberToken, error) bool) {
		for row := 0; row < s.grid.Rows(); row++ {
			for tok, err := range s.RowTokens(row) {
				if !yield(tok, err) || err != nil {
					return
				}
			}
		}
	}
}

// CollectTokens returns every number token in row-major order.
func (s *Scanner) CollectTokens() ([]domain.NumberToken, error) {
	var tokens []domain.NumberToken
	for tok, err := range s.Tokens() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func (s *Scanner) parseToken(row, start, end int) (domain.NumberToken, error) {
	text := s.grid.Span(row, start, end)
	value, err := strconv.Atoi(text)
	if err != nil {
		return domain.NumberToken{}, &domain.ParseError{Row: row, Start: start, End: end, Text: text, Err: err}
	}
	return domain.NumberToken{Value: value, Row: row, Start: start, End: end}, nil
}

// PartNumbers returns the tokens adjacent to at least one symbol cell.
func (s *Scanner) PartNumbers() ([]domain.NumberToken, error) {
	var parts []domain.NumberToken
	for tok, err := range s.Tokens() {
		if err != nil {
			return nil, err
		}
		if touchesSymbol(s.grid, tok) {
			parts = append(parts, tok)
		}
	}
	return parts, nil
}

// SumAdjacentToSymbol sums the values of every token adjacent to at least
// one symbol cell.
func (s *Scanner) SumAdjacentToSymbol() (int, error) {
	parts, err := s.PartNumbers()
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, tok := range parts {
		sum += tok.Value
	}
	return sum, nil
}

// Gears returns every gear cell adjacent to exactly two distinct tokens,
// in row-major order of the gear cells.
func (s *Scanner) Gears() ([]domain.Gear, error) {
	tokens, err := s.CollectTokens()
	if err != nil {
		return nil, err
	}
	idx := newTokenIndex(tokens)

	var gears []domain.Gear
	for row := 0; row < s.grid.Rows(); row++ {
		for col := 0; col < s.grid.Width(row); col++ {
			if r, _ := s.grid.At(row, col); r != s.gear {
				continue
			}
			adjacent := idx.adjacentTokens(s.grid, row, col)
			if len(adjacent) != 2 {
				continue
			}
			gears = append(gears, domain.Gear{
				Cell:   domain.Coord{Row: row, Col: col},
				Tokens: [2]domain.NumberToken{adjacent[0], adjacent[1]},
			})
		}
	}
	return gears, nil
}

// SumGearRatios sums the products of the two tokens meshed by every gear.
func (s *Scanner) SumGearRatios() (int, error) {
	gears, err := s.Gears()
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range gears {
		sum += g.Ratio()
	}
	return sum, nil
}

// Analyse runs both queries and returns the full breakdown.
func (s *Scanner) Analyse() (*domain.Analysis, error) {
	tokens, err := s.CollectTokens()
	if err != nil {
		return nil, err
	}
	parts, err := s.PartNumbers()
	if err != nil {
		return nil, err
	}
	gears, err := s.Gears()
	if err != nil {
		return nil, err
	}

	a := &domain.Analysis{
		Rows:        s.grid.Rows(),
		Tokens:      tokens,
		PartNumbers: parts,
		Gears:       gears,
	}
	for _, tok := range parts {
		a.PartNumberSum += tok.Value
	}
	for _, g := range gears {
		a.GearRatioSum += g.Ratio()
	}
	return a, nil
}
