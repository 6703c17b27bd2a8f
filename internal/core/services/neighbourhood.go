package services

import (
	"iter"

	"github.com/custodia-labs/gearscan/internal/core/domain"
)

// neighbourhood yields every existing cell within one row and one column of
// the span [start, end] on row, excluding the span's own cells. Rows are
// clipped to the grid and columns to the length of each visited row, so
// ragged grids and edge spans never index out of bounds.
func neighbourhood(g *domain.Grid, row, start, end int) iter.Seq[domain.Coord] {
	return func(yield func(domain.Coord) bool) {
		for r := max(0, row-1); r <= min(g.Rows()-1, row+1); r++ {
			last := g.Width(r) - 1
			for c := max(0, start-1); c <= min(last, end+1); c++ {
				if r == row && c >= start && c <= end {
					continue
				}
				if !yield(domain.Coord{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// touchesSymbol reports whether any neighbour of the token is a symbol cell.
func touchesSymbol(g *domain.Grid, tok domain.NumberToken) bool {
	for c := range neighbourhood(g, tok.Row, tok.Start, tok.End) {
		if kind, ok := g.Kind(c.Row, c.Col); ok && kind == domain.CellSymbol {
			return true
		}
	}
	return false
}

// tokenIndex maps every digit cell to the token that covers it.
type tokenIndex map[domain.Coord]domain.NumberToken

func newTokenIndex(tokens []domain.NumberToken) tokenIndex {
	idx := make(tokenIndex)
	for _, tok := range tokens {
		for col := tok.Start; col <= tok.End; col++ {
			idx[domain.Coord{Row: tok.Row, Col: col}] = tok
		}
	}
	return idx
}

// adjacentTokens returns the distinct tokens around (row, col) in scan
// order. A token reached through several neighbour cells is reported once.
func (idx tokenIndex) adjacentTokens(g *domain.Grid, row, col int) []domain.NumberToken {
	var found []domain.NumberToken
	seen := make(map[domain.TokenID]struct{})
	for c := range neighbourhood(g, row, col, col) {
		tok, ok := idx[c]
		if !ok {
			continue
		}
		if _, dup := seen[tok.ID()]; dup {
			continue
		}
		seen[tok.ID()] = struct{}{}
		found = append(found, tok)
	}
	return found
}
