package services

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/gearscan/internal/core/domain"
)

func coords(pairs ...int) []domain.Coord {
	out := make([]domain.Coord, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.Coord{Row: pairs[i], Col: pairs[i+1]})
	}
	return out
}

func TestNeighbourhood(t *testing.T) {
	square := domain.GridFromLines([]string{"...", "...", "..."})
	ragged := domain.GridFromLines([]string{".", ".....", ".."})

	tests := []struct {
		name string
		grid *domain.Grid
		span [3]int
		want []domain.Coord
	}{
		{
			name: "centre cell",
			grid: square,
			span: [3]int{1, 1, 1},
			want: coords(0, 0, 0, 1, 0, 2, 1, 0, 1, 2, 2, 0, 2, 1, 2, 2),
		},
		{
			name: "top-left corner",
			grid: square,
			span: [3]int{0, 0, 0},
			want: coords(0, 1, 1, 0, 1, 1),
		},
		{
			name: "bottom-right corner",
			grid: square,
			span: [3]int{2, 2, 2},
			want: coords(1, 1, 1, 2, 2, 1),
		},
		{
			name: "span covering a whole row",
			grid: square,
			span: [3]int{0, 0, 2},
			want: coords(1, 0, 1, 1, 1, 2),
		},
		{
			name: "ragged rows clip columns per row",
			grid: ragged,
			span: [3]int{1, 2, 3},
			want: coords(1, 1, 1, 4, 2, 1),
		},
		{
			name: "empty grid",
			grid: domain.NewGrid(nil),
			span: [3]int{0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(neighbourhood(tt.grid, tt.span[0], tt.span[1], tt.span[2]))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNeighbourhood_StopsWhenConsumerBreaks(t *testing.T) {
	g := domain.GridFromLines([]string{"...", "...", "..."})

	n := 0
	for range neighbourhood(g, 1, 1, 1) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestTokenIndex_AdjacentTokensDedupes(t *testing.T) {
	g := domain.GridFromLines([]string{"123", ".*.", "4.4"})
	tokens := []domain.NumberToken{
		{Value: 123, Row: 0, Start: 0, End: 2},
		{Value: 4, Row: 2, Start: 0, End: 0},
		{Value: 4, Row: 2, Start: 2, End: 2},
	}

	got := newTokenIndex(tokens).adjacentTokens(g, 1, 1)

	assert.Equal(t, tokens, got)
}
