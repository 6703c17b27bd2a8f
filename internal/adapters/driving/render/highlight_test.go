package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gearscan/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gearscan/internal/core/domain"
	"github.com/custodia-labs/gearscan/internal/core/services"
)

var classicSchematic = []string{
	"467..114..",
	"...*......",
	"..35..633.",
	"......#...",
	"617*......",
	".....+.58.",
	"..592.....",
	"......755.",
	"...$.*....",
	".664.598..",
}

func analyse(t *testing.T, lines []string) (*domain.Grid, *domain.Analysis) {
	t.Helper()
	grid := domain.GridFromLines(lines)
	analysis, err := services.NewScanner(grid, domain.DefaultGearSymbol).Analyse()
	require.NoError(t, err)
	return grid, analysis
}

func TestHighlighter_Role(t *testing.T) {
	grid, analysis := analyse(t, classicSchematic)
	h := NewHighlighter(grid, analysis, nil)

	tests := []struct {
		name     string
		row, col int
		want     Role
	}{
		{"part number digit", 0, 0, RolePartNumber},
		{"last digit of part number", 0, 2, RolePartNumber},
		{"number touching nothing", 0, 5, RoleNumber},
		{"separator", 0, 3, RoleSeparator},
		{"gear with two numbers", 1, 3, RoleGear},
		{"star with one number", 4, 3, RoleSymbol},
		{"plain symbol", 3, 6, RoleSymbol},
		{"isolated 58", 5, 7, RoleNumber},
		{"outside row", 0, 10, RoleNone},
		{"outside grid", 10, 0, RoleNone},
		{"negative column", 0, -1, RoleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Role(tt.row, tt.col))
		})
	}
}

func TestHighlighter_PlainRenderMatchesInput(t *testing.T) {
	grid, analysis := analyse(t, classicSchematic)
	h := NewHighlighter(grid, analysis, nil)

	assert.Equal(t, classicSchematic, h.Lines())
	assert.Equal(t, strings.Join(classicSchematic, "\n"), h.Render())
}

func TestHighlighter_Line_Window(t *testing.T) {
	grid, analysis := analyse(t, classicSchematic)
	h := NewHighlighter(grid, analysis, nil)

	assert.Equal(t, "7..11", h.Line(0, 2, 7))
	assert.Equal(t, "..", h.Line(0, 8, 20))
	assert.Equal(t, "467", h.Line(0, -3, 3))
	assert.Empty(t, h.Line(0, 5, 5))
	assert.Empty(t, h.Line(0, 12, 20))
	assert.Empty(t, h.Line(42, 0, 10))
}

func TestHighlighter_RaggedRows(t *testing.T) {
	grid, analysis := analyse(t, []string{"1*", "", "22.#"})
	h := NewHighlighter(grid, analysis, nil)

	assert.Equal(t, []string{"1*", "", "22.#"}, h.Lines())
	assert.Equal(t, RolePartNumber, h.Role(0, 0))
	assert.Equal(t, RoleNumber, h.Role(2, 0))
	assert.Equal(t, RoleNone, h.Role(1, 0))
}

func TestHighlighter_NilAnalysis(t *testing.T) {
	grid := domain.GridFromLines([]string{"12*"})
	h := NewHighlighter(grid, nil, nil)

	assert.Equal(t, RoleNumber, h.Role(0, 0))
	assert.Equal(t, RoleSymbol, h.Role(0, 2))
}

func TestHighlighter_StyledKeepsText(t *testing.T) {
	grid, analysis := analyse(t, classicSchematic)
	h := NewHighlighter(grid, analysis, styles.DefaultStyles())

	line := h.Line(0, 0, 10)

	assert.Contains(t, line, "467")
	assert.Contains(t, line, "114")
}

func TestHighlighter_Legend(t *testing.T) {
	grid, analysis := analyse(t, classicSchematic)
	h := NewHighlighter(grid, analysis, nil)

	legend := h.Legend()

	assert.Equal(t, "123 part number  123 not a part  * gear  # symbol", legend)
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "part", RolePartNumber.String())
	assert.Equal(t, "gear", RoleGear.String())
	assert.Equal(t, "unknown", Role(99).String())
}

func TestSummary(t *testing.T) {
	_, analysis := analyse(t, classicSchematic)

	assert.Equal(t, "sum of part numbers: 4361  sum of gear ratios: 467835", Summary(analysis))
}
