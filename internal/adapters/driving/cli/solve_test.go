package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gearscan/internal/core/domain"
)

func TestSolveCmd_Use(t *testing.T) {
	assert.Equal(t, "solve <file>", solveCmd.Use)
}

func TestSolveCmd_HasFlags(t *testing.T) {
	part := solveCmd.Flags().Lookup("part")
	require.NotNil(t, part, "part flag should exist")
	assert.Equal(t, "p", part.Shorthand)
	assert.Equal(t, "", part.DefValue)

	require.NotNil(t, solveCmd.Flags().Lookup("json"))
}

func TestSolveCmd_RequiresExactlyOneArg(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand("solve")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSolveCmd_NoService(t *testing.T) {
	setupTestServices(t)
	SetServices(nil, nil)

	_, err := executeCommand("solve", "schematic.txt")

	assert.ErrorIs(t, err, errNoSchematicService)
}

func TestSolveCmd_BothParts(t *testing.T) {
	dir := setupTestServices(t)
	path := writeSchematic(t, dir, "schematic.txt", classicSchematic)

	out, err := executeCommand("solve", path)

	require.NoError(t, err)
	assert.Equal(t, "sum of part numbers: 4361\nsum of gear ratios: 467835\n", out)
}

func TestSolveCmd_SinglePart(t *testing.T) {
	tests := []struct {
		part string
		want string
	}{
		{"1", "sum of part numbers: 4361\n"},
		{"parts", "sum of part numbers: 4361\n"},
		{"2", "sum of gear ratios: 467835\n"},
		{"GEARS", "sum of gear ratios: 467835\n"},
	}

	for _, tt := range tests {
		t.Run(tt.part, func(t *testing.T) {
			dir := setupTestServices(t)
			path := writeSchematic(t, dir, "schematic.txt", classicSchematic)

			out, err := executeCommand("solve", "--part", tt.part, path)

			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSolveCmd_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "number without symbols",
			lines: []string{"123"},
			want:  "sum of part numbers: 0\nsum of gear ratios: 0\n",
		},
		{
			name:  "gear with eight neighbours",
			lines: []string{"1.1", "1*1", "1.1"},
			want:  "sum of part numbers: 6\nsum of gear ratios: 0\n",
		},
		{
			name:  "number touching gear twice counts once",
			lines: []string{"12.", ".*.", "..3"},
			want:  "sum of part numbers: 15\nsum of gear ratios: 36\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupTestServices(t)
			path := writeSchematic(t, dir, "schematic.txt", tt.lines)

			out, err := executeCommand("solve", path)

			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSolveCmd_InvalidPart(t *testing.T) {
	dir := setupTestServices(t)
	path := writeSchematic(t, dir, "schematic.txt", classicSchematic)

	_, err := executeCommand("solve", "--part", "3", path)

	assert.ErrorIs(t, err, domain.ErrInvalidPart)
}

func TestSolveCmd_JSONSinglePart(t *testing.T) {
	dir := setupTestServices(t)
	path := writeSchematic(t, dir, "schematic.txt", classicSchematic)

	out, err := executeCommand("solve", "--json", "--part", "1", path)
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, domain.Report{
		ID:     "report-1",
		Source: path,
		Part:   domain.PartNumbers,
		Answer: 4361,
		Rows:   10,
		Tokens: 10,
	}, report)
}

func TestSolveCmd_JSONFromSettings(t *testing.T) {
	dir := setupTestServices(t)
	path := writeSchematic(t, dir, "schematic.txt", classicSchematic)
	require.NoError(t, settingsService.Set(domain.SettingOutputFormat, "json"))

	out, err := executeCommand("solve", path)
	require.NoError(t, err)

	var reports []domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, 4361, reports[0].Answer)
	assert.Equal(t, 467835, reports[1].Answer)
}

func TestSolveCmd_RelativePathUsesDataDir(t *testing.T) {
	dir := setupTestServices(t)
	writeSchematic(t, dir, "day3-example.txt", classicSchematic)

	out, err := executeCommand("solve", "--part", "2", "day3-example.txt")

	require.NoError(t, err)
	assert.Equal(t, "sum of gear ratios: 467835\n", out)
}

func TestSolveCmd_MissingFile(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand("solve", "does-not-exist.txt")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSolveCmd_ParseErrorIsFatal(t *testing.T) {
	dir := setupTestServices(t)
	path := writeSchematic(t, dir, "overflow.txt", []string{"99999999999999999999999*"})

	_, err := executeCommand("solve", path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 0, parseErr.Row)
}

func TestSelectedParts(t *testing.T) {
	parts, err := selectedParts("")
	require.NoError(t, err)
	assert.Equal(t, domain.AllParts(), parts)

	parts, err = selectedParts("2")
	require.NoError(t, err)
	assert.Equal(t, []domain.Part{domain.PartGearRatios}, parts)

	_, err = selectedParts("nope")
	assert.ErrorIs(t, err, domain.ErrInvalidPart)
}
