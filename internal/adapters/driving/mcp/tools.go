package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gearscan/internal/adapters/driven/gridfile"
	"github.com/custodia-labs/gearscan/internal/core/domain"
)

// SchematicInput is the input schema shared by every tool.
type SchematicInput struct {
	Lines []string `json:"lines,omitempty" jsonschema:"the schematic rows, one string per row"`
	Path  string   `json:"path,omitempty" jsonschema:"path of a schematic file, used when lines is empty"`
}

// SolveOutput is the output schema for the sum tools.
type SolveOutput struct {
	ID     string `json:"id"`
	Part   string `json:"part"`
	Answer int    `json:"answer"`
	Rows   int    `json:"rows"`
	Tokens int    `json:"tokens"`
}

// TokenOutput represents a single number token.
type TokenOutput struct {
	Value int  `json:"value"`
	Row   int  `json:"row"`
	Start int  `json:"start"`
	End   int  `json:"end"`
	Part  bool `json:"part"`
}

// GearOutput represents a single qualifying gear.
type GearOutput struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Values [2]int `json:"values"`
	Ratio  int    `json:"ratio"`
}

// AnalyseOutput is the output schema for the analyse tool.
type AnalyseOutput struct {
	Rows          int           `json:"rows"`
	Tokens        []TokenOutput `json:"tokens"`
	Gears         []GearOutput  `json:"gears"`
	PartNumberSum int           `json:"part_number_sum"`
	GearRatioSum  int           `json:"gear_ratio_sum"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "sum_part_numbers",
		Description: "Sum every number in a schematic that touches a symbol, diagonals included",
	}, s.handleSumPartNumbers)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "sum_gear_ratios",
		Description: "Sum the products of the two numbers around every gear that touches exactly two numbers",
	}, s.handleSumGearRatios)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyse_schematic",
		Description: "List every number token and gear in a schematic together with both totals",
	}, s.handleAnalyse)
}

// handleSumPartNumbers handles the sum_part_numbers tool invocation.
func (s *Server) handleSumPartNumbers(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SchematicInput,
) (*mcp.CallToolResult, SolveOutput, error) {
	return s.solve(ctx, input, domain.PartNumbers)
}

// handleSumGearRatios handles the sum_gear_ratios tool invocation.
func (s *Server) handleSumGearRatios(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SchematicInput,
) (*mcp.CallToolResult, SolveOutput, error) {
	return s.solve(ctx, input, domain.PartGearRatios)
}

func (s *Server) solve(
	ctx context.Context,
	input SchematicInput,
	part domain.Part,
) (*mcp.CallToolResult, SolveOutput, error) {
	grid, err := s.grid(ctx, input)
	if err != nil {
		return nil, SolveOutput{}, err
	}

	report, err := s.ports.Schematic.SolveGrid(grid, part)
	if err != nil {
		return nil, SolveOutput{}, err
	}

	return nil, SolveOutput{
		ID:     report.ID,
		Part:   report.Part.String(),
		Answer: report.Answer,
		Rows:   report.Rows,
		Tokens: report.Tokens,
	}, nil
}

// handleAnalyse handles the analyse_schematic tool invocation.
func (s *Server) handleAnalyse(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SchematicInput,
) (*mcp.CallToolResult, AnalyseOutput, error) {
	grid, err := s.grid(ctx, input)
	if err != nil {
		return nil, AnalyseOutput{}, err
	}

	analysis, err := s.ports.Schematic.AnalyseGrid(grid)
	if err != nil {
		return nil, AnalyseOutput{}, err
	}

	output := AnalyseOutput{
		Rows:          analysis.Rows,
		Tokens:        make([]TokenOutput, len(analysis.Tokens)),
		Gears:         make([]GearOutput, len(analysis.Gears)),
		PartNumberSum: analysis.PartNumberSum,
		GearRatioSum:  analysis.GearRatioSum,
	}

	for i, tok := range analysis.Tokens {
		output.Tokens[i] = TokenOutput{
			Value: tok.Value,
			Row:   tok.Row,
			Start: tok.Start,
			End:   tok.End,
			Part:  analysis.IsPartNumber(tok.ID()),
		}
	}

	for i, g := range analysis.Gears {
		output.Gears[i] = GearOutput{
			Row:    g.Cell.Row,
			Col:    g.Cell.Col,
			Values: [2]int{g.Tokens[0].Value, g.Tokens[1].Value},
			Ratio:  g.Ratio(),
		}
	}

	return nil, output, nil
}

// grid builds the grid from inline lines, or loads it from path.
func (s *Server) grid(ctx context.Context, input SchematicInput) (*domain.Grid, error) {
	if len(input.Lines) > 0 {
		return domain.GridFromLines(input.Lines), nil
	}
	if input.Path == "" {
		return nil, ErrMissingInput
	}
	if input.Path == gridfile.StdinPath {
		return nil, ErrStdinPath
	}
	return s.ports.Schematic.Load(ctx, input.Path)
}
