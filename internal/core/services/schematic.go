package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/gearscan/internal/core/domain"
	"github.com/custodia-labs/gearscan/internal/core/ports/driven"
	"github.com/custodia-labs/gearscan/internal/core/ports/driving"
	"github.com/custodia-labs/gearscan/internal/logger"
)

// Ensure SchematicService implements the interface.
var _ driving.SchematicService = (*SchematicService)(nil)

// SchematicService loads schematics and runs the grid scanner over them.
type SchematicService struct {
	loader  driven.GridLoader
	watcher driven.GridWatcher
	gear    rune
	newID   func() string
}

// NewSchematicService creates a new schematic service.
// watcher may be nil, in which case Watch returns domain.ErrWatchUnavailable.
// newID generates report IDs; when nil, reports carry no ID.
func NewSchematicService(
	loader driven.GridLoader,
	watcher driven.GridWatcher,
	scan domain.ScanSettings,
	newID func() string,
) *SchematicService {
	if newID == nil {
		newID = func() string { return "" }
	}
	return &SchematicService{
		loader:  loader,
		watcher: watcher,
		gear:    scan.GearSymbol,
		newID:   newID,
	}
}

// Load reads the schematic at path.
func (s *SchematicService) Load(ctx context.Context, path string) (*domain.Grid, error) {
	if path == "" {
		return nil, domain.ErrEmptyPath
	}

	grid, err := s.loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading schematic: %w", err)
	}

	logger.Debug("Loaded %s: %d rows, %d cells", path, grid.Rows(), grid.Cells())
	return grid, nil
}

// Solve loads the schematic at path and answers the given part.
func (s *SchematicService) Solve(ctx context.Context, path string, part domain.Part) (*domain.Report, error) {
	if !part.IsValid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidPart, part)
	}

	grid, err := s.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	report, err := s.SolveGrid(grid, part)
	if err != nil {
		return nil, err
	}
	report.Source = path
	return report, nil
}

// SolveGrid answers the given part for an already loaded grid.
func (s *SchematicService) SolveGrid(grid *domain.Grid, part domain.Part) (*domain.Report, error) {
	logger.Section("Scan")

	scanner := NewScanner(grid, s.gear)
	tokens, err := scanner.CollectTokens()
	if err != nil {
		return nil, err
	}
	logger.Debug("Tokens: %d", len(tokens))

	var answer int
	switch part {
	case domain.PartNumbers:
		answer, err = scanner.SumAdjacentToSymbol()
	case domain.PartGearRatios:
		answer, err = scanner.SumGearRatios()
	default:
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidPart, part)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("%s: %d", part.Description(), answer)

	return &domain.Report{
		ID:     s.newID(),
		Part:   part,
		Answer: answer,
		Rows:   scanner.Grid().Rows(),
		Tokens: len(tokens),
	}, nil
}

// Analyse loads the schematic at path and returns the full breakdown.
func (s *SchematicService) Analyse(ctx context.Context, path string) (*domain.Analysis, error) {
	grid, err := s.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	analysis, err := s.AnalyseGrid(grid)
	if err != nil {
		return nil, err
	}
	analysis.Source = path
	return analysis, nil
}

// AnalyseGrid returns the full breakdown for an already loaded grid.
func (s *SchematicService) AnalyseGrid(grid *domain.Grid) (*domain.Analysis, error) {
	analysis, err := NewScanner(grid, s.gear).Analyse()
	if err != nil {
		return nil, err
	}

	logger.Debug("Tokens: %d, part numbers: %d, gears: %d",
		len(analysis.Tokens), len(analysis.PartNumbers), len(analysis.Gears))
	return analysis, nil
}

// Watch re-runs onChange whenever the schematic at path changes.
func (s *SchematicService) Watch(ctx context.Context, path string, onChange func()) error {
	if s.watcher == nil {
		return domain.ErrWatchUnavailable
	}
	if path == "" {
		return domain.ErrEmptyPath
	}

	logger.Info("Watching %s", path)
	return s.watcher.Watch(ctx, path, onChange)
}
