package mcp

import (
	"context"

	"github.com/custodia-labs/gearscan/internal/core/domain"
	"github.com/custodia-labs/gearscan/internal/core/ports/driving"
	"github.com/custodia-labs/gearscan/internal/core/services"
)

// mockSchematicService is a mock implementation of driving.SchematicService.
// Loading returns the configured grid; scanning runs the real scanner.
type mockSchematicService struct {
	grid     *domain.Grid
	loadErr  error
	err      error
	lastPath string
}

func (m *mockSchematicService) Load(_ context.Context, path string) (*domain.Grid, error) {
	m.lastPath = path
	return m.grid, m.loadErr
}

func (m *mockSchematicService) Solve(ctx context.Context, path string, part domain.Part) (*domain.Report, error) {
	grid, err := m.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return m.SolveGrid(grid, part)
}

func (m *mockSchematicService) SolveGrid(grid *domain.Grid, part domain.Part) (*domain.Report, error) {
	if m.err != nil {
		return nil, m.err
	}
	analysis, err := services.NewScanner(grid, domain.DefaultGearSymbol).Analyse()
	if err != nil {
		return nil, err
	}
	return &domain.Report{
		ID:     "report-1",
		Part:   part,
		Answer: analysis.Answer(part),
		Rows:   analysis.Rows,
		Tokens: len(analysis.Tokens),
	}, nil
}

func (m *mockSchematicService) Analyse(ctx context.Context, path string) (*domain.Analysis, error) {
	grid, err := m.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return m.AnalyseGrid(grid)
}

func (m *mockSchematicService) AnalyseGrid(grid *domain.Grid) (*domain.Analysis, error) {
	if m.err != nil {
		return nil, m.err
	}
	return services.NewScanner(grid, domain.DefaultGearSymbol).Analyse()
}

func (m *mockSchematicService) Watch(ctx context.Context, _ string, _ func()) error {
	<-ctx.Done()
	return nil
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Set(_, _ string) error {
	return m.err
}

func (m *mockSettingsService) Reset(_ string) error {
	return m.err
}

func (m *mockSettingsService) Keys() []string {
	return nil
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *mockSettingsService) Path() string {
	return ""
}

var (
	_ driving.SchematicService = (*mockSchematicService)(nil)
	_ driving.SettingsService  = (*mockSettingsService)(nil)
)
