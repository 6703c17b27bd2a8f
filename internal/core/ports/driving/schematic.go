package driving

import (
	"context"

	"github.com/custodia-labs/gearscan/internal/core/domain"
)

// SchematicService answers schematic queries for external actors.
type SchematicService interface {
	// Solve loads the schematic at path and answers the given part.
	Solve(ctx context.Context, path string, part domain.Part) (*domain.Report, error)

	// SolveGrid answers the given part for an already loaded grid.
	SolveGrid(grid *domain.Grid, part domain.Part) (*domain.Report, error)

	// Analyse loads the schematic at path and returns the full breakdown.
	Analyse(ctx context.Context, path string) (*domain.Analysis, error)

	// AnalyseGrid returns the full breakdown for an already loaded grid.
	AnalyseGrid(grid *domain.Grid) (*domain.Analysis, error)

	// Load reads the schematic at path without scanning it.
	Load(ctx context.Context, path string) (*domain.Grid, error)

	// Watch re-runs onChange whenever the schematic at path changes.
	// It blocks until ctx is cancelled.
	Watch(ctx context.Context, path string, onChange func()) error
}
