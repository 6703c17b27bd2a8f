package driven

import (
	"context"

	"github.com/custodia-labs/gearscan/internal/core/domain"
)

// GridLoader reads a schematic into a grid, one row per line.
type GridLoader interface {
	// Load reads the schematic at path. Implementations return an error
	// wrapping domain.ErrNotFound when path does not exist.
	Load(ctx context.Context, path string) (*domain.Grid, error)
}

// GridWatcher reports changes to a schematic file.
type GridWatcher interface {
	// Watch calls onChange every time the file at path is written or
	// replaced. It blocks until ctx is cancelled or watching fails.
	Watch(ctx context.Context, path string, onChange func()) error
}
