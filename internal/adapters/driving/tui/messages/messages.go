// Package messages defines Bubbletea message types for the schematic viewer.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/gearscan/internal/core/domain"
)

// ReloadRequested asks the viewer to read the schematic again.
type ReloadRequested struct{}

// SchematicLoaded carries a freshly scanned schematic back to the model.
type SchematicLoaded struct {
	Grid     *domain.Grid
	Analysis *domain.Analysis
	Err      error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
