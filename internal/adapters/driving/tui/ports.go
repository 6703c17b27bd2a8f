// Package tui provides an interactive terminal viewer for schematics.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/gearscan/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the viewer.
type Ports struct {
	// Schematic loads and scans schematics.
	Schematic driving.SchematicService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(schematic driving.SchematicService) *Ports {
	return &Ports{Schematic: schematic}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Schematic == nil {
		return ErrMissingSchematicService
	}
	return nil
}
