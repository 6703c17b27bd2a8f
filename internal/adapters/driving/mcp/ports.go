package mcp

import (
	"github.com/custodia-labs/gearscan/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Schematic answers schematic queries.
	Schematic driving.SchematicService

	// Settings exposes the active configuration as a resource.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Schematic == nil {
		return ErrMissingSchematicService
	}
	// Settings is optional
	return nil
}
