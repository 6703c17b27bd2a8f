package tui

import "errors"

// ErrMissingSchematicService is returned when the schematic service is not provided.
var ErrMissingSchematicService = errors.New("tui: schematic service is required")

// ErrMissingPath is returned when no schematic path is given.
var ErrMissingPath = errors.New("tui: schematic path is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
