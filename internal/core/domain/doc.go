// Package domain defines the core entities for gearscan.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Grid: the schematic, an immutable set of (possibly ragged) rows
//   - NumberToken: a maximal horizontal run of digits and its span
//   - Gear: a gear cell meshing exactly two number tokens
//   - Report / Analysis: the results handed to driving adapters
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
