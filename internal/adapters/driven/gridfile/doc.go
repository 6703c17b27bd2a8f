// Package gridfile provides filesystem adapters for schematics.
//
// Adapters:
//   - Loader: reads a schematic file (or stdin) into a domain.Grid
//   - Watcher: reports writes to a schematic file using fsnotify
package gridfile
