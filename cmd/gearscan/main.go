// Command gearscan scans engine schematics for part numbers and gear ratios.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/custodia-labs/gearscan/internal/adapters/driven/config/file"
	"github.com/custodia-labs/gearscan/internal/adapters/driven/gridfile"
	"github.com/custodia-labs/gearscan/internal/adapters/driving/cli"
	"github.com/custodia-labs/gearscan/internal/core/ports/driving"
	"github.com/custodia-labs/gearscan/internal/core/services"
	"github.com/custodia-labs/gearscan/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetWiring(wire)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// wire builds the services for the given configuration directory.
func wire(configDir string) (driving.SchematicService, driving.SettingsService, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening config: %w", err)
	}
	logger.Debug("Config: %s", store.Path())

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("reading settings: %w", err)
	}

	loader := gridfile.NewLoader(settings.Input.DataDir)
	schematicService := services.NewSchematicService(
		loader,
		gridfile.NewWatcher(loader),
		settings.Scan,
		uuid.NewString,
	)

	return schematicService, settingsService, nil
}
