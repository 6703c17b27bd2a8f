// Package cli provides the cobra command tree for gearscan.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gearscan/internal/core/ports/driving"
	"github.com/custodia-labs/gearscan/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services used by the commands. They are installed by SetServices or by
// the Wiring function before any command runs.
var (
	schematicService driving.SchematicService
	settingsService  driving.SettingsService
)

var (
	verbose   bool
	configDir string
)

// errNoSchematicService is returned when a command runs without wiring.
var errNoSchematicService = errors.New("schematic service not configured")

// errNoSettingsService is returned when a settings command runs without wiring.
var errNoSettingsService = errors.New("settings service not configured")

// Wiring builds the services for the given configuration directory.
// An empty directory selects the default location.
type Wiring func(configDir string) (driving.SchematicService, driving.SettingsService, error)

var wire Wiring

var rootCmd = &cobra.Command{
	Use:   "gearscan",
	Short: "Scan engine schematics for part numbers and gear ratios",
	Long: `gearscan reads a character grid schematic and answers two questions:

  1. the sum of every number adjacent to a symbol, diagonals included
  2. the sum of gear ratios, where a gear is a '*' touching exactly two numbers

Schematics are read from a file, or from standard input when the path is "-".`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.gearscan)")
}

// setup configures logging and builds the services.
func setup(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(verbose)

	if wire == nil {
		return nil
	}
	schematic, settings, err := wire(configDir)
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(schematic, settings)
	return nil
}

// SetServices installs the services used by the commands.
func SetServices(schematic driving.SchematicService, settings driving.SettingsService) {
	schematicService = schematic
	settingsService = settings
}

// SetWiring installs the function that builds services once flags are parsed.
func SetWiring(w Wiring) {
	wire = w
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
