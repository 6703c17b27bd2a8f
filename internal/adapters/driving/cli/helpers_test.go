package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gearscan/internal/adapters/driven/gridfile"
	"github.com/custodia-labs/gearscan/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/gearscan/internal/core/domain"
	"github.com/custodia-labs/gearscan/internal/core/services"
	"github.com/custodia-labs/gearscan/internal/logger"
)

var classicSchematic = []string{
	"467..114..",
	"...*......",
	"..35..633.",
	"......#...",
	"617*......",
	".....+.58.",
	"..592.....",
	"......755.",
	"...$.*....",
	".664.598..",
}

// setupTestServices installs real services backed by an in-memory config
// store and a loader rooted at a fresh data directory, which it returns.
func setupTestServices(t *testing.T) string {
	t.Helper()

	dataDir := t.TempDir()
	settings := services.NewSettingsService(memory.NewConfigStore())
	loader := gridfile.NewLoader(dataDir)
	schematic := services.NewSchematicService(
		loader,
		gridfile.NewWatcher(loader),
		domain.ScanSettings{GearSymbol: domain.DefaultGearSymbol},
		func() string { return "report-1" },
	)

	origSchematic, origSettings := schematicService, settingsService
	SetServices(schematic, settings)
	resetFlags()

	t.Cleanup(func() {
		SetServices(origSchematic, origSettings)
		SetWiring(nil)
		resetFlags()
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})
	return dataDir
}

// resetFlags restores every flag variable to its default.
func resetFlags() {
	verbose = false
	configDir = ""
	solvePart = ""
	solveJSON = false
	inspectJSON = false
	viewInteractive = false
	viewNoColor = false
	watchPart = ""
	versionShort = false
}

// writeSchematic writes lines to name under dir and returns the full path.
func writeSchematic(t *testing.T, dir, name string, lines []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return path
}

// executeCommand runs the root command with args and returns everything
// written to stdout and stderr.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}
