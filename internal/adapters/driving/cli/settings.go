package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gearscan/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the gear symbol, input directory and output options.

Use subcommands to change a single setting or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a single setting",
	Long: `Change a single setting and save it to the configuration file.

Keys:
  scan.gear_symbol  - character treated as a gear (default "*")
  input.data_dir    - directory searched for relative schematic paths
  output.format     - text or json
  output.color      - true or false`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset <key>",
	Short: "Restore a setting to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsReset,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Scan]")
	cmd.Printf("  Gear symbol: %c\n", settings.Scan.GearSymbol)
	cmd.Println()

	cmd.Println("[Input]")
	if settings.Input.DataDir != "" {
		cmd.Printf("  Data dir: %s\n", settings.Input.DataDir)
	} else {
		cmd.Println("  Data dir: (not set)")
	}
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Format: %s\n", settings.Output.Format)
	cmd.Printf("  Color: %t\n", settings.Output.Color)
	cmd.Println()

	if path := settingsService.Path(); path != "" {
		cmd.Printf("Config file: %s\n", path)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s to %q\n", key, value)
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	key := args[0]
	if err := settingsService.Reset(key); err != nil {
		return fmt.Errorf("failed to reset %s: %w", key, err)
	}

	cmd.Printf("Reset %s to its default\n", key)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	current, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("gearscan Settings Wizard")
	cmd.Println("========================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Gear symbol
	cmd.Println("Step 1: Gear Symbol")
	cmd.Println("-------------------")
	cmd.Printf("Enter gear symbol [%c]: ", current.Scan.GearSymbol)
	if input := readLine(reader); input != "" {
		if err := settingsService.Set(domain.SettingGearSymbol, input); err != nil {
			return fmt.Errorf("failed to set gear symbol: %w", err)
		}
	}
	cmd.Println()

	// Step 2: Data directory
	cmd.Println("Step 2: Data Directory")
	cmd.Println("----------------------")
	cmd.Printf("Enter data directory [%s]: ", current.Input.DataDir)
	if input := readLine(reader); input != "" {
		if err := settingsService.Set(domain.SettingDataDir, input); err != nil {
			return fmt.Errorf("failed to set data directory: %w", err)
		}
	}
	cmd.Println()

	// Step 3: Output
	cmd.Println("Step 3: Output")
	cmd.Println("--------------")
	formats := []domain.OutputFormat{domain.OutputText, domain.OutputJSON}
	defaultFormat := 1
	for i, f := range formats {
		cmd.Printf("  %d. %s\n", i+1, f)
		if f == current.Output.Format {
			defaultFormat = i + 1
		}
	}
	cmd.Printf("\nEnter choice [%d]: ", defaultFormat)
	idx := parseChoice(readLine(reader), len(formats), defaultFormat)
	if err := settingsService.Set(domain.SettingOutputFormat, formats[idx-1].String()); err != nil {
		return fmt.Errorf("failed to set output format: %w", err)
	}

	cmd.Printf("Highlight output in colour? [%s]: ", yesNo(current.Output.Color))
	color := parseYesNo(readLine(reader), current.Output.Color)
	if err := settingsService.Set(domain.SettingOutputColor, strconv.FormatBool(color)); err != nil {
		return fmt.Errorf("failed to set output colour: %w", err)
	}
	cmd.Println()

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	cmd.Println("All settings are saved.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func parseYesNo(input string, defaultVal bool) bool {
	switch strings.ToLower(input) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return defaultVal
	}
}

func yesNo(b bool) string {
	if b {
		return "Y/n"
	}
	return "y/N"
}
