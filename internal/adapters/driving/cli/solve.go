package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gearscan/internal/core/domain"
)

var (
	solvePart string
	solveJSON bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <file>",
	Short: "Print the part number sum and the gear ratio sum",
	Long: `Scans the schematic and prints the requested totals.

Without --part both totals are printed. Use "-" to read from standard input.

Parts:
  1, parts  - sum of every number adjacent to a symbol
  2, gears  - sum of the ratios of every gear touching exactly two numbers`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solvePart, "part", "p", "", "part to solve: 1|parts or 2|gears (default both)")
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "output reports as JSON")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	if schematicService == nil {
		return errNoSchematicService
	}

	parts, err := selectedParts(solvePart)
	if err != nil {
		return err
	}

	path := args[0]
	grid, err := schematicService.Load(cmd.Context(), path)
	if err != nil {
		return err
	}

	reports := make([]*domain.Report, 0, len(parts))
	for _, part := range parts {
		report, err := schematicService.SolveGrid(grid, part)
		if err != nil {
			return fmt.Errorf("solving %s: %w", part, err)
		}
		report.Source = path
		reports = append(reports, report)
	}

	if solveJSON || outputFormat() == domain.OutputJSON {
		return outputReportsJSON(cmd, reports)
	}
	outputReportsText(cmd, reports)
	return nil
}

// selectedParts parses the --part flag; empty means every part.
func selectedParts(flag string) ([]domain.Part, error) {
	if flag == "" {
		return domain.AllParts(), nil
	}
	part, err := domain.ParsePart(flag)
	if err != nil {
		return nil, err
	}
	return []domain.Part{part}, nil
}

// outputFormat returns the configured default format.
func outputFormat() domain.OutputFormat {
	if settingsService == nil {
		return domain.OutputText
	}
	settings, err := settingsService.Get()
	if err != nil {
		return domain.OutputText
	}
	return settings.Output.Format
}

func outputReportsJSON(cmd *cobra.Command, reports []*domain.Report) error {
	var v any = reports
	if len(reports) == 1 {
		v = reports[0]
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal reports: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputReportsText(cmd *cobra.Command, reports []*domain.Report) {
	for _, r := range reports {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", r.Part.Description(), r.Answer)
	}
}
