package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gearscan/internal/core/domain"
)

var inspectJSON bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "List every number and gear in a schematic",
	Long: `Prints every number token with its coordinates and whether it touches a
symbol, then every gear with the two numbers it meshes and its ratio.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "output the analysis as JSON")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	if schematicService == nil {
		return errNoSchematicService
	}

	analysis, err := schematicService.Analyse(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if inspectJSON {
		data, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal analysis: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	outputAnalysisText(out, analysis)
	return nil
}

func outputAnalysisText(out io.Writer, a *domain.Analysis) {
	fmt.Fprintf(out, "Schematic: %s (%d rows)\n\n", a.Source, a.Rows)

	if len(a.Tokens) == 0 {
		fmt.Fprintln(out, "No numbers found.")
	} else {
		fmt.Fprintln(out, "Numbers:")
		fmt.Fprintf(out, "  %-6s %-10s %-12s %s\n", "ROW", "COLS", "VALUE", "PART")
		for _, tok := range a.Tokens {
			part := "no"
			if a.IsPartNumber(tok.ID()) {
				part = "yes"
			}
			cols := fmt.Sprintf("%d-%d", tok.Start, tok.End)
			fmt.Fprintf(out, "  %-6d %-10s %-12d %s\n", tok.Row, cols, tok.Value, part)
		}
	}
	fmt.Fprintln(out)

	if len(a.Gears) == 0 {
		fmt.Fprintln(out, "No gears found.")
	} else {
		fmt.Fprintln(out, "Gears:")
		fmt.Fprintf(out, "  %-10s %-20s %s\n", "CELL", "NUMBERS", "RATIO")
		for _, g := range a.Gears {
			cell := fmt.Sprintf("(%d,%d)", g.Cell.Row, g.Cell.Col)
			numbers := fmt.Sprintf("%d x %d", g.Tokens[0].Value, g.Tokens[1].Value)
			fmt.Fprintf(out, "  %-10s %-20s %d\n", cell, numbers, g.Ratio())
		}
	}
	fmt.Fprintln(out)

	for _, p := range domain.AllParts() {
		fmt.Fprintf(out, "%s: %d\n", p.Description(), a.Answer(p))
	}
}
