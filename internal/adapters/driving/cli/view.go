package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/gearscan/internal/adapters/driven/gridfile"
	"github.com/custodia-labs/gearscan/internal/adapters/driving/render"
	"github.com/custodia-labs/gearscan/internal/adapters/driving/tui"
	"github.com/custodia-labs/gearscan/internal/adapters/driving/tui/styles"
)

var (
	viewInteractive bool
	viewNoColor     bool
)

// errNotTerminal is returned when the interactive viewer has no terminal.
var errNotTerminal = errors.New("interactive view requires a terminal")

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Render a schematic with part numbers and gears highlighted",
	Long: `Prints the schematic with every part number, non-part number, gear and
symbol highlighted, followed by both totals.

Colour is used when standard output is a terminal and output.color is
enabled. Use --interactive to open a scrollable viewer.

Viewer controls:
  ↑/k, ↓/j, ←/h, →/l - Scroll
  pgup, pgdn         - Page
  g, G               - Top / bottom
  r                  - Reload from disk
  ?                  - Toggle help
  q                  - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().BoolVarP(&viewInteractive, "interactive", "i", false, "open the scrollable viewer")
	viewCmd.Flags().BoolVar(&viewNoColor, "no-color", false, "disable highlighting")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	if schematicService == nil {
		return errNoSchematicService
	}

	path := args[0]
	if viewInteractive {
		return runInteractiveView(cmd, path)
	}

	grid, err := schematicService.Load(cmd.Context(), path)
	if err != nil {
		return err
	}
	analysis, err := schematicService.AnalyseGrid(grid)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var s *styles.Styles
	coloured := colourEnabled(out)
	if coloured {
		s = styles.DefaultStyles()
	}

	h := render.NewHighlighter(grid, analysis, s)
	fmt.Fprintln(out, h.Render())
	fmt.Fprintln(out)
	if coloured {
		fmt.Fprintln(out, h.Legend())
	}
	fmt.Fprintln(out, render.Summary(analysis))
	return nil
}

func runInteractiveView(cmd *cobra.Command, path string) (err error) {
	if path == gridfile.StdinPath {
		return fmt.Errorf("%w: cannot read the schematic from standard input", errNotTerminal)
	}
	if !isTerminal(os.Stdin) || !isTerminal(cmd.OutOrStdout()) {
		return errNotTerminal
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in viewer: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("viewer panic: %v", r)
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(schematicService), path)
	if err != nil {
		return fmt.Errorf("failed to create viewer: %w", err)
	}
	app.WithContext(cmd.Context())
	if !colourEnabled(cmd.OutOrStdout()) {
		app.WithStyles(styles.PlainStyles())
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("viewer error: %w", err)
	}
	return nil
}

// colourEnabled reports whether output written to w should be highlighted.
func colourEnabled(w io.Writer) bool {
	if viewNoColor {
		return false
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil && !settings.Output.Color {
			return false
		}
	}
	return isTerminal(w)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
