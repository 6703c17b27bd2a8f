package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gearscan/internal/adapters/driven/gridfile"
	"github.com/custodia-labs/gearscan/internal/core/domain"
)

var watchPart string

// errWatchStdin is returned when watch is asked to follow standard input.
var errWatchStdin = errors.New("watch needs a file path, not standard input")

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-solve a schematic every time it changes",
	Long: `Solves the schematic once, then again every time the file is saved,
until interrupted with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchPart, "part", "p", "", "part to solve: 1|parts or 2|gears (default both)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if schematicService == nil {
		return errNoSchematicService
	}

	path := args[0]
	if path == gridfile.StdinPath {
		return errWatchStdin
	}

	parts, err := selectedParts(watchPart)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	solve := func() { solveAndPrint(ctx, cmd, path, parts) }

	solve()
	cmd.PrintErrf("Watching %s (press Ctrl+C to stop)\n", path)

	return schematicService.Watch(ctx, path, solve)
}

// solveAndPrint prints one block of answers. Failures are reported and
// watching continues, since the file may be mid-edit.
func solveAndPrint(ctx context.Context, cmd *cobra.Command, path string, parts []domain.Part) {
	out := cmd.OutOrStdout()
	stamp := time.Now().Format(time.TimeOnly)

	grid, err := schematicService.Load(ctx, path)
	if err != nil {
		cmd.PrintErrf("[%s] %v\n", stamp, err)
		return
	}

	for _, part := range parts {
		report, err := schematicService.SolveGrid(grid, part)
		if err != nil {
			cmd.PrintErrf("[%s] solving %s: %v\n", stamp, part, err)
			return
		}
		fmt.Fprintf(out, "[%s] %s: %d\n", stamp, part.Description(), report.Answer)
	}
}
