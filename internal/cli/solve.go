package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tkarstens/cubist/pkg/constraint"
	"github.com/tkarstens/cubist/pkg/observability"
	"github.com/tkarstens/cubist/pkg/run"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	format   string // output format: "table" or "json"
	output   string // output file path for json (stdout if empty)
	noCache  bool   // disable the solutions cache entirely
	refresh  bool   // bypass cached solutions for reading
	progress bool   // show a live progress model while solving
}

// newSolveCmd creates the solve command.
// It loads a constraint file (JSON or TOML), computes the least solution of
// every variable, and prints the result as a table or as JSON.
func newSolveCmd() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a constraint system and print variable solutions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSolveFormat(opts.format); err != nil {
				return err
			}
			return runSolve(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", run.FormatTable, "output format: table (default), json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file for json (default: stdout)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the solutions cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached solutions (fresh results are still stored)")
	cmd.Flags().BoolVar(&opts.progress, "progress", false, "show live solve progress")

	return cmd
}

// validateSolveFormat checks that the format is printable by solve.
// The dot and svg formats belong to the graph command.
func validateSolveFormat(f string) error {
	if f != run.FormatTable && f != run.FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'table' or 'json')", f)
	}
	return nil
}

// runSolve executes the load → solve → report flow and prints the result.
// Each run is tagged with a short random id so interleaved log lines from
// concurrent invocations stay attributable.
func runSolve(ctx context.Context, path string, opts *solveOpts) error {
	runID := uuid.NewString()[:8]
	logger := loggerFromContext(ctx).With("run", runID)
	runner := newRunner(logger, opts.noCache)

	ropts := run.Options{
		Path:    path,
		Format:  opts.format,
		Refresh: opts.refresh,
		Logger:  logger,
	}

	var result *run.Result
	var err error
	if opts.progress {
		result, err = solveWithProgress(ctx, runner, ropts, path)
	} else {
		prog := newProgress(logger)
		result, err = runner.Execute(ctx, ropts)
		if err == nil {
			prog.done(fmt.Sprintf("Solved %d constraints", result.Stats.ConstraintCount))
		}
	}
	if err != nil {
		return err
	}

	if opts.format == run.FormatJSON {
		out, err := openOutput(opts.output)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := constraint.WriteSolutions(result.Solutions, out); err != nil {
			return err
		}
		if opts.output != "" {
			printFile(opts.output)
		}
	} else {
		fmt.Println(solutionsTable(result.Solutions))
	}

	printStats(result.SolverStats, result.CacheInfo.SolveHit)
	return nil
}

// solveWithProgress runs the solve under a bubbletea program that displays
// live constraint and collapse counts fed from solver hooks. The solve runs
// in a goroutine and reports back via solveDoneMsg.
func solveWithProgress(ctx context.Context, runner *run.Runner, ropts run.Options, path string) (*run.Result, error) {
	p := tea.NewProgram(NewSolveModel(path), tea.WithOutput(os.Stderr), tea.WithContext(ctx))

	observability.SetSolverHooks(teaSolverHooks{p: p})
	defer observability.Reset()

	go func() {
		result, err := runner.Execute(ctx, ropts)
		p.Send(solveDoneMsg{result: result, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(SolveModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	if m.Aborted {
		return nil, context.Canceled
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
