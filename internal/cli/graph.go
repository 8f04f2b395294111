package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tkarstens/cubist/pkg/render"
	"github.com/tkarstens/cubist/pkg/run"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	format   string // output format: "dot" or "svg"
	output   string // output file path (stdout if empty)
	detailed bool   // include token solutions in class labels
}

// newGraphCmd creates the graph command.
// It solves the constraint system and emits the reduced constraint graph,
// where each node is an equivalence class of variables after cycle
// collapsing.
func newGraphCmd() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [file]",
		Short: "Render the reduced constraint graph as DOT or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != run.FormatDOT && opts.format != run.FormatSVG {
				return fmt.Errorf("invalid format: %s (must be 'dot' or 'svg')", opts.format)
			}
			return runGraph(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", run.FormatDOT, "output format: dot (default), svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include token solutions in node labels")

	return cmd
}

// runGraph solves the system and writes the snapshot in the requested
// format. Graph output always reflects a fresh solve: the reduced graph
// cannot be reconstructed from cached solutions, so the runner skips the
// cache for these formats.
func runGraph(ctx context.Context, path string, opts *graphOpts) error {
	logger := loggerFromContext(ctx)

	runner := newRunner(logger, true)
	result, err := runner.Execute(ctx, run.Options{
		Path:   path,
		Format: opts.format,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	dot := render.ToDOT(result.Snapshot, render.Options{Detailed: opts.detailed})

	var data []byte
	switch opts.format {
	case run.FormatSVG:
		logger.Info("Rendering SVG")
		data, err = render.RenderSVG(dot)
		if err != nil {
			return err
		}
	default:
		data = []byte(dot)
	}
	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Generated %s", opts.output)
		printDetail("%d classes, %d edges", len(result.Snapshot.Classes), len(result.Snapshot.Edges))
	}
	return nil
}
