package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/markuspf/libsemigroups/pkg/errors"
	"github.com/markuspf/libsemigroups/pkg/render"
	"github.com/markuspf/libsemigroups/pkg/semigroup"
)

// newGraphCmd creates the "graph" command.
func newGraphCmd() *cobra.Command {
	var (
		left   bool
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "graph <problem.toml>",
		Short: "Export a Cayley graph as DOT or SVG",
		Long: `Graph enumerates the semigroup described by the problem file and exports
its right (or, with --left, its left) Cayley graph. The default output is
Graphviz DOT on stdout; --format svg renders the graph with Graphviz.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if format != "dot" && format != "svg" {
				return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q, want dot or svg", format)
			}

			problem, _, err := LoadProblem(args[0])
			if err != nil {
				return err
			}
			gens, err := problem.BuildGenerators()
			if err != nil {
				return err
			}
			var opts []semigroup.Option
			if problem.Engine.BatchSize > 0 {
				opts = append(opts, semigroup.WithBatchSize(problem.Engine.BatchSize))
			}
			s, err := semigroup.New(gens, opts...)
			if err != nil {
				return err
			}

			side := render.Right
			if left {
				side = render.Left
			}

			track := newProgress(logger)
			var data []byte
			if format == "svg" {
				data, err = render.RenderSVG(ctx, s, side)
				if err != nil {
					return err
				}
			} else {
				data = []byte(render.ToDOT(s, side))
			}
			track.done(fmt.Sprintf("Exported %s Cayley graph of %d elements", side, s.CurrentSize()))

			if output == "" || output == "-" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess(fmt.Sprintf("Wrote %s", output))
			return nil
		},
	}

	cmd.Flags().BoolVar(&left, "left", false, "export the left Cayley graph instead of the right")
	cmd.Flags().StringVar(&format, "format", "dot", "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
