// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/srgcat/bfs"
	"github.com/katalvlaran/srgcat/builder"
	"github.com/katalvlaran/srgcat/design"
	"github.com/katalvlaran/srgcat/srg"
)

func newRealizeCmd(a *app) *cobra.Command {
	var (
		verify   bool
		spectrum bool
		edges    bool
		local    bool
		noLabels bool
		idPrefix string
	)

	cmd := &cobra.Command{
		Use:   "realize v k lambda mu",
		Short: "Build the graph for one tuple and optionally check its parameters",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseParams(args)
			if err != nil {
				return err
			}
			oracle := design.NewOracle()
			e, ok := srg.Lookup(srg.NewClassifier(oracle), p)
			if !ok {
				return fmt.Errorf("%s: no recipe", p)
			}

			var opts []builder.BuilderOption
			if idPrefix != "" {
				opts = append(opts, builder.WithIDPrefix(idPrefix))
			}
			if noLabels {
				opts = append(opts, builder.WithoutLabels())
			}
			f := srg.NewFactory(oracle, opts...)
			g, err := srg.Realize(e.Recipe, f)
			if err != nil {
				return err
			}
			st := g.Stats()
			a.log.Debug("realized", zap.Stringer("recipe", e.Recipe),
				zap.Int("vertices", st.VertexCount), zap.Int("edges", st.EdgeCount))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", p, e.Recipe)
			fmt.Fprintf(out, "  vertices %d, edges %d, degree %d..%d\n",
				st.VertexCount, st.EdgeCount, st.MinDegree, st.MaxDegree)
			switch d, err := bfs.Diameter(cmd.Context(), g); {
			case errors.Is(err, bfs.ErrDisconnected):
				fmt.Fprintln(out, "  disconnected")
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "  diameter %d\n", d)
				layers, err := bfs.Layers(cmd.Context(), g, g.Vertices()[0])
				if err != nil {
					return err
				}
				sizes := make([]string, len(layers))
				for i, l := range layers {
					sizes[i] = strconv.Itoa(len(l))
				}
				fmt.Fprintf(out, "  layers %s\n", strings.Join(sizes, "+"))
			}

			if local {
				loc, err := srg.Subconstituent(g)
				if err != nil {
					return err
				}
				if loc.SubParams != (srg.Params{}) {
					fmt.Fprintf(out, "  subconstituent at %s: %s\n", loc.Vertex, loc.SubParams)
				} else {
					sst := loc.Sub.Stats()
					fmt.Fprintf(out, "  subconstituent at %s: %d vertices, degree %d..%d\n",
						loc.Vertex, sst.VertexCount, sst.MinDegree, sst.MaxDegree)
				}
				fmt.Fprintf(out, "  common neighbours %d adjacent, %d non-adjacent\n", loc.Adjacent, loc.NonAdjacent)
			}
			if verify {
				if err := srg.VerifyGraph(g, p); err != nil {
					fmt.Fprintf(out, "  %s\n", color.RedString("verification failed"))
					return err
				}
				fmt.Fprintf(out, "  %s\n", color.GreenString("verified"))
			}
			if spectrum {
				got, err := srg.Eigenvalues(g)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  spectrum %s\n", srg.FormatEigenvalues(got))
				if verify {
					if err := srg.CheckSpectrum(got, p); err != nil {
						fmt.Fprintf(out, "  %s\n", color.RedString("spectrum differs"))
						return err
					}
				}
			}
			if edges {
				for _, ed := range g.Edges() {
					fmt.Fprintf(out, "%s %s\n", ed.From, ed.To)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&verify, "verify", false, "check that the graph is strongly regular with these parameters")
	cmd.Flags().BoolVar(&spectrum, "spectrum", false, "print the adjacency spectrum (checked with --verify)")
	cmd.Flags().BoolVar(&edges, "edges", false, "print the edge list")
	cmd.Flags().BoolVar(&local, "subconstituent", false, "describe the graph induced on the first vertex's neighbours")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "skip per-vertex label metadata")
	cmd.Flags().StringVar(&idPrefix, "id-prefix", "", "vertex ID prefix (default plain indices)")
	return cmd
}
