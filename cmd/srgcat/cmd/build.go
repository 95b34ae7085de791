// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/srgcat/catalog"
	"github.com/katalvlaran/srgcat/internal/metrics"
	"github.com/katalvlaran/srgcat/srg"
)

func newBuildCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the registry, close it under complement and print leftovers",
		Long: `build classifies every feasible tuple, adds complements, and prints
the catalog tuples marked as existing for which no recipe was found:

  (v   , k   , λ   , μ   ): comments`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, log := a.cfg, a.log
			m := metrics.New()

			tuples, err := loadFeasible(cfg)
			if err != nil {
				return fmt.Errorf("feasible: %w", err)
			}
			cat, err := loadCatalog(ctx, cfg)
			if err != nil {
				return fmt.Errorf("catalog: %w", err)
			}
			m.SetFeasible(len(tuples))

			start := time.Now()
			reg, err := srg.Build(ctx, tuples,
				srg.WithWorkers(cfg.Build.Workers),
				srg.WithLogger(log),
				srg.WithObserver(m.Observe))
			if err != nil {
				return err
			}
			added := srg.Close(reg)
			m.ObserveClosure(added)
			m.ObserveDuration(time.Since(start))
			m.SetRegistry(reg)
			log.Info("registry closed", zap.Int("complements", added), zap.Int("entries", reg.Len()))

			left := srg.Diff(reg, cat)
			m.SetLeftovers(len(left))

			out := cmd.OutOrStdout()
			if err := catalog.WriteLeftovers(out, left); err != nil {
				return err
			}
			printSummary(cmd, reg, len(tuples), len(left))

			if cfg.Store.Path != "" {
				s, err := catalog.Open(cfg.Store.Path)
				if err != nil {
					return err
				}
				defer s.Close()
				if err := s.SaveRegistry(ctx, a.runID, reg); err != nil {
					return err
				}
				log.Info("registry stored", zap.String("path", cfg.Store.Path))
			}
			if cfg.Metrics.Path != "" {
				if err := m.WriteTextfile(cfg.Metrics.Path); err != nil {
					return fmt.Errorf("metrics: %w", err)
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.String("catalog", "", "reference catalog file")
	f.String("format", "", "catalog format: brouwer, yaml or sqlite")
	f.String("feasible", "", "feasible tuple file (one v k λ μ per line)")
	f.Int("vmin", 1, "smallest v to enumerate when no feasible file is given")
	f.Int("vmax", 300, "largest v to enumerate when no feasible file is given")
	f.Int("workers", 1, "classification goroutines (0: one per CPU)")
	f.String("store", "", "SQLite database to store the registry in")
	f.String("metrics", "", "Prometheus textfile to write")
	return cmd
}

// printSummary writes the per-family counts to stderr.
func printSummary(cmd *cobra.Command, reg *srg.Registry, feasible, leftovers int) {
	w := cmd.ErrOrStderr()
	counts := reg.CountByFamily()
	families := make([]srg.Family, 0, len(counts))
	for f := range counts {
		families = append(families, f)
	}
	sort.Slice(families, func(i, j int) bool { return families[i] < families[j] })

	bold := color.New(color.Bold)
	bold.Fprintf(w, "%d feasible tuples, %d registry entries\n", feasible, reg.Len())
	for _, f := range families {
		fmt.Fprintf(w, "  %-13s %d\n", f, counts[f])
	}
	if leftovers == 0 {
		color.New(color.FgGreen).Fprintln(w, "no leftovers")
		return
	}
	color.New(color.FgYellow).Fprintf(w, "%d leftovers\n", leftovers)
}
