// SPDX-License-Identifier: MIT

// Package cmd provides the srgcat CLI commands.
package cmd

import (
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/srgcat/internal/config"
	"github.com/katalvlaran/srgcat/internal/logging"
)

// Version is set at link time.
var Version = "0.1.0"

// app is the per-invocation state shared by subcommands.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	log    *zap.Logger
	runID  string
	closer func() error
}

// flagKeys maps command flags onto config keys; a flag overrides the
// config only when set on the command line.
var flagKeys = map[string]string{
	"catalog":  "catalog.path",
	"format":   "catalog.format",
	"feasible": "feasible.path",
	"vmin":     "feasible.vmin",
	"vmax":     "feasible.vmax",
	"workers":  "build.workers",
	"store":    "store.path",
	"metrics":  "metrics.path",
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand returns a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "srgcat",
		Short: "Catalogue constructions of strongly regular graphs",
		Long: `srgcat matches (v,k,λ,μ) parameter tuples against known families of
strongly regular graphs (Paley, Johnson, orthogonal-array block, Steiner,
affine polar) and six sporadic graphs, closes the result under
complementation and lists catalog tuples that exist but have no recipe.

Examples:
  srgcat classify 13 6 2 3
  srgcat build --catalog brouwer.tmp --vmax 300
  srgcat realize 27 10 1 5 --verify`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.closer != nil {
				return a.closer()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./srgcat.yaml or $HOME/.srgcat/srgcat.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newClassifyCmd(a),
		newBuildCmd(a),
		newRealizeCmd(a),
		newCatalogCmd(a),
		newFeasibleCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		overrides[key] = f.Value.String()
	}
	if a.verbose {
		overrides["log.level"] = "debug"
	}

	cfg, err := config.Load(a.cfgFile, overrides)
	if err != nil {
		return err
	}
	if cfg.Build.Workers == 0 {
		cfg.Build.Workers = runtime.NumCPU()
	}

	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	a.runID = uuid.NewString()
	a.cfg = cfg
	a.log = log.With(zap.String("run_id", a.runID), zap.String("command", cmd.Name()))
	a.closer = closer
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "srgcat version %s\n", Version)
		},
	}
}
