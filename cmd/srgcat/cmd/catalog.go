// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/srgcat/catalog"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Import, dump and summarise reference catalogs",
	}
	cmd.PersistentFlags().String("catalog", "", "reference catalog file")
	cmd.PersistentFlags().String("format", "", "catalog format: brouwer, yaml or sqlite")
	cmd.PersistentFlags().String("store", "", "SQLite database")

	cmd.AddCommand(newCatalogImportCmd(a), newCatalogDumpCmd(a), newCatalogStatsCmd(a))
	return cmd
}

func newCatalogImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Copy the configured catalog into the SQLite store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if a.cfg.Store.Path == "" {
				return fmt.Errorf("catalog import: no store path (--store or store.path)")
			}
			cat, err := loadCatalog(ctx, a.cfg)
			if err != nil {
				return err
			}
			s, err := catalog.Open(a.cfg.Store.Path)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.SaveCatalog(ctx, cat); err != nil {
				return err
			}
			a.log.Info("catalog imported", zap.Int("entries", len(cat)), zap.String("store", a.cfg.Store.Path))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d entries into %s\n",
				color.GreenString("imported"), len(cat), a.cfg.Store.Path)
			return nil
		},
	}
}

func newCatalogDumpCmd(a *app) *cobra.Command {
	var (
		as     string
		output string
	)
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the configured catalog as text, yaml or brouwer rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			switch as {
			case "text":
				err = catalog.WriteText(w, cat)
			case "yaml":
				err = catalog.WriteYAML(w, cat)
			case "brouwer":
				err = catalog.WriteBrouwer(w, cat)
			default:
				return fmt.Errorf("catalog dump: unknown output format %q", as)
			}
			if err != nil {
				return err
			}
			if output != "" {
				a.log.Info("catalog written", zap.String("path", output), zap.String("as", as))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&as, "as", "text", "output format: text, yaml or brouwer")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func newCatalogStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count catalog entries by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			return catalog.WriteStats(cmd.OutOrStdout(), catalog.Stats(cat))
		},
	}
}
