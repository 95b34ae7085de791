// SPDX-License-Identifier: MIT

package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

func newFeasibleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feasible",
		Short: "List feasible parameter tuples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tuples, err := loadFeasible(a.cfg)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, p := range tuples {
				fmt.Fprintf(w, "%d %d %d %d\n", p.V, p.K, p.Lambda, p.Mu)
			}
			return w.Flush()
		},
	}
	cmd.Flags().String("feasible", "", "read tuples from this file instead of enumerating")
	cmd.Flags().Int("vmin", 1, "smallest v")
	cmd.Flags().Int("vmax", 300, "largest v")
	return cmd
}
