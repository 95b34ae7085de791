// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/srgcat/design"
	"github.com/katalvlaran/srgcat/srg"
)

func newClassifyCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "classify v k lambda mu",
		Short: "Find a construction recipe for one parameter tuple",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseParams(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			c := srg.NewClassifier(design.NewOracle())

			e, ok := srg.Lookup(c, p)
			a.log.Debug("lookup", zap.Stringer("params", p), zap.Bool("found", ok))
			if !ok {
				fmt.Fprintf(out, "%s: %s\n", p, color.YellowString("no recipe"))
			} else {
				fmt.Fprintf(out, "%s: %s [%s]\n", p, color.GreenString(e.Recipe.String()), e.Family)
			}

			if all {
				for _, f := range c.Matches(p) {
					fmt.Fprintf(out, "  matches %s\n", f)
				}
				if q := p.Complement(); q != p {
					for _, f := range c.Matches(q) {
						fmt.Fprintf(out, "  complement %s matches %s\n", q, f)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list every matching family, not only the first")
	return cmd
}
