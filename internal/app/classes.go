package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andyballingall/curvecheck/internal/curve"
)

func NewClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   ClassesCmdName,
		Short: "List document classes and the values of their discriminator keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-12s %-11s %s\n", "CLASS", "KEY", "VALUES")
			for _, c := range curve.Classes {
				values := "-"
				if v := c.Variants(); len(v) > 0 {
					values = strings.Join(v, ", ")
				}
				fmt.Fprintf(w, "%-12s %-11s %s\n", c, c.Discriminator(), values)
			}
			return nil
		},
	}
}
