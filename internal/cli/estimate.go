package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEstimateCommand() *cobra.Command {
	var (
		flags       factoryFlags
		perSecond   float64
		probability float64
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate how long ids can be generated before a collision becomes likely",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := flags.factory()
			if err != nil {
				return err
			}

			msg, err := f.CollisionProbability(perSecond, probability, nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "length: %d characters, %d bits (%.1f random bits)\n", f.Length(), f.Bits(), f.EntropyBits())
			fmt.Fprintln(out, msg)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&perSecond, "per-second", 1000, "ids generated per second")
	cmd.Flags().Float64Var(&probability, "probability", 0.01, "target probability of at least one collision")
	return cmd
}
