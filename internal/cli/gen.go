package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenCommand() *cobra.Command {
	var (
		flags factoryFlags
		count int
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print freshly generated ids, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}

			f, err := flags.factory()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				id, err := f.Generate()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of ids")
	return cmd
}
