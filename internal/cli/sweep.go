package cli

import (
	"github.com/spf13/cobra"

	"household-engine/internal/model"
)

func newSweepCommand(a *app) *cobra.Command {
	var (
		input  string
		asJSON bool
	)
	r := model.DefaultSweepRange()

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Project effective and marginal tax rates across an income range",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := readHousehold(input, cmd)
			if err != nil {
				return err
			}

			points, err := a.engine.Sweep(cmd.Context(), h, r)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), points)
			}
			return renderSweep(cmd.OutOrStdout(), points)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "household JSON file, - for stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print points as JSON")
	cmd.Flags().Float64Var(&r.Start, "start", r.Start, "first income")
	cmd.Flags().Float64Var(&r.End, "end", r.End, "income upper bound (exclusive)")
	cmd.Flags().Float64Var(&r.Step, "step", r.Step, "income step")
	return cmd
}
