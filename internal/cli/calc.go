package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"household-engine/internal/engine"
	"household-engine/internal/model"
)

func newCalcCommand(a *app) *cobra.Command {
	var (
		input   string
		asJSON  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate taxes, benefits and net income for one household",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := readHousehold(input, cmd)
			if err != nil {
				return err
			}

			if asJSON {
				resp := a.engine.Process(h)
				if err := writeJSON(cmd.OutOrStdout(), resp); err != nil {
					return err
				}
				if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
					return errors.New("calculation failed")
				}
				return nil
			}

			res, err := a.engine.Calculate(h)
			var verr *engine.ValidationError
			if errors.As(err, &verr) {
				for _, m := range verr.Messages {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %s\n", m.Level, m.Code, m.Message)
				}
				return errors.New("calculation failed")
			}
			if err != nil {
				return err
			}

			for _, m := range a.engine.Validate(h) {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %s\n", m.Level, m.Code, m.Message)
			}
			return renderResult(cmd.OutOrStdout(), res, verbose)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "household JSON file, - for stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full calculation response as JSON")
	cmd.Flags().BoolVar(&verbose, "tax-detail", false, "include the itemised tax calculation")
	return cmd
}
