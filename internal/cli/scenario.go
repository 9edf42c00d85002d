package cli

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"household-engine/internal/model"
)

func newScenarioCommand(a *app) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Apply household changes step by step and show what each changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(input, cmd)
			if err != nil {
				return fmt.Errorf("read scenario: %w", err)
			}

			var req model.ScenarioRequest
			if err := json.Unmarshal(data, &req); err != nil {
				return fmt.Errorf("decode scenario: %w", err)
			}

			resp := a.engine.ProcessScenario(req)
			if err := writeJSON(cmd.OutOrStdout(), resp); err != nil {
				return err
			}
			if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
				return errors.New("scenario failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "scenario JSON file, - for stdin")
	return cmd
}
