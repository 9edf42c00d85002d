// Package cli provides the household-engine commands.
package cli

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"household-engine/internal/config"
	"household-engine/internal/engine"
	"household-engine/internal/logging"
	"household-engine/internal/model"
	"household-engine/internal/params"
)

type app struct {
	cfg    *config.Config
	log    *zap.Logger
	engine *engine.Engine
}

// Execute runs the CLI
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Configuration comes from the
// environment; flags override it.
func NewRootCommand() *cobra.Command {
	a := &app{cfg: config.Load()}

	root := &cobra.Command{
		Use:   "household-engine",
		Short: "Calculate household taxes, benefits and disposable income",
		Long: `household-engine computes gross income, taxes and means-tested
subsidies for a household and derives its disposable income.

Examples:
  household-engine calc --input household.json
  household-engine sweep --input household.json --start 200000 --end 600000
  household-engine serve`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVar(&a.cfg.ParamsFile, "params", a.cfg.ParamsFile, "parameter table JSON file (default is the built-in table)")
	root.PersistentFlags().StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(
		newServeCommand(a),
		newCalcCommand(a),
		newSweepCommand(a),
		newScenarioCommand(a),
		newMunicipalitiesCommand(a),
	)
	return root
}

func (a *app) init() error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.log = logging.New(logging.Config{Level: a.cfg.LogLevel, Format: a.cfg.LogFormat})

	table, err := params.Load(a.cfg.ParamsFile)
	if err != nil {
		return fmt.Errorf("load parameters: %w", err)
	}
	a.engine = engine.New(table, engine.WithSweepWorkers(a.cfg.SweepWorkers))
	return nil
}

// readInput reads a file, or the command's stdin when path is "-".
func readInput(path string, cmd *cobra.Command) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func readHousehold(path string, cmd *cobra.Command) (model.Household, error) {
	var h model.Household

	data, err := readInput(path, cmd)
	if err != nil {
		return h, fmt.Errorf("read household: %w", err)
	}
	if err := json.Unmarshal(data, &h); err != nil {
		return h, fmt.Errorf("decode household: %w", err)
	}
	return h, nil
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
