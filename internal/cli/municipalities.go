package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"household-engine/internal/params"
)

func newMunicipalitiesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "municipalities",
		Short: "List known municipalities with tax rates and daycare fees",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.engine.Params()
			w := cmd.OutOrStdout()
			for _, name := range p.MunicipalityNames() {
				m := p.Municipalities[name]
				fmt.Fprintf(w, "%-16s %6s  daycare 0-2: %s  3-5: %s\n",
					name,
					formatPct(m.TaxRatePct),
					formatKr(m.DaycareFees[params.BandToddler]),
					formatKr(m.DaycareFees[params.BandPreschool]),
				)
			}
			return nil
		},
	}
}
