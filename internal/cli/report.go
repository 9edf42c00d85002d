package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"household-engine/internal/model"
)

// formatKr rounds to whole kroner and groups thousands.
func formatKr(v float64) string {
	return humanize.Comma(decimal.NewFromFloat(v).Round(0).IntPart()) + " kr"
}

func formatPct(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

type reportLine struct {
	label string
	value string
}

func renderResult(w io.Writer, r *model.Result, taxDetail bool) error {
	sections := [][]reportLine{
		{
			{"Gross income", formatKr(r.GrossIncome)},
			{"Net income", formatKr(r.NetIncome)},
			{"Effective tax rate", formatPct(r.EffectiveTaxRatePct)},
			{"Total tax", formatKr(r.TotalTax)},
		},
		{
			{"Child benefit", formatKr(r.ChildBenefit)},
			{"Daycare subsidy", formatKr(r.DaycareSubsidy)},
			{"Student grant", formatKr(r.StudentGrant)},
			{"Housing allowance", formatKr(r.HousingBenefit)},
			{"Rent support", formatKr(r.RentSupport)},
			{"Commute deduction", formatKr(r.CommuteDeduction)},
			{"Tax saved by commute deduction", formatKr(r.TaxSavingFromCommuteDeduction)},
		},
	}
	if taxDetail {
		t := r.Tax
		sections = append(sections, []reportLine{
			{"Social contribution", formatKr(t.SocialContribution)},
			{"Employment deduction", formatKr(t.EmploymentDeduction)},
			{"Job deduction", formatKr(t.JobDeduction)},
			{"Single parent deduction", formatKr(t.SingleParentDeduction)},
			{"Taxable base", formatKr(t.TaxableBase)},
			{"Bottom bracket tax", formatKr(t.BottomBracketTax)},
			{"Top bracket tax", formatKr(t.TopBracketTax)},
			{"Municipal tax", formatKr(t.MunicipalTax)},
		})
	}

	for i, lines := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		for _, l := range lines {
			if _, err := fmt.Fprintf(w, "%-32s %16s\n", l.label, l.value); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderSweep(w io.Writer, points []model.SweepPoint) error {
	if _, err := fmt.Fprintf(w, "%16s %16s %10s %10s\n", "income", "net", "effective", "marginal"); err != nil {
		return err
	}
	for _, p := range points {
		_, err := fmt.Fprintf(w, "%16s %16s %10s %10s\n",
			formatKr(p.Income), formatKr(p.NetIncome),
			formatPct(p.EffectiveTaxRatePct), formatPct(p.MarginalTaxRatePct))
		if err != nil {
			return err
		}
	}
	return nil
}
