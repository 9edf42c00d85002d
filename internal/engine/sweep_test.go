package engine

import (
	"context"
	"errors"
	"math"
	"testing"

	"household-engine/internal/model"
	"household-engine/internal/params"
)

func TestSweepDefaultRange(t *testing.T) {
	e := New(params.Default())

	points, err := e.Sweep(context.Background(), baseHousehold(), model.DefaultSweepRange())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 900 {
		t.Fatalf("expected 900 points, got %d", len(points))
	}
	if points[0].Income != 100000 || points[899].Income != 999000 {
		t.Fatalf("unexpected range bounds %v..%v", points[0].Income, points[899].Income)
	}
	if points[0].MarginalTaxRatePct != 0 {
		t.Fatalf("expected first marginal rate 0, got %v", points[0].MarginalTaxRatePct)
	}
}

func TestSweepMatchesCalculate(t *testing.T) {
	e := New(params.Default(), WithSweepWorkers(8))

	h := baseHousehold()
	h.Children = []model.Child{{Age: 2}, {Age: 5}}
	h.IsSingleParent = true
	r := model.SweepRange{Start: 400000, End: 460000, Step: 10000}

	points, err := e.Sweep(context.Background(), h, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(points))
	}

	var prevNet float64
	for i, p := range points {
		res, err := e.Calculate(h.WithIncome(r.Income(i)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		nearlyEqual(t, "net", p.NetIncome, res.NetIncome)
		nearlyEqual(t, "effective", p.EffectiveTaxRatePct, res.EffectiveTaxRatePct)
		if i > 0 {
			want := 100 - (res.NetIncome-prevNet)/r.Step*100
			nearlyEqual(t, "marginal", p.MarginalTaxRatePct, want)
		}
		prevNet = res.NetIncome
	}
}

func TestSweepIgnoresHouseholdIncome(t *testing.T) {
	e := New(params.Default())

	h := baseHousehold()
	h.AnnualIncome = 0
	r := model.SweepRange{Start: 450000, End: 451000, Step: 1000}

	points, err := e.Sweep(context.Background(), h, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}
	nearlyEqual(t, "net", points[0].NetIncome, 297209.75)
}

func TestSweepRejectsInvalidRange(t *testing.T) {
	e := New(params.Default())

	for _, r := range []model.SweepRange{
		{Start: 100000, End: 100000, Step: 1000},
		{Start: 100000, End: 200000, Step: 0},
		{Start: -1000, End: 200000, Step: 1000},
		{Start: 0, End: 1e300, Step: 1},
		{Start: 0, End: 1e9, Step: 1},
		{Start: 0, End: math.Inf(1), Step: 1000},
		{Start: 0, End: 200000, Step: math.Inf(1)},
		{Start: 0, End: 200000, Step: math.NaN()},
	} {
		_, err := e.Sweep(context.Background(), baseHousehold(), r)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("range %+v: expected validation error, got %v", r, err)
		}
		if verr.Messages[len(verr.Messages)-1].Code != model.CodeInvalidSweepRange {
			t.Fatalf("range %+v: unexpected messages %+v", r, verr.Messages)
		}
	}
}

func TestSweepCancelled(t *testing.T) {
	e := New(params.Default())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Sweep(ctx, baseHousehold(), model.DefaultSweepRange())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestProcessSweep(t *testing.T) {
	e := New(params.Default())

	resp, err := e.ProcessSweep(context.Background(), model.SweepRequest{Household: baseHousehold()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.Range != model.DefaultSweepRange() {
		t.Fatalf("expected default range, got %+v", resp.Range)
	}
	if len(resp.Points) != 900 {
		t.Fatalf("expected 900 points, got %d", len(resp.Points))
	}

	bad := baseHousehold()
	bad.Municipality = "Atlantis"
	resp, err = e.ProcessSweep(context.Background(), model.SweepRequest{Household: bad})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if len(resp.Points) != 0 {
		t.Fatalf("expected no points, got %d", len(resp.Points))
	}
}

func TestSweepAcceptsLargestRange(t *testing.T) {
	e := New(params.Default())

	points, err := e.Sweep(context.Background(), baseHousehold(), model.SweepRange{Start: 0, End: 10000000, Step: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != maxSweepPoints {
		t.Fatalf("expected %d points, got %d", maxSweepPoints, len(points))
	}
}

func TestProcessSweepRejectsOversizedRange(t *testing.T) {
	e := New(params.Default())

	resp, err := e.ProcessSweep(context.Background(), model.SweepRequest{
		Household: baseHousehold(),
		Range:     &model.SweepRange{Start: 0, End: 1e300, Step: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if len(resp.Messages) != 1 || resp.Messages[0].Code != model.CodeInvalidSweepRange {
		t.Fatalf("expected INVALID_SWEEP_RANGE, got %+v", resp.Messages)
	}
}
