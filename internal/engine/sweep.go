package engine

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"household-engine/internal/model"
)

// Sweep recomputes the household at every income of the range, keeping
// every other input fixed. Points are evaluated concurrently and returned in
// income order. The marginal rate of a point is the share of the last income
// step not kept as net income; the first point has marginal rate 0.
func (e *Engine) Sweep(ctx context.Context, h model.Household, r model.SweepRange) ([]model.SweepPoint, error) {
	msgs := append(e.Validate(h.WithIncome(r.Start)), validateRange(r)...)
	if hasCritical(msgs) {
		return nil, &ValidationError{Messages: numbered(msgs)}
	}

	n := r.Points()
	points := make([]model.SweepPoint, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.sweepWorkers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			income := r.Income(i)
			res := e.calculate(h.WithIncome(income))
			points[i] = model.SweepPoint{
				Income:              income,
				NetIncome:           res.NetIncome,
				EffectiveTaxRatePct: res.EffectiveTaxRatePct,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// a cancelled parent can stop the loop before any goroutine reports it
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i := 1; i < n; i++ {
		kept := (points[i].NetIncome - points[i-1].NetIncome) / r.Step
		points[i].MarginalTaxRatePct = 100 - kept*100
	}
	return points, nil
}

// ProcessSweep runs Sweep and wraps the outcome like Process does.
func (e *Engine) ProcessSweep(ctx context.Context, req model.SweepRequest) (*model.SweepResponse, error) {
	start := time.Now()

	r := model.DefaultSweepRange()
	if req.Range != nil {
		r = *req.Range
	}

	resp := &model.SweepResponse{Range: r, Points: []model.SweepPoint{}}

	points, err := e.Sweep(ctx, req.Household, r)
	var verr *ValidationError
	switch {
	case err == nil:
		resp.Points = points
		resp.Messages = numbered(e.Validate(req.Household.WithIncome(r.Start)))
		resp.CalculationMetadata = e.metadata(start, model.OutcomeSuccess)
	case errors.As(err, &verr):
		resp.Messages = verr.Messages
		resp.CalculationMetadata = e.metadata(start, model.OutcomeFailure)
	default:
		return nil, err
	}
	return resp, nil
}
