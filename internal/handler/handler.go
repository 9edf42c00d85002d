package handler

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"household-engine/internal/engine"
	"household-engine/internal/model"
)

const defaultSweepTimeout = 10 * time.Second

type Handler struct {
	engine       *engine.Engine
	log          *zap.Logger
	sweepTimeout time.Duration
}

func New(e *engine.Engine, log *zap.Logger) *Handler {
	return &Handler{engine: e, log: log, sweepTimeout: defaultSweepTimeout}
}

// Handle routes a request and logs its outcome.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	switch string(ctx.Path()) {
	case "/calculate":
		h.handleCalculate(ctx)
	case "/sweep":
		h.handleSweep(ctx)
	case "/scenario":
		h.handleScenario(ctx)
	case "/municipalities":
		h.handleMunicipalities(ctx)
	case "/healthz":
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}

	h.log.Info("request",
		zap.ByteString("method", ctx.Method()),
		zap.ByteString("path", ctx.Path()),
		zap.Int("status", ctx.Response.StatusCode()),
		zap.Duration("duration", time.Since(start)),
	)
}

func (h *Handler) handleCalculate(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var household model.Household
	if err := json.Unmarshal(ctx.PostBody(), &household); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := h.engine.Process(household)

	status := fasthttp.StatusOK
	if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
		status = fasthttp.StatusUnprocessableEntity
	}
	writeJSON(ctx, status, resp)
}

func (h *Handler) handleSweep(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.SweepRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	sweepCtx, cancel := context.WithTimeout(context.Background(), h.sweepTimeout)
	defer cancel()

	resp, err := h.engine.ProcessSweep(sweepCtx, req)
	if err != nil {
		h.log.Error("sweep failed", zap.Error(err))
		writeError(ctx, fasthttp.StatusServiceUnavailable, "Sweep did not complete: "+err.Error())
		return
	}

	status := fasthttp.StatusOK
	if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
		status = fasthttp.StatusUnprocessableEntity
	}
	writeJSON(ctx, status, resp)
}

func (h *Handler) handleScenario(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.ScenarioRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := h.engine.ProcessScenario(req)

	status := fasthttp.StatusOK
	if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
		status = fasthttp.StatusUnprocessableEntity
	}
	writeJSON(ctx, status, resp)
}

func (h *Handler) handleMunicipalities(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	p := h.engine.Params()
	out := make([]model.MunicipalityInfo, 0, len(p.Municipalities))
	for _, name := range p.MunicipalityNames() {
		m := p.Municipalities[name]
		out = append(out, model.MunicipalityInfo{
			Name:        name,
			TaxRatePct:  m.TaxRatePct,
			DaycareFees: m.DaycareFees,
		})
	}
	writeJSON(ctx, fasthttp.StatusOK, out)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Encoding failed: "+err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	b, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}
