package engine

import (
	"testing"

	json "github.com/goccy/go-json"

	"household-engine/internal/model"
	"household-engine/internal/params"
)

func mut(name, props string) model.Mutation {
	return model.Mutation{MutationDefinitionName: name, MutationProperties: json.RawMessage(props)}
}

func TestScenarioSteps(t *testing.T) {
	e := New(params.Default())

	h := baseHousehold()
	h.Children = []model.Child{{Age: 9}}

	resp := e.ProcessScenario(model.ScenarioRequest{
		Household: h,
		Mutations: []model.Mutation{
			mut("add_child", `{"age": 1}`),
			mut("move_municipality", `{"municipality": "Aarhus"}`),
		},
	})

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s: %+v", resp.CalculationMetadata.CalculationOutcome, resp.Messages)
	}
	if resp.Baseline == nil {
		t.Fatal("expected baseline")
	}
	nearlyEqual(t, "baseline child benefit", resp.Baseline.ChildBenefit, 13188)

	if len(resp.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(resp.Steps))
	}

	first := resp.Steps[0]
	nearlyEqual(t, "child benefit after add", first.Result.ChildBenefit, 13188+21168)
	if len(first.Household.Children) != 2 {
		t.Fatalf("expected 2 children after add, got %d", len(first.Household.Children))
	}
	found := false
	for _, c := range first.Changes {
		if c.Path == "/child_benefit" && c.Op == "replace" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected child_benefit change, got %+v", first.Changes)
	}

	second := resp.Steps[1]
	if second.Household.Municipality != "Aarhus" {
		t.Fatalf("expected Aarhus, got %s", second.Household.Municipality)
	}
	if second.Result.TotalTax <= first.Result.TotalTax {
		t.Fatalf("expected higher tax in Aarhus: %v <= %v", second.Result.TotalTax, first.Result.TotalTax)
	}

	// the caller's household is untouched
	if len(h.Children) != 1 {
		t.Fatalf("input household was mutated: %+v", h.Children)
	}
}

func TestScenarioStopsAtUnknownMutation(t *testing.T) {
	e := New(params.Default())

	resp := e.ProcessScenario(model.ScenarioRequest{
		Household: baseHousehold(),
		Mutations: []model.Mutation{
			mut("set_income", `{"annual_income": 500000}`),
			mut("win_lottery", `{}`),
			mut("set_income", `{"annual_income": 600000}`),
		},
	})

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if len(resp.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(resp.Steps))
	}
	if resp.Steps[1].Result != nil {
		t.Fatal("expected no result for failed step")
	}
	if len(resp.Messages) != 1 || resp.Messages[0].Code != model.CodeUnknownMutation {
		t.Fatalf("expected UNKNOWN_MUTATION, got %+v", resp.Messages)
	}
	if resp.Steps[1].CalculationMessageIndexes[0] != 0 {
		t.Fatalf("unexpected message index %v", resp.Steps[1].CalculationMessageIndexes)
	}
}

func TestScenarioRejectsInvalidResultingHousehold(t *testing.T) {
	e := New(params.Default())

	resp := e.ProcessScenario(model.ScenarioRequest{
		Household: baseHousehold(),
		Mutations: []model.Mutation{
			mut("move_municipality", `{"municipality": "Atlantis"}`),
		},
	})

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if len(resp.Messages) != 1 || resp.Messages[0].Code != model.CodeUnknownMunicipality {
		t.Fatalf("expected UNKNOWN_MUNICIPALITY, got %+v", resp.Messages)
	}
	if resp.Steps[0].Household.Municipality != "København" {
		t.Fatalf("failed step should report the unchanged household, got %s", resp.Steps[0].Household.Municipality)
	}
}

func TestScenarioInvalidBaseline(t *testing.T) {
	e := New(params.Default())

	h := baseHousehold()
	h.AnnualIncome = -1

	resp := e.ProcessScenario(model.ScenarioRequest{
		Household: h,
		Mutations: []model.Mutation{mut("set_income", `{"annual_income": 1}`)},
	})

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.Baseline != nil || len(resp.Steps) != 0 {
		t.Fatalf("expected no baseline and no steps, got %+v", resp)
	}
}

func TestDiffStepReportsFailureAsWarning(t *testing.T) {
	changes, msgs := diffStep(&model.Result{}, map[string]any{"net_income": make(chan int)})
	if len(changes) != 0 {
		t.Fatalf("expected no changes, got %+v", changes)
	}
	if len(msgs) != 1 || msgs[0].Level != model.LevelWarning || msgs[0].Code != model.CodeChangesUnavailable {
		t.Fatalf("expected CHANGES_UNAVAILABLE warning, got %+v", msgs)
	}

	changes, msgs = diffStep(&model.Result{NetIncome: 1}, &model.Result{NetIncome: 2})
	if len(msgs) != 0 {
		t.Fatalf("unexpected messages %+v", msgs)
	}
	if len(changes) != 1 || changes[0].Path != "/net_income" {
		t.Fatalf("expected net_income change, got %+v", changes)
	}
}
