package jsonpatch

import (
	"testing"

	"household-engine/internal/model"
)

func TestDiffValuesResults(t *testing.T) {
	a := &model.Result{GrossIncome: 450000, NetIncome: 297209.75, ChildBenefit: 0}
	b := &model.Result{GrossIncome: 471168, NetIncome: 318377.75, ChildBenefit: 21168}

	ops, err := DiffValues(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []model.Change{
		{Op: "replace", Path: "/child_benefit", Value: float64(21168)},
		{Op: "replace", Path: "/gross_income", Value: float64(471168)},
		{Op: "replace", Path: "/net_income", Value: 318377.75},
	}
	if len(ops) != len(want) {
		t.Fatalf("expected %d ops, got %d: %+v", len(want), len(ops), ops)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("op %d = %+v, want %+v", i, ops[i], want[i])
		}
	}
}

func TestDiffIdentical(t *testing.T) {
	r := &model.Result{GrossIncome: 1, TotalTax: 2}
	ops, err := DiffValues(r, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ops) != 0 {
		t.Fatalf("expected no ops, got %+v", ops)
	}
}

func TestDiffArraysAndObjects(t *testing.T) {
	a := map[string]any{
		"children": []any{map[string]any{"age": float64(1)}, map[string]any{"age": float64(4)}},
		"gone":     true,
		"a/b":      "x",
	}
	b := map[string]any{
		"children": []any{map[string]any{"age": float64(2)}},
		"new":      "y",
		"a/b":      "x",
	}

	ops := Diff(a, b, "")

	want := []model.Change{
		{Op: "remove", Path: "/gone"},
		{Op: "replace", Path: "/children/0/age", Value: float64(2)},
		{Op: "remove", Path: "/children/1"},
		{Op: "add", Path: "/new", Value: "y"},
	}
	if len(ops) != len(want) {
		t.Fatalf("expected %d ops, got %d: %+v", len(want), len(ops), ops)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("op %d = %+v, want %+v", i, ops[i], want[i])
		}
	}
}

func TestEscapeKey(t *testing.T) {
	if got := escapeKey("a/b~c"); got != "a~1b~0c" {
		t.Fatalf("escapeKey = %q", got)
	}
}
