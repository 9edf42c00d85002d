package params

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	tbl, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.Tax.PersonalAllowance != 48000 {
		t.Fatalf("expected personal allowance 48000, got %v", tbl.Tax.PersonalAllowance)
	}
	if len(tbl.Municipalities) != 3 {
		t.Fatalf("expected 3 municipalities, got %d", len(tbl.Municipalities))
	}
}

func TestLoadAlternateYear(t *testing.T) {
	tbl := Default()
	tbl.Year = 2026
	tbl.Tax.PersonalAllowance = 51600
	tbl.Municipalities["Odense"] = Municipality{
		TaxRatePct:  25.5,
		DaycareFees: map[string]float64{BandToddler: 40000, BandPreschool: 22000},
	}

	data, err := json.Marshal(tbl)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "params.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Year != 2026 || loaded.Tax.PersonalAllowance != 51600 {
		t.Fatalf("alternate values not loaded: year=%d allowance=%v", loaded.Year, loaded.Tax.PersonalAllowance)
	}
	m, ok := loaded.Municipality("Odense")
	if !ok {
		t.Fatal("expected Odense to be present")
	}
	if m.TaxRate() != 0.255 {
		t.Fatalf("expected rate 0.255, got %v", m.TaxRate())
	}

	// the built-in table is untouched
	if Default().Tax.PersonalAllowance != 48000 {
		t.Fatal("default table was mutated")
	}
}

func TestLoadRejectsTableWithoutMunicipalities(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	if err := os.WriteFile(path, []byte(`{"year":2025,"daycare":{"income_step":4614}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for table without municipalities")
	}
	if !strings.Contains(err.Error(), "no municipalities") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestMunicipalityNamesSorted(t *testing.T) {
	names := Default().MunicipalityNames()
	want := []string{"Aarhus", "Frederiksberg", "København"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}
