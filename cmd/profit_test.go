package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/orbtrade"
)

func testStore(t *testing.T) *orbtrade.Store {
	t.Helper()
	dir := t.TempDir()
	baseline := filepath.Join(dir, "items.json")
	if err := os.WriteFile(baseline, []byte(`{"Divine Orb": 180}`), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := orbtrade.Open(baseline, filepath.Join(dir, "prices.json"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	return s
}

func TestItemCell(t *testing.T) {
	if got := itemCell(""); got != "-" {
		t.Errorf("itemCell(\"\") = %q, want -", got)
	}
	if got := itemCell("Divine Orb"); got != "Divine Orb" {
		t.Errorf("itemCell(Divine Orb) = %q", got)
	}
}

func TestPriceCell(t *testing.T) {
	store := testStore(t)

	if got := priceCell(store, ""); got != "-" {
		t.Errorf("priceCell of empty selection = %q, want -", got)
	}
	if got := priceCell(store, "Orb of Nonsense"); got != "unknown" {
		t.Errorf("priceCell of unknown item = %q, want unknown", got)
	}
	if got := priceCell(store, "Divine Orb"); got != "180.00 Exalted Orb" {
		t.Errorf("priceCell of known item = %q, want 180.00 Exalted Orb", got)
	}
}
