package orbtrade

import (
	"testing"
)

func TestCatalogZeroPriceIsNotAbsence(t *testing.T) {
	c := NewCatalog()
	c.Set("Mirror Shard", A(0))

	price, ok := c.Get("Mirror Shard")
	if !ok {
		t.Fatal("zero-priced item reported absent")
	}
	if !price.IsZero() {
		t.Errorf("price = %s, want zero", price)
	}
	if _, ok := c.Get("Mirror"); ok {
		t.Error("lookup is not exact: prefix matched a key")
	}
}

func TestCatalogKeepsInsertionOrder(t *testing.T) {
	c := NewCatalog()
	c.Set("Chaos Orb", A(1))
	c.Set("Divine Orb", A(180))
	c.Set("Chaos Orb", A(2)) // re-setting must not move the key

	got := c.Names()
	want := []string{"Chaos Orb", "Divine Orb"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCatalogMergeOverrideWins(t *testing.T) {
	baseline := NewCatalog()
	baseline.Set("Chaos Orb", A(1))
	baseline.Set("Divine Orb", A(180))

	override := NewCatalog()
	override.Set("Divine Orb", A(200))
	override.Set("Annulment Orb", A(15))

	baseline.Merge(override)

	if price, _ := baseline.Get("Divine Orb"); !price.Equal(A(200)) {
		t.Errorf("Divine Orb = %s, want overridden 200", price)
	}
	if price, _ := baseline.Get("Chaos Orb"); !price.Equal(A(1)) {
		t.Errorf("Chaos Orb = %s, want untouched 1", price)
	}

	// baseline keys first, new override keys appended.
	want := []string{"Chaos Orb", "Divine Orb", "Annulment Orb"}
	got := baseline.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCatalogCloneIsIndependent(t *testing.T) {
	c := NewCatalog()
	c.Set("Chaos Orb", A(1))

	clone := c.Clone()
	clone.Set("Chaos Orb", A(99))
	clone.Set("Divine Orb", A(180))

	if price, _ := c.Get("Chaos Orb"); !price.Equal(A(1)) {
		t.Errorf("mutating the clone changed the original: %s", price)
	}
	if c.Has("Divine Orb") {
		t.Error("adding to the clone added to the original")
	}
}
