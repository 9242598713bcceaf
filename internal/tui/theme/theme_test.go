package theme

import "testing"

func TestByNameFallsBackToViolet(t *testing.T) {
	if got := ByName("no-such-theme"); got.Name != "violet" {
		t.Fatalf("ByName fallback = %q, want violet", got.Name)
	}
	if got := ByName("tokyo-night"); got.Name != "tokyo-night" {
		t.Fatalf("ByName(tokyo-night) = %q", got.Name)
	}
}

func TestNextCyclesThroughAll(t *testing.T) {
	defer SetActive("violet")

	SetActive(All[0].Name)
	seen := map[string]bool{}
	for range All {
		seen[Active.Name] = true
		Active = Next()
	}
	if len(seen) != len(All) {
		t.Fatalf("cycled through %d themes, want %d", len(seen), len(All))
	}
	if Active.Name != All[0].Name {
		t.Fatalf("after full cycle active = %q, want %q", Active.Name, All[0].Name)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(All) || names[0] != "violet" {
		t.Fatalf("Names() = %v", names)
	}
}
