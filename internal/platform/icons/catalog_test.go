package icons

import "testing"

func TestEveryCatalogIconHasLucideName(t *testing.T) {
	t.Parallel()

	seen := map[ID]bool{}
	for _, definition := range Catalog() {
		if seen[definition.ID] {
			t.Fatalf("duplicate icon id %q", definition.ID)
		}
		seen[definition.ID] = true
		if definition.Name == "" || definition.Description == "" {
			t.Fatalf("icon %q missing name or description", definition.ID)
		}
		if _, ok := LucideName(definition.ID); !ok {
			t.Fatalf("icon %q has no lucide name", definition.ID)
		}
	}
	if len(seen) != len(lucideIconNames) {
		t.Fatalf("catalog has %d icons, lucide map has %d", len(seen), len(lucideIconNames))
	}
}

func TestLookupAndDefault(t *testing.T) {
	t.Parallel()

	if definition, ok := Lookup(Bank); !ok || definition.Name != "Bank" {
		t.Fatalf("Lookup(Bank) = %#v, %v", definition, ok)
	}
	if _, ok := Lookup(ID("missing")); ok {
		t.Fatal("expected missing icon lookup to fail")
	}
	if got := LucideNameOrDefault(ID("missing")); got != "sparkle" {
		t.Fatalf("LucideNameOrDefault = %q, want sparkle", got)
	}
}
