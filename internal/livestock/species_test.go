package livestock

import "testing"

func TestContains(t *testing.T) {
	p := Contains("Steer")
	if !p("Grown Steer") {
		t.Error("Contains should match substring")
	}
	if p("Grown Bull") {
		t.Error("Contains should not match absent substring")
	}
}

func TestContainsAny(t *testing.T) {
	p := ContainsAny("Steer", "Bull", "Heifer")

	tests := []struct {
		category string
		want     bool
	}{
		{"Weaner Steer", true},
		{"Weaner Bull", true},
		{"Weaner Heifer", true},
		{"Weaner Ewe", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := p(tt.category); got != tt.want {
			t.Errorf("ContainsAny(%q) = %v, want %v", tt.category, got, tt.want)
		}
	}
}

func TestExact(t *testing.T) {
	p := Exact("Breeder")
	if !p("Breeder") {
		t.Error("Exact should match identical name")
	}
	if p("Breeder Doe") {
		t.Error("Exact should not match a superstring")
	}
}

func TestAllOf(t *testing.T) {
	p := AllOf(Contains("Weaner"), ContainsAny("Steer", "Bull", "Heifer"))
	if !p("Weaner Steer") {
		t.Error("AllOf should match when every predicate matches")
	}
	if p("Weaner Ewe") {
		t.Error("AllOf should fail when one predicate fails")
	}
	if p("Feeder Steer") {
		t.Error("AllOf should fail when the first predicate fails")
	}
}

func TestAnyOf(t *testing.T) {
	p := AnyOf(ContainsAny("Breeding", "Heifer", "Dry Cow"), Exact("Breeder"))
	if !p("Breeder") {
		t.Error("AnyOf should match via the exact predicate")
	}
	if !p("Feeder Heifer") {
		t.Error("AnyOf should match via the substring predicate")
	}
	if p("Breeder Doe") {
		t.Error("AnyOf should not match when no predicate matches")
	}
}
