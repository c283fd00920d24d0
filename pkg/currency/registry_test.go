package currency

import (
	"errors"
	"sort"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		expectCode string
		expectErr  bool
	}{
		{name: "Exact code", code: "INR", expectCode: "INR"},
		{name: "Lowercase code", code: "usd", expectCode: "USD"},
		{name: "Padded code", code: " EUR ", expectCode: "EUR"},
		{name: "Unknown code", code: "XXX", expectErr: true},
		{name: "Empty code", code: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Lookup(tt.code)
			if tt.expectErr {
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("Lookup(%q) error = %v, expected ErrNotFound", tt.code, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", tt.code, err)
			}
			if c.Code != tt.expectCode {
				t.Errorf("Lookup(%q).Code = %s, expected %s", tt.code, c.Code, tt.expectCode)
			}
		})
	}
}

func TestRegistryIsSortedAndUnique(t *testing.T) {
	if !sort.SliceIsSorted(Currencies, func(i, j int) bool {
		return Currencies[i].Code < Currencies[j].Code
	}) {
		t.Error("registry is not sorted by code")
	}

	seen := make(map[string]bool, len(Currencies))
	for _, c := range Currencies {
		if seen[c.Code] {
			t.Errorf("duplicate code %s", c.Code)
		}
		seen[c.Code] = true
		if len(c.Code) != 3 {
			t.Errorf("code %q is not three letters", c.Code)
		}
		if c.Name == "" || c.Symbol == "" {
			t.Errorf("entry %s has empty name or symbol", c.Code)
		}
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		expectCodes []string
		expectAll   bool
	}{
		{name: "Empty query returns all", query: "", expectAll: true},
		{name: "Whitespace query returns all", query: "   ", expectAll: true},
		{name: "Code match", query: "inr", expectCodes: []string{"INR"}},
		{name: "No match", query: "zzzz", expectCodes: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(Currencies, tt.query)
			if tt.expectAll {
				if len(got) != len(Currencies) {
					t.Fatalf("Filter returned %d entries, expected all %d", len(got), len(Currencies))
				}
				return
			}
			if len(got) != len(tt.expectCodes) {
				t.Fatalf("Filter(%q) returned %d entries, expected %d", tt.query, len(got), len(tt.expectCodes))
			}
			for i, code := range tt.expectCodes {
				if got[i].Code != code {
					t.Errorf("Filter(%q)[%d].Code = %s, expected %s", tt.query, i, got[i].Code, code)
				}
			}
		})
	}
}

func TestFilterMatchesCodeOrName(t *testing.T) {
	got := Filter(Currencies, "ind")
	if len(got) == 0 {
		t.Fatal("expected matches for query \"ind\"")
	}
	foundINR := false
	for _, c := range got {
		codeMatch := Filter([]Currency{c}, "ind")
		if len(codeMatch) != 1 {
			t.Errorf("entry %s does not actually match", c.Code)
		}
		if c.Code == "INR" {
			foundINR = true
		}
	}
	if !foundINR {
		t.Error("expected INR (Indian Rupee) in results for \"ind\"")
	}
}

func TestBySet(t *testing.T) {
	if got := BySet(SetInvestment); len(got) != len(InvestmentSet) || got[0].Code != "INR" {
		t.Errorf("investment set unexpected: %v", got)
	}
	if got := BySet(SetMortgage); len(got) != len(MortgageSet) || got[0].Code != "USD" {
		t.Errorf("mortgage set unexpected: %v", got)
	}
	if got := BySet("anything-else"); len(got) != len(Currencies) {
		t.Errorf("unknown set should return the full registry, got %d entries", len(got))
	}
}

func TestDefault(t *testing.T) {
	if Default().Code != "AED" {
		t.Errorf("Default() = %s, expected first registry entry AED", Default().Code)
	}
}
