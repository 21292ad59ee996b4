package recommend

import (
	"testing"

	"dabbaMarket/domain"
)

func TestDietaryAllowed(t *testing.T) {
	var f DietaryFilter

	cases := []struct {
		name         string
		tags         string
		restrictions []string
		want         bool
	}{
		{"no restrictions passes everything", "non-veg,dairy,gluten", nil, true},
		{"vegetarian excludes non-veg", "non-veg,popular", []string{"vegetarian"}, false},
		{"vegetarian allows veg", "veg,popular", []string{"vegetarian"}, true},
		{"vegan excludes dairy", "veg,dairy", []string{"vegan"}, false},
		{"vegan excludes egg", "veg,egg", []string{"vegan"}, false},
		{"gluten-free excludes gluten", "veg,gluten", []string{"gluten-free"}, false},
		{"restrictions are conjunctive", "veg,gluten", []string{"vegetarian", "gluten-free"}, false},
		{"all restrictions satisfied", "veg", []string{"vegetarian", "vegan", "gluten-free"}, true},
		{"unknown restriction is a no-op", "non-veg", []string{"keto"}, true},
		{"case insensitive", "NON-VEG", []string{"Vegetarian"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.Allowed(tc.tags, tc.restrictions); got != tc.want {
				t.Errorf("Allowed(%q, %v) = %v, want %v", tc.tags, tc.restrictions, got, tc.want)
			}
		})
	}
}

func TestDietaryFilter_NeverPadsResult(t *testing.T) {
	var f DietaryFilter

	recs := []domain.Recommendation{
		{MenuItem: domain.MenuItem{ID: "M1", Tags: "veg"}},
		{MenuItem: domain.MenuItem{ID: "M2", Tags: "non-veg"}},
		{MenuItem: domain.MenuItem{ID: "M3", Tags: "veg,dairy"}},
	}

	// vegan forbids dairy and egg tags only; M2 stays in
	got := f.Filter(recs, []string{"vegan"})

	if len(got) != 2 || got[0].ID != "M1" || got[1].ID != "M2" {
		t.Fatalf("expected [M1 M2] to survive a vegan filter, got %v", ids(got))
	}
}

func TestDietaryFilterItems(t *testing.T) {
	var f DietaryFilter

	items := []domain.MenuItem{
		{ID: "M1", Tags: "veg,gluten"},
		{ID: "M2", Tags: "veg"},
	}

	got := f.FilterItems(items, []string{"gluten-free"})
	if len(got) != 1 || got[0].ID != "M2" {
		t.Fatalf("expected only M2 to survive, got %d items", len(got))
	}
}

func ids(recs []domain.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}
