package recommend

import (
	"strings"

	"dabbaMarket/domain"
)

// DietaryFilter hard-excludes items violating stated dietary restrictions.
// Rule-driven: each known restriction maps to the item tags it forbids.
// Unknown restriction strings are no-ops so new client-side restriction
// values never cause an error.
type DietaryFilter struct{}

// forbiddenTags maps a lower-case restriction to the tags that disqualify
// an item carrying any of them.
var forbiddenTags = map[string][]string{
	"vegetarian":  {"non-veg"},
	"vegan":       {"dairy", "egg"},
	"gluten-free": {"gluten"},
}

// Allowed reports whether an item with the given tag set satisfies ALL the
// restrictions: conjunctive across restrictions, disjunctive within a
// restriction's tag matches.
func (DietaryFilter) Allowed(tags string, restrictions []string) bool {
	if len(restrictions) == 0 {
		return true
	}

	lowered := strings.ToLower(tags)
	for _, restriction := range restrictions {
		forbidden, ok := forbiddenTags[strings.ToLower(strings.TrimSpace(restriction))]
		if !ok {
			continue
		}
		for _, tag := range forbidden {
			if strings.Contains(lowered, tag) {
				return false
			}
		}
	}
	return true
}

// Filter removes disqualified recommendations. Applied after scoring and
// before truncation; never pads the result back up to the requested limit.
func (f DietaryFilter) Filter(recs []domain.Recommendation, restrictions []string) []domain.Recommendation {
	if len(restrictions) == 0 {
		return recs
	}

	filtered := recs[:0:0]
	for _, rec := range recs {
		if f.Allowed(rec.Tags, restrictions) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// FilterItems is Filter for raw catalog items, used before exploration.
func (f DietaryFilter) FilterItems(items []domain.MenuItem, restrictions []string) []domain.MenuItem {
	if len(restrictions) == 0 {
		return items
	}

	filtered := items[:0:0]
	for _, item := range items {
		if f.Allowed(item.Tags, restrictions) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
