package recommend

import (
	"fmt"
	"sort"
	"strings"

	"dabbaMarket/domain"
)

const explanationFallback = "Recommended for you"

// ContentScorer scores catalog items against the user's stated preferences.
type ContentScorer struct {
	cfg Config
}

// Score produces one Recommendation per matching item, highest score first.
// Items that match nothing are excluded, not ranked last. Ties keep catalog
// order.
func (s ContentScorer) Score(items []domain.MenuItem, profile domain.PreferenceProfile) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(items))

	for _, item := range items {
		score := 0.0
		if cuisineMatch(item, profile) {
			score += s.cfg.CuisineWeight
		}
		if vegetarianMatch(item, profile) {
			score += s.cfg.VegetarianWeight
		}
		if score == 0 {
			continue
		}

		recs = append(recs, domain.Recommendation{
			MenuItem:    item,
			Score:       score,
			Explanation: s.explanationFor(item, profile),
			Algorithm:   AlgorithmContentBased,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	return recs
}

// explanationFor joins the top two matched reasons with a bullet. Reasons
// are checked in priority order; if nothing matches the generic fallback is
// used so the explanation is never empty.
func (s ContentScorer) explanationFor(item domain.MenuItem, profile domain.PreferenceProfile) string {
	reasons := make([]string, 0, 2)

	if cuisineMatch(item, profile) {
		reasons = append(reasons, fmt.Sprintf("Because you love %s cuisine", item.Cuisine))
	}

	if overlap := ingredientOverlap(item, profile); len(reasons) < 2 && len(overlap) > 0 {
		reasons = append(reasons, fmt.Sprintf("Made with %s you like", strings.Join(overlap, " and ")))
	}

	if len(reasons) < 2 && vegetarianMatch(item, profile) {
		reasons = append(reasons, "Vegetarian option")
	}

	if len(reasons) < 2 && item.OrderCount >= s.cfg.ReorderThreshold {
		reasons = append(reasons, "Frequently reordered")
	}

	if len(reasons) == 0 {
		return explanationFallback
	}
	return strings.Join(reasons, " • ")
}

func cuisineMatch(item domain.MenuItem, profile domain.PreferenceProfile) bool {
	for _, cuisine := range profile.FavoriteCuisines {
		if strings.EqualFold(cuisine, item.Cuisine) {
			return true
		}
	}
	return false
}

func vegetarianMatch(item domain.MenuItem, profile domain.PreferenceProfile) bool {
	if !item.IsVegetarian {
		return false
	}
	for _, restriction := range profile.DietaryRestrictions {
		if strings.EqualFold(restriction, "vegetarian") {
			return true
		}
	}
	return false
}

// ingredientOverlap intersects the profile's preferred ingredients with the
// item's ingredient list, naming at most the first two overlaps.
func ingredientOverlap(item domain.MenuItem, profile domain.PreferenceProfile) []string {
	if len(profile.PreferredIngredients) == 0 || item.Ingredients == "" {
		return nil
	}

	itemIngredients := make(map[string]bool)
	for _, ing := range strings.Split(item.Ingredients, ",") {
		itemIngredients[strings.ToLower(strings.TrimSpace(ing))] = true
	}

	overlap := make([]string, 0, 2)
	for _, ing := range profile.PreferredIngredients {
		if itemIngredients[strings.ToLower(strings.TrimSpace(ing))] {
			overlap = append(overlap, strings.ToLower(strings.TrimSpace(ing)))
			if len(overlap) == 2 {
				break
			}
		}
	}
	return overlap
}
