package recommend

import (
	"sort"

	"dabbaMarket/domain"
)

const explanationPopular = "Popular among our users"

// PopularityScorer is the collaborative-filtering stand-in: it ranks by
// aggregate population rating rather than individual similarity. Used as
// the fallback when content scoring yields nothing (new users, empty
// profiles) and as the popular/trending path.
type PopularityScorer struct {
	cfg Config
}

// Rank orders items by effective rating descending, order volume breaking
// ties. Unrated items get the flat default predicted value, so with an
// empty ratings view the result degrades to catalog order rather than
// failing.
func (s PopularityScorer) Rank(snap *Snapshot, items []domain.MenuItem) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(items))

	for _, item := range items {
		recs = append(recs, domain.Recommendation{
			MenuItem:    item,
			Score:       s.effectiveRating(snap, item),
			Explanation: explanationPopular,
			Algorithm:   AlgorithmCollaborative,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].OrderCount > recs[j].OrderCount
	})

	return recs
}

// effectiveRating prefers the item's stored aggregate, then the mean of the
// historical rating triples, then the flat default.
func (s PopularityScorer) effectiveRating(snap *Snapshot, item domain.MenuItem) float64 {
	if item.Rating > 0 {
		return item.Rating
	}
	if snap != nil {
		if mean, ok := snap.AggregateRating(item.ID); ok {
			return mean
		}
	}
	return s.cfg.DefaultPredictedRating
}
