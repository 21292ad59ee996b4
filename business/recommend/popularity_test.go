package recommend

import (
	"testing"

	"dabbaMarket/domain"
)

func TestPopularityRank_ByRatingDescending(t *testing.T) {
	s := PopularityScorer{cfg: DefaultConfig()}

	items := []domain.MenuItem{
		{ID: "LOW", Rating: 4.1},
		{ID: "TOP", Rating: 4.9},
		{ID: "MID", Rating: 4.5},
	}

	recs := s.Rank(newSnapshot(items, nil, SourceSeed), items)

	want := []string{"TOP", "MID", "LOW"}
	for i, id := range want {
		if recs[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, recs[i].ID)
		}
	}
	for _, rec := range recs {
		if rec.Explanation != "Popular among our users" {
			t.Errorf("item %s: unexpected explanation %q", rec.ID, rec.Explanation)
		}
		if rec.Algorithm != AlgorithmCollaborative {
			t.Errorf("item %s: expected algorithm %q, got %q", rec.ID, AlgorithmCollaborative, rec.Algorithm)
		}
	}
}

func TestPopularityRank_UnratedGetsDefault(t *testing.T) {
	s := PopularityScorer{cfg: DefaultConfig()}

	items := []domain.MenuItem{
		{ID: "UNRATED"},
		{ID: "BAD", Rating: 3.0},
	}

	recs := s.Rank(newSnapshot(items, nil, SourceSeed), items)

	// the unrated item gets the 4.0 default and outranks the 3.0 item
	if recs[0].ID != "UNRATED" {
		t.Fatalf("expected unrated item with default 4.0 first, got %s", recs[0].ID)
	}
	if recs[0].Score != 4.0 {
		t.Fatalf("expected default predicted rating 4.0, got %v", recs[0].Score)
	}
}

func TestPopularityRank_HistoricalRatingsBeatDefault(t *testing.T) {
	s := PopularityScorer{cfg: DefaultConfig()}

	items := []domain.MenuItem{{ID: "M1"}}
	ratings := []domain.MealRating{
		{MealID: "M1", Rating: 5},
		{MealID: "M1", Rating: 4},
	}

	recs := s.Rank(newSnapshot(items, ratings, SourceStore), items)

	if recs[0].Score != 4.5 {
		t.Fatalf("expected mean of historical ratings 4.5, got %v", recs[0].Score)
	}
}

func TestPopularityRank_OrderCountBreaksTies(t *testing.T) {
	s := PopularityScorer{cfg: DefaultConfig()}

	items := []domain.MenuItem{
		{ID: "FEW", Rating: 4.5, OrderCount: 10},
		{ID: "MANY", Rating: 4.5, OrderCount: 300},
	}

	recs := s.Rank(newSnapshot(items, nil, SourceSeed), items)

	if recs[0].ID != "MANY" {
		t.Fatalf("expected higher order count to break the rating tie, got %s first", recs[0].ID)
	}
}
