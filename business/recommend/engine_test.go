package recommend

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"dabbaMarket/domain"
)

func testEngine(store CatalogStore) *Engine {
	return NewEngine(DefaultConfig(), store, nil, rand.New(rand.NewSource(1)))
}

func TestGetRecommendations_ContentPrimaryPopularityBackfill(t *testing.T) {
	store := &fakeStore{
		items: []domain.MenuItem{
			{ID: "M1", Name: "Rajma Chawal", Cuisine: "North Indian", IsVegetarian: true, Tags: "veg,popular", Rating: 4.2, IsAvailable: true},
			{ID: "M2", Name: "Upma", Cuisine: "South Indian", IsVegetarian: true, Tags: "veg,breakfast", Rating: 4.6, IsAvailable: true},
		},
	}
	e := testEngine(store)
	e.Refresh(context.Background())

	profile := domain.PreferenceProfile{FavoriteCuisines: []string{"North Indian"}}
	recs := e.GetRecommendations(context.Background(), 1, profile, nil, "", "", 2)

	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].ID != "M1" || recs[1].ID != "M2" {
		t.Fatalf("expected [M1 M2], got %v", ids(recs))
	}
	if recs[0].Score != 0.5 {
		t.Errorf("M1: expected content score 0.5, got %v", recs[0].Score)
	}
	if recs[0].Explanation != "Because you love North Indian cuisine" {
		t.Errorf("M1: unexpected explanation %q", recs[0].Explanation)
	}
	if recs[0].Algorithm != AlgorithmContentBased {
		t.Errorf("M1: expected algorithm %q, got %q", AlgorithmContentBased, recs[0].Algorithm)
	}
	if recs[1].Explanation != "Popular among our users" {
		t.Errorf("M2: unexpected explanation %q", recs[1].Explanation)
	}
	if recs[1].Algorithm != AlgorithmCollaborative {
		t.Errorf("M2: expected algorithm %q, got %q", AlgorithmCollaborative, recs[1].Algorithm)
	}
}

func TestGetRecommendations_DietaryFilterAppliedLast(t *testing.T) {
	store := &fakeStore{
		items: []domain.MenuItem{
			{ID: "VEG", Cuisine: "Punjabi", IsVegetarian: true, Tags: "veg", IsAvailable: true},
			{ID: "MEAT", Cuisine: "Punjabi", Tags: "non-veg", IsAvailable: true},
		},
	}
	e := testEngine(store)
	e.Refresh(context.Background())

	profile := domain.PreferenceProfile{
		FavoriteCuisines:    []string{"Punjabi"},
		DietaryRestrictions: []string{"vegetarian"},
	}
	recs := e.GetRecommendations(context.Background(), 1, profile, nil, "", "", 5)

	// the non-veg item is filtered out, and the result is not padded back up
	for _, rec := range recs {
		if rec.ID == "MEAT" {
			t.Fatal("dietary filter must exclude non-veg items for a vegetarian profile")
		}
	}
	if len(recs) != 1 || recs[0].ID != "VEG" {
		t.Fatalf("expected only VEG, got %v", ids(recs))
	}
}

func TestGetRecommendations_StoreFailureServesSeedData(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("store down")}
	e := testEngine(store)
	e.Refresh(context.Background())

	recs := e.GetRecommendations(context.Background(), 1, domain.PreferenceProfile{
		FavoriteCuisines: []string{"South Indian"},
	}, nil, "", "", 5)

	if recs == nil {
		t.Fatal("result must be non-nil even when the store is down")
	}
	if len(recs) == 0 {
		t.Fatal("expected seed-catalog recommendations when the store is down")
	}
	if e.Catalog().Source != SourceSeed {
		t.Fatalf("expected seed snapshot, got %q", e.Catalog().Source)
	}
}

func TestGetRecommendations_EmptyCandidatesReturnsEmptyList(t *testing.T) {
	// every item is pinned to a city, so an unserved city exhausts the
	// candidate set (city-less items would match everywhere)
	store := &fakeStore{
		items: []domain.MenuItem{
			{ID: "M1", Cuisine: "Maharashtrian", City: "pune", IsAvailable: true},
			{ID: "M2", Cuisine: "Maharashtrian", City: "pune", IsAvailable: true},
		},
	}
	e := testEngine(store)
	e.Refresh(context.Background())

	recs := e.GetRecommendations(context.Background(), 1, domain.PreferenceProfile{}, nil, "Atlantis", "", 5)

	if recs == nil {
		t.Fatal("result must be non-nil")
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty list for a city with no candidates, got %v", ids(recs))
	}
}

func TestGetRecommendations_ExplanationNeverEmpty(t *testing.T) {
	e := testEngine(&fakeStore{})

	recs := e.GetRecommendations(context.Background(), 1, domain.PreferenceProfile{}, nil, "", "", 10)
	for _, rec := range recs {
		if rec.Explanation == "" {
			t.Errorf("item %s carries an empty explanation", rec.ID)
		}
		if rec.Algorithm == "" {
			t.Errorf("item %s carries an empty algorithm tag", rec.ID)
		}
	}
}

func TestExploreRecommendations(t *testing.T) {
	e := testEngine(&fakeStore{})

	recs := e.ExploreRecommendations(context.Background(), 1, domain.PreferenceProfile{
		DietaryRestrictions: []string{"vegetarian"},
	}, 5)

	if len(recs) != 5 {
		t.Fatalf("expected 5 exploration picks, got %d", len(recs))
	}
	for _, rec := range recs {
		if rec.Algorithm != AlgorithmExploration {
			t.Errorf("item %s: expected algorithm %q, got %q", rec.ID, AlgorithmExploration, rec.Algorithm)
		}
		if rec.Explanation != "Try something new! We think you might like this" {
			t.Errorf("item %s: unexpected explanation %q", rec.ID, rec.Explanation)
		}
		if !rec.IsVegetarian {
			t.Errorf("item %s violates the vegetarian restriction", rec.ID)
		}
	}
}

func TestGetSimilarItems(t *testing.T) {
	e := testEngine(&fakeStore{})

	recs := e.GetSimilarItems(context.Background(), "M001", 5)

	if len(recs) == 0 {
		t.Fatal("expected other North Indian seed items")
	}
	for _, rec := range recs {
		if rec.ID == "M001" {
			t.Fatal("similar items must never include the reference item")
		}
		if rec.Cuisine != "North Indian" {
			t.Errorf("item %s: expected North Indian cuisine, got %q", rec.ID, rec.Cuisine)
		}
		if rec.Explanation == "" {
			t.Errorf("item %s carries an empty explanation", rec.ID)
		}
	}
}

func TestGetSimilarItems_UnknownIDReturnsEmpty(t *testing.T) {
	e := testEngine(&fakeStore{})

	recs := e.GetSimilarItems(context.Background(), "UNKNOWN", 5)
	if recs == nil || len(recs) != 0 {
		t.Fatalf("expected empty non-nil list for an unknown meal, got %v", recs)
	}
}

func TestGetPopularAndTrendingAgree(t *testing.T) {
	e := testEngine(&fakeStore{})

	popular := e.GetPopularItems(context.Background(), "", 5)
	trending := e.GetTrendingItems(context.Background(), "", 5)

	if len(popular) != len(trending) {
		t.Fatalf("popular and trending lengths differ: %d vs %d", len(popular), len(trending))
	}
	for i := range popular {
		if popular[i].ID != trending[i].ID {
			t.Fatalf("position %d: popular %s vs trending %s", i, popular[i].ID, trending[i].ID)
		}
	}

	// highest-rated seed item first
	if popular[0].ID != "M003" {
		t.Fatalf("expected M003 (rating 4.9) first, got %s", popular[0].ID)
	}
}

func TestRecordInteraction_RewardDerivation(t *testing.T) {
	yes, no := true, false
	rating3 := 3.0
	ratingOver := 9.0

	cases := []struct {
		name       string
		liked      *bool
		rating     *float64
		wantReward float64
		wantAction string
	}{
		{"liked wins", &yes, &rating3, 1.0, domain.InteractionLike},
		{"disliked wins", &no, &rating3, 0.0, domain.InteractionDislike},
		{"rating scaled", nil, &rating3, 0.6, domain.InteractionView},
		{"rating clamped", nil, &ratingOver, 1.0, domain.InteractionView},
		{"neither defaults neutral", nil, nil, 0.5, domain.InteractionView},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reward, action := rewardFor(tc.liked, tc.rating)
			if reward != tc.wantReward {
				t.Errorf("reward = %v, want %v", reward, tc.wantReward)
			}
			if action != tc.wantAction {
				t.Errorf("action = %q, want %q", action, tc.wantAction)
			}
		})
	}
}

func TestRecordInteraction_UpdatesBanditAndPersists(t *testing.T) {
	store := &fakeStore{}
	e := testEngine(store)

	liked := true
	e.RecordInteraction(context.Background(), 7, "M001", &liked, nil, map[string]any{"city": "Mumbai"})

	stats, err := e.ArmStatistics(context.Background())
	if err != nil {
		t.Fatalf("arm statistics: %v", err)
	}
	if stats["M001"].Count != 1 || stats["M001"].RewardSum != 1.0 {
		t.Fatalf("unexpected arm stats: %+v", stats["M001"])
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.events) != 1 {
		t.Fatalf("expected 1 persisted event, got %d", len(store.events))
	}
	ev := store.events[0]
	if ev.UserID != 7 || ev.MealID != "M001" || ev.Action != domain.InteractionLike {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.ID == "" {
		t.Error("event id must be generated")
	}
	if ev.Context["city"] != "Mumbai" {
		t.Errorf("caller context must survive the merge, got %v", ev.Context)
	}
	if ev.Context["time_bucket"] == nil {
		t.Error("base context must include the time bucket")
	}
}

func TestRecordInteraction_PersistenceErrorIsSwallowed(t *testing.T) {
	store := &fakeStore{appendErr: errors.New("insert failed")}
	e := testEngine(store)

	// must not panic or surface the store error
	e.RecordInteraction(context.Background(), 7, "M001", nil, nil, nil)

	stats, _ := e.ArmStatistics(context.Background())
	if stats["M001"].Count != 1 {
		t.Fatal("bandit update must proceed even when persistence fails")
	}
}

func TestRecordInteraction_ShiftsExploitationTowardLikedItem(t *testing.T) {
	e := testEngine(&fakeStore{})

	liked, disliked := true, false
	for i := 0; i < 5; i++ {
		e.RecordInteraction(context.Background(), 1, "M004", &liked, nil, nil)
		e.RecordInteraction(context.Background(), 1, "M008", &disliked, nil, nil)
	}

	stats, _ := e.ArmStatistics(context.Background())
	if stats["M004"].Mean() <= stats["M008"].Mean() {
		t.Fatalf("liked arm mean %v must exceed disliked arm mean %v",
			stats["M004"].Mean(), stats["M008"].Mean())
	}
}

func TestReplayInteractions(t *testing.T) {
	store := &fakeStore{}
	e := testEngine(store)

	liked := true
	rating := 4.0
	e.RecordInteraction(context.Background(), 1, "M001", &liked, nil, nil)
	e.RecordInteraction(context.Background(), 2, "M002", nil, &rating, nil)

	// a fresh engine over the same store replays to the same arm state
	fresh := testEngine(store)
	if err := fresh.ReplayInteractions(context.Background(), 100); err != nil {
		t.Fatalf("replay: %v", err)
	}

	stats, _ := fresh.ArmStatistics(context.Background())
	if stats["M001"].Count != 1 || stats["M001"].RewardSum != 1.0 {
		t.Errorf("M001 not replayed: %+v", stats["M001"])
	}
	if stats["M002"].Count != 1 || stats["M002"].RewardSum != 0.8 {
		t.Errorf("M002 not replayed: %+v", stats["M002"])
	}
}

func TestFilterCandidates(t *testing.T) {
	items := []domain.MenuItem{
		{ID: "A", City: "Mumbai", MealTime: "lunch"},
		{ID: "B", City: "Delhi", MealTime: "lunch"},
		{ID: "C", City: "", MealTime: ""},
		{ID: "D", City: "mumbai", MealTime: "dinner"},
	}

	got := filterCandidates(items, "Mumbai", "lunch")

	want := map[string]bool{"A": true, "C": true}
	if len(got) != len(want) {
		t.Fatalf("expected %d candidates, got %d", len(want), len(got))
	}
	for _, item := range got {
		if !want[item.ID] {
			t.Errorf("unexpected candidate %s", item.ID)
		}
	}

	// "any" meal time matches every slot
	if got := filterCandidates(items, "", "any"); len(got) != 4 {
		t.Fatalf("meal time \"any\" must not filter, got %d", len(got))
	}
}
