package recommend

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"dabbaMarket/domain"
	"dabbaMarket/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const explanationExplore = "Try something new! We think you might like this"

// Engine orchestrates the hybrid recommender: content-based scoring with a
// popularity fallback, knowledge-based dietary filtering, and epsilon-greedy
// exploration, with an online feedback loop updating the bandit.
//
// The whole serving path is best-effort: a failure anywhere inside scoring
// or filtering degrades to an emptier list, never an error surfaced to the
// end user.
type Engine struct {
	cfg        Config
	store      CatalogStore
	catalog    *Catalog
	content    ContentScorer
	popularity PopularityScorer
	dietary    DietaryFilter
	bandit     *Bandit
}

// NewEngine wires the engine. armStore nil means a process-local store;
// rng nil means a time-seeded source (tests inject a seeded one).
func NewEngine(cfg Config, store CatalogStore, armStore ArmStore, rng *rand.Rand) *Engine {
	cfg = cfg.sanitized()
	if armStore == nil {
		armStore = NewMemoryArmStore()
	}
	return &Engine{
		cfg:        cfg,
		store:      store,
		catalog:    NewCatalog(store, cfg.CatalogLoadTimeout),
		content:    ContentScorer{cfg: cfg},
		popularity: PopularityScorer{cfg: cfg},
		bandit:     NewBandit(armStore, cfg.ExploreEpsilon, rng),
	}
}

// Refresh reloads the catalog snapshot once. Errors are soft: the previous
// snapshot (seed data at worst) stays in place.
func (e *Engine) Refresh(ctx context.Context) {
	if err := e.catalog.Refresh(ctx); err != nil {
		logger.Warn("catalog refresh failed, keeping previous snapshot", "error", err)
	}
}

// Run refreshes the catalog on the configured interval until the context is
// cancelled. Meant to run in its own goroutine.
func (e *Engine) Run(ctx context.Context) {
	e.Refresh(ctx)

	ticker := time.NewTicker(e.cfg.CatalogRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.Refresh(ctx)
		}
	}
}

// Catalog exposes the current snapshot, mainly so callers can tell whether
// they are being served store or seed data.
func (e *Engine) Catalog() *Snapshot {
	return e.catalog.Current()
}

// GetRecommendations returns up to limit personalized recommendations.
// Content-based scoring is primary; popularity ranking backfills any
// remaining slots; the dietary filter is always applied last, after
// scoring and before truncation, and the result is never padded back up
// afterwards. Never errors: total candidate exhaustion returns an empty
// list.
func (e *Engine) GetRecommendations(
	ctx context.Context,
	userID uint,
	profile domain.PreferenceProfile,
	orderHistory []domain.Order,
	city string,
	mealTime string,
	limit int,
) []domain.Recommendation {
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}

	snap := e.catalog.Current()
	candidates := filterCandidates(snap.Items, city, mealTime)
	if len(candidates) == 0 {
		return []domain.Recommendation{}
	}

	recs := e.content.Score(candidates, profile)
	if len(recs) < limit {
		picked := make(map[string]bool, len(recs))
		for _, rec := range recs {
			picked[rec.ID] = true
		}
		for _, rec := range e.popularity.Rank(snap, candidates) {
			if len(recs) >= limit {
				break
			}
			if picked[rec.ID] {
				continue
			}
			recs = append(recs, rec)
		}
	}

	recs = e.dietary.Filter(recs, profile.DietaryRestrictions)
	if len(recs) > limit {
		recs = recs[:limit]
	}

	logger.Debug("recommendations served",
		"user_id", userID,
		"city", city,
		"meal_time", mealTime,
		"count", len(recs),
		"catalog_source", snap.Source,
	)
	countServed(recs)

	return recs
}

// ExploreRecommendations returns up to limit discovery picks from the
// bandit, tagged as exploration with a fixed discovery message.
func (e *Engine) ExploreRecommendations(
	ctx context.Context,
	userID uint,
	profile domain.PreferenceProfile,
	limit int,
) []domain.Recommendation {
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}

	snap := e.catalog.Current()
	candidates := e.dietary.FilterItems(snap.Items, profile.DietaryRestrictions)
	selected := e.bandit.Select(ctx, candidates, limit)

	recs := make([]domain.Recommendation, 0, len(selected))
	for _, item := range selected {
		recs = append(recs, domain.Recommendation{
			MenuItem:    item,
			Explanation: explanationExplore,
			Algorithm:   AlgorithmExploration,
		})
	}

	countServed(recs)
	return recs
}

// GetSimilarItems returns items sharing the reference meal's cuisine,
// never including the reference itself. Unknown meal ids yield an empty
// list, not an error.
func (e *Engine) GetSimilarItems(ctx context.Context, mealID string, limit int) []domain.Recommendation {
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}

	snap := e.catalog.Current()
	ref, ok := snap.Item(mealID)
	if !ok {
		return []domain.Recommendation{}
	}

	recs := make([]domain.Recommendation, 0, limit)
	for _, item := range snap.Items {
		if item.ID == mealID {
			continue
		}
		if !strings.EqualFold(item.Cuisine, ref.Cuisine) {
			continue
		}
		recs = append(recs, domain.Recommendation{
			MenuItem:    item,
			Score:       1.0,
			Explanation: fmt.Sprintf("Similar to %s", ref.Name),
			Algorithm:   AlgorithmContentBased,
		})
		if len(recs) == limit {
			break
		}
	}

	countServed(recs)
	return recs
}

// GetPopularItems ranks by aggregate rating and order volume.
func (e *Engine) GetPopularItems(ctx context.Context, city string, limit int) []domain.Recommendation {
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}

	snap := e.catalog.Current()
	candidates := filterCandidates(snap.Items, city, "")
	recs := e.popularity.Rank(snap, candidates)
	if len(recs) > limit {
		recs = recs[:limit]
	}

	countServed(recs)
	return recs
}

// GetTrendingItems is an alias of GetPopularItems: the trending path has no
// recency weighting yet, and the alias is kept explicit rather than faked
// with a different ordering.
func (e *Engine) GetTrendingItems(ctx context.Context, city string, limit int) []domain.Recommendation {
	return e.GetPopularItems(ctx, city, limit)
}

// RecordInteraction folds feedback into the bandit and persists the event.
// Never fails the caller: persistence errors are logged and swallowed so a
// broken store cannot break the feedback endpoint.
func (e *Engine) RecordInteraction(
	ctx context.Context,
	userID uint,
	mealID string,
	liked *bool,
	rating *float64,
	reqCtx map[string]any,
) {
	reward, action := rewardFor(liked, rating)

	if err := e.bandit.Update(ctx, mealID, reward); err != nil {
		logger.Error("failed to update arm statistics", err)
	}

	now := time.Now()
	city, _ := reqCtx["city"].(string)
	mealTime, _ := reqCtx["meal_time"].(string)
	merged := mergeContext(buildBaseContext(now, city, mealTime), reqCtx)

	event := domain.InteractionEvent{
		ID:        "INT-" + uuid.NewString(),
		UserID:    userID,
		MealID:    mealID,
		Action:    action,
		Rating:    rating,
		Context:   datatypes.JSONMap(merged),
		CreatedAt: now,
	}

	if e.store != nil {
		if err := e.store.AppendInteraction(ctx, event); err != nil {
			logger.Error("failed to persist interaction event", err)
		}
	}

	feedbackEventsTotal.WithLabelValues(action).Inc()
}

// ReplayInteractions seeds arm statistics from recently persisted events,
// so a restarted instance does not start completely cold.
func (e *Engine) ReplayInteractions(ctx context.Context, limit int) error {
	if e.store == nil {
		return nil
	}

	events, err := e.store.RecentInteractions(ctx, limit)
	if err != nil {
		return fmt.Errorf("load recent interactions: %w", err)
	}

	for _, ev := range events {
		var liked *bool
		switch ev.Action {
		case domain.InteractionLike:
			v := true
			liked = &v
		case domain.InteractionDislike:
			v := false
			liked = &v
		}
		reward, _ := rewardFor(liked, ev.Rating)
		if err := e.bandit.Update(ctx, ev.MealID, reward); err != nil {
			return fmt.Errorf("replay arm update: %w", err)
		}
	}

	logger.Info("replayed interaction events into bandit", "count", len(events))
	return nil
}

// ArmStatistics exposes the bandit state for the admin inspection endpoint.
func (e *Engine) ArmStatistics(ctx context.Context) (map[string]ArmStats, error) {
	return e.bandit.Stats(ctx)
}

// Config returns the effective engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// rewardFor normalizes feedback into a [0,1] reward and the stored action.
// Liked/disliked dominates, then a 1–5 rating scaled down, then the neutral
// default when neither is supplied.
func rewardFor(liked *bool, rating *float64) (float64, string) {
	switch {
	case liked != nil && *liked:
		return 1.0, domain.InteractionLike
	case liked != nil:
		return 0.0, domain.InteractionDislike
	case rating != nil:
		return clamp01(*rating / 5.0), domain.InteractionView
	default:
		return 0.5, domain.InteractionView
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// filterCandidates narrows the snapshot to the request context. Items that
// do not declare a city or meal time match everything.
func filterCandidates(items []domain.MenuItem, city, mealTime string) []domain.MenuItem {
	out := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if city != "" && item.City != "" && !strings.EqualFold(item.City, city) {
			continue
		}
		if mealTime != "" && mealTime != "any" && item.MealTime != "" && !strings.EqualFold(item.MealTime, mealTime) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func countServed(recs []domain.Recommendation) {
	for _, rec := range recs {
		recommendationsServedTotal.WithLabelValues(rec.Algorithm).Inc()
	}
}
