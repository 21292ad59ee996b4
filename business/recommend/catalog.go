package recommend

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"dabbaMarket/domain"
	"dabbaMarket/pkg/logger"
)

// Snapshot sources.
const (
	SourceStore = "store"
	SourceSeed  = "seed"
)

// ---- Repository interfaces ----

// CatalogStore is the external catalog/ratings store the engine reads from
// and appends feedback to.
type CatalogStore interface {
	LoadAvailableItems(ctx context.Context) ([]domain.MenuItem, error)
	LoadRatings(ctx context.Context) ([]domain.MealRating, error)
	AppendInteraction(ctx context.Context, event domain.InteractionEvent) error
	RecentInteractions(ctx context.Context, limit int) ([]domain.InteractionEvent, error)
}

// Snapshot is an immutable view of the available menu plus aggregate
// ratings. It is never mutated after construction; refreshes swap in a
// whole new snapshot so in-flight scoring never sees a half-updated
// catalog.
type Snapshot struct {
	Items    []domain.MenuItem
	Source   string
	LoadedAt time.Time

	index       map[string]int
	ratingSum   map[string]float64
	ratingCount map[string]int
}

func newSnapshot(items []domain.MenuItem, ratings []domain.MealRating, source string) *Snapshot {
	s := &Snapshot{
		Items:       items,
		Source:      source,
		LoadedAt:    time.Now(),
		index:       make(map[string]int, len(items)),
		ratingSum:   make(map[string]float64),
		ratingCount: make(map[string]int),
	}
	for i, item := range items {
		s.index[item.ID] = i
	}
	for _, r := range ratings {
		s.ratingSum[r.MealID] += r.Rating
		s.ratingCount[r.MealID]++
	}
	return s
}

func (s *Snapshot) Item(id string) (domain.MenuItem, bool) {
	i, ok := s.index[id]
	if !ok {
		return domain.MenuItem{}, false
	}
	return s.Items[i], true
}

// AggregateRating returns the mean historical rating for a meal, if any
// ratings exist for it.
func (s *Snapshot) AggregateRating(id string) (float64, bool) {
	n := s.ratingCount[id]
	if n == 0 {
		return 0, false
	}
	return s.ratingSum[id] / float64(n), true
}

// Catalog holds the current snapshot and refreshes it from the store. Reads
// never block on the store: Current always returns the last good snapshot,
// seeded with built-in data until the first successful load.
type Catalog struct {
	store   CatalogStore
	timeout time.Duration
	current atomic.Pointer[Snapshot]
}

func NewCatalog(store CatalogStore, timeout time.Duration) *Catalog {
	c := &Catalog{store: store, timeout: timeout}
	c.current.Store(newSnapshot(seedCatalog(), nil, SourceSeed))
	return c
}

func (c *Catalog) Current() *Snapshot {
	return c.current.Load()
}

// Refresh loads a fresh snapshot from the store, bounded by the configured
// timeout. Fails soft: on any read error or an empty catalog the previous
// snapshot stays in place, so a broken store degrades to stale or seed data
// instead of an outage.
func (c *Catalog) Refresh(ctx context.Context) error {
	if c.store == nil {
		return nil
	}

	loadCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	items, err := c.store.LoadAvailableItems(loadCtx)
	if err != nil {
		catalogFallbackTotal.Inc()
		return fmt.Errorf("load available items: %w", err)
	}
	if len(items) == 0 {
		catalogFallbackTotal.Inc()
		return fmt.Errorf("catalog store returned no available items")
	}

	ratings, err := c.store.LoadRatings(loadCtx)
	if err != nil {
		// ratings are an enrichment; an empty view is acceptable
		logger.Warn("failed to load ratings, continuing without", "error", err)
		ratings = nil
	}

	c.current.Store(newSnapshot(items, ratings, SourceStore))
	return nil
}
