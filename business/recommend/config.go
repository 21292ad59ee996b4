package recommend

import "time"

// Algorithm tags attached to every recommendation.
const (
	AlgorithmContentBased  = "content_based"
	AlgorithmCollaborative = "collaborative"
	AlgorithmExploration   = "exploration"
)

type Config struct {
	// epsilon-greedy exploration probability
	ExploreEpsilon float64

	// content score weights; cuisine must outweigh a single dietary match
	CuisineWeight    float64
	VegetarianWeight float64

	// predicted score for unrated items on the popularity path
	DefaultPredictedRating float64

	// order count at which an item counts as frequently reordered
	ReorderThreshold int64

	DefaultLimit int

	// catalog store read bound and background refresh cadence
	CatalogLoadTimeout     time.Duration
	CatalogRefreshInterval time.Duration
}

const (
	defaultExploreEpsilon         = 0.3
	defaultCuisineWeight          = 0.5
	defaultVegetarianWeight       = 0.3
	defaultPredictedRating        = 4.0
	defaultReorderThreshold       = 50
	defaultLimit                  = 10
	defaultCatalogLoadTimeout     = 3 * time.Second
	defaultCatalogRefreshInterval = 5 * time.Minute
)

func DefaultConfig() Config {
	return Config{
		ExploreEpsilon:         defaultExploreEpsilon,
		CuisineWeight:          defaultCuisineWeight,
		VegetarianWeight:       defaultVegetarianWeight,
		DefaultPredictedRating: defaultPredictedRating,
		ReorderThreshold:       defaultReorderThreshold,
		DefaultLimit:           defaultLimit,
		CatalogLoadTimeout:     defaultCatalogLoadTimeout,
		CatalogRefreshInterval: defaultCatalogRefreshInterval,
	}
}

// sanitized fills zero values with defaults so a partially populated Config
// never disables scoring outright.
func (c Config) sanitized() Config {
	def := DefaultConfig()
	if c.ExploreEpsilon <= 0 || c.ExploreEpsilon >= 1 {
		c.ExploreEpsilon = def.ExploreEpsilon
	}
	if c.CuisineWeight <= 0 {
		c.CuisineWeight = def.CuisineWeight
	}
	if c.VegetarianWeight <= 0 {
		c.VegetarianWeight = def.VegetarianWeight
	}
	if c.DefaultPredictedRating <= 0 {
		c.DefaultPredictedRating = def.DefaultPredictedRating
	}
	if c.ReorderThreshold <= 0 {
		c.ReorderThreshold = def.ReorderThreshold
	}
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = def.DefaultLimit
	}
	if c.CatalogLoadTimeout <= 0 {
		c.CatalogLoadTimeout = def.CatalogLoadTimeout
	}
	if c.CatalogRefreshInterval <= 0 {
		c.CatalogRefreshInterval = def.CatalogRefreshInterval
	}
	return c
}
