package recommend

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"dabbaMarket/domain"
	"dabbaMarket/pkg/logger"
)

// ArmStats is the reward bookkeeping for one arm (menu item). An arm is
// unseen until its first observation and keeps its statistics for as long
// as the store lives.
type ArmStats struct {
	Count     int64   `json:"count"`
	RewardSum float64 `json:"reward_sum"`
}

func (a ArmStats) Observed() bool {
	return a.Count > 0
}

// Mean is the empirical mean reward; zero for unseen arms.
func (a ArmStats) Mean() float64 {
	if a.Count == 0 {
		return 0
	}
	return a.RewardSum / float64(a.Count)
}

// ArmStore holds the per-arm statistics. The in-memory implementation is
// the default; a shared implementation (Redis) keeps horizontally scaled
// instances consistent.
type ArmStore interface {
	Update(ctx context.Context, mealID string, reward float64) error
	Snapshot(ctx context.Context) (map[string]ArmStats, error)
}

// MemoryArmStore is the process-local ArmStore. Updates are serialized so
// concurrent feedback never loses observations.
type MemoryArmStore struct {
	mu   sync.RWMutex
	arms map[string]*ArmStats
}

func NewMemoryArmStore() *MemoryArmStore {
	return &MemoryArmStore{arms: make(map[string]*ArmStats)}
}

func (s *MemoryArmStore) Update(_ context.Context, mealID string, reward float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	arm, ok := s.arms[mealID]
	if !ok {
		arm = &ArmStats{}
		s.arms[mealID] = arm
	}
	arm.Count++
	arm.RewardSum += reward
	return nil
}

func (s *MemoryArmStore) Snapshot(_ context.Context) (map[string]ArmStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]ArmStats, len(s.arms))
	for id, arm := range s.arms {
		out[id] = *arm
	}
	return out, nil
}

// Bandit blends exploring under-observed items with serving known-good
// ones. Simplified epsilon-greedy: the exploration probability is a fixed
// constant, not annealed.
type Bandit struct {
	store   ArmStore
	epsilon float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewBandit builds a bandit over the given store. A nil rng gets a
// time-seeded source; tests inject a seeded one.
func NewBandit(store ArmStore, epsilon float64, rng *rand.Rand) *Bandit {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if epsilon <= 0 || epsilon >= 1 {
		epsilon = defaultExploreEpsilon
	}
	return &Bandit{store: store, epsilon: epsilon, rng: rng}
}

// Select picks up to limit candidates. Each slot explores with probability
// epsilon (uniform pick among unseen arms), otherwise exploits the best
// observed arm by empirical mean. Either pool falls back to the other when
// exhausted, so the result only falls short when the candidates do.
func (b *Bandit) Select(ctx context.Context, candidates []domain.MenuItem, limit int) []domain.MenuItem {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}
	if limit > len(candidates) {
		limit = len(candidates)
	}

	stats, err := b.store.Snapshot(ctx)
	if err != nil {
		logger.Warn("failed to read arm statistics, treating all arms as unseen", "error", err)
		stats = nil
	}

	unseen := make([]domain.MenuItem, 0, len(candidates))
	observed := make([]domain.MenuItem, 0, len(candidates))
	for _, c := range candidates {
		if stats[c.ID].Observed() {
			observed = append(observed, c)
		} else {
			unseen = append(unseen, c)
		}
	}

	// best known arms first; stable so catalog order breaks ties
	sort.SliceStable(observed, func(i, j int) bool {
		return stats[observed[i].ID].Mean() > stats[observed[j].ID].Mean()
	})

	b.mu.Lock()
	defer b.mu.Unlock()

	selected := make([]domain.MenuItem, 0, limit)
	for len(selected) < limit && (len(unseen) > 0 || len(observed) > 0) {
		explore := false
		switch {
		case len(observed) == 0:
			explore = true
		case len(unseen) == 0:
			explore = false
		default:
			explore = b.rng.Float64() < b.epsilon
		}

		if explore {
			i := b.rng.Intn(len(unseen))
			selected = append(selected, unseen[i])
			unseen = append(unseen[:i], unseen[i+1:]...)
		} else {
			selected = append(selected, observed[0])
			observed = observed[1:]
		}
	}

	return selected
}

// Update records one observation. The reward is trusted as-is; clamping to
// [0,1] is the caller's job.
func (b *Bandit) Update(ctx context.Context, mealID string, reward float64) error {
	return b.store.Update(ctx, mealID, reward)
}

// Stats exposes the current arm statistics for inspection endpoints.
func (b *Bandit) Stats(ctx context.Context) (map[string]ArmStats, error) {
	return b.store.Snapshot(ctx)
}
