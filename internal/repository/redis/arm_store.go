package redis

import (
	"context"
	"fmt"
	"strconv"

	"dabbaMarket/business/recommend"

	"github.com/redis/go-redis/v9"
)

const (
	armCountKey  = "reco:arm:count"
	armRewardKey = "reco:arm:reward"
)

// ArmStore is the shared bandit state for horizontally scaled deployments:
// every instance folds feedback into the same per-meal counters, so
// exploration decisions stay consistent across replicas. Counts and reward
// sums live in two Redis hashes keyed by meal id.
type ArmStore struct {
	client *redis.Client
}

func NewArmStore(client *redis.Client) *ArmStore {
	return &ArmStore{
		client: client,
	}
}

func (s *ArmStore) Update(ctx context.Context, mealID string, reward float64) error {
	pipe := s.client.TxPipeline()
	pipe.HIncrBy(ctx, armCountKey, mealID, 1)
	pipe.HIncrByFloat(ctx, armRewardKey, mealID, reward)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update arm statistics in Redis: %w", err)
	}

	return nil
}

func (s *ArmStore) Snapshot(ctx context.Context) (map[string]recommend.ArmStats, error) {
	counts, err := s.client.HGetAll(ctx, armCountKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read arm counts from Redis: %w", err)
	}

	rewards, err := s.client.HGetAll(ctx, armRewardKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read arm rewards from Redis: %w", err)
	}

	stats := make(map[string]recommend.ArmStats, len(counts))
	for mealID, raw := range counts {
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt arm count for %s: %w", mealID, err)
		}

		var sum float64
		if rawSum, ok := rewards[mealID]; ok {
			sum, err = strconv.ParseFloat(rawSum, 64)
			if err != nil {
				return nil, fmt.Errorf("corrupt arm reward for %s: %w", mealID, err)
			}
		}

		stats[mealID] = recommend.ArmStats{Count: count, RewardSum: sum}
	}

	return stats, nil
}
