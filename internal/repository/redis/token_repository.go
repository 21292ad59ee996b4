package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRepository tracks issued password-reset codes so each code can be
// consumed exactly once.
type TokenRepository struct {
	client *redis.Client
}

func NewTokenRepository(client *redis.Client) *TokenRepository {
	return &TokenRepository{
		client: client,
	}
}

func (r *TokenRepository) StoreResetCode(ctx context.Context, email, code string, ttl time.Duration) error {
	key := fmt.Sprintf("reset:email:%s", email)

	err := r.client.Set(ctx, key, code, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to store reset code in Redis: %w", err)
	}

	return nil
}

// ConsumeResetCode validates the code against the stored value and deletes
// it, so replaying the same code fails.
func (r *TokenRepository) ConsumeResetCode(ctx context.Context, email, code string) error {
	key := fmt.Sprintf("reset:email:%s", email)

	stored, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return errors.New("reset code not found or expired")
		}
		return fmt.Errorf("failed to get reset code from Redis: %w", err)
	}

	if stored != code {
		return errors.New("reset code mismatch")
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to consume reset code: %w", err)
	}

	return nil
}
