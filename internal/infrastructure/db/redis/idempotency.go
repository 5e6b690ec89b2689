package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore maps Idempotency-Key headers to committed sale ids so a
// resubmitted sale request replays the original result instead of selling
// stock twice. Key format: idem:sale:<key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given Redis client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup returns the sale id previously stored under key, if any.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (int64, bool, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("idempotency lookup: %w", err)
	}
	saleID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: bad stored sale id %q: %w", val, err)
	}
	return saleID, true, nil
}

// Store records the sale committed under key (expires after idempotencyTTL).
func (s *IdempotencyStore) Store(ctx context.Context, key string, saleID int64) error {
	return s.client.Set(ctx, s.key(key), strconv.FormatInt(saleID, 10), idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(key string) string {
	return "idem:sale:" + key
}
