package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// flashTTL bounds how long an unread notice survives. A flash is meant to
// be read on the very next page load; anything older is abandoned state.
const flashTTL = 10 * time.Minute

// FlashStore holds one-time notices keyed by the visitor's session id.
// Key format: flash:<session_id>
type FlashStore struct {
	client *redis.Client
}

// NewFlashStore creates a FlashStore wrapping the given Redis client.
func NewFlashStore(client *redis.Client) *FlashStore {
	return &FlashStore{client: client}
}

// Append queues a notice for the next rendered page.
func (f *FlashStore) Append(ctx context.Context, sessionID, message string) error {
	key := f.key(sessionID)
	pipe := f.client.TxPipeline()
	pipe.RPush(ctx, key, message)
	pipe.Expire(ctx, key, flashTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("flash append: %w", err)
	}
	return nil
}

// PopAll returns every queued notice and clears them, so each flash is
// shown exactly once.
func (f *FlashStore) PopAll(ctx context.Context, sessionID string) ([]string, error) {
	key := f.key(sessionID)
	pipe := f.client.TxPipeline()
	get := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("flash pop: %w", err)
	}
	return get.Val(), nil
}

func (f *FlashStore) key(sessionID string) string {
	return "flash:" + sessionID
}
