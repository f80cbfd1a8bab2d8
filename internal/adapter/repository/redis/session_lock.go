package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionLock implements usecase.SessionLocker. One key per
// transaction; the TTL bounds how long an abandoned session can block
// the slot.
type SessionLock struct {
	client *redis.Client
	prefix string
}

// NewSessionLock creates a new SessionLock.
func NewSessionLock(client *redis.Client) *SessionLock {
	return &SessionLock{
		client: client,
		prefix: "session:",
	}
}

// Acquire takes the session slot for a transaction. Returns false when
// another session already holds it.
func (l *SessionLock) Acquire(ctx context.Context, transactionID string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, l.prefix+transactionID, "locked", ttl).Result()
}

// Release frees the session slot. Releasing an unheld slot is a no-op.
func (l *SessionLock) Release(ctx context.Context, transactionID string) error {
	return l.client.Del(ctx, l.prefix+transactionID).Err()
}
