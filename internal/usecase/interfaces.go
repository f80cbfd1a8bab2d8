package usecase

import (
	"context"
	"time"

	"github.com/avd/splitbook/internal/domain"
)

// TransactionRepository defines data access for transactions and their
// splits.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error)
	// Update replaces the transaction row and all of its splits in one
	// shot; partial writes are never visible to readers.
	Update(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	Delete(ctx context.Context, id string) error
}

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	// EnsureByName inserts the account unless one with the same name
	// already exists.
	EnsureByName(ctx context.Context, tx Transaction, account *domain.Account) error
	GetByName(ctx context.Context, name string) (*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles database transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// SessionLocker enforces the one-edit-session-per-transaction rule
// across service instances.
type SessionLocker interface {
	// Acquire tries to take the session slot for a transaction.
	// Returns false when another session already holds it.
	Acquire(ctx context.Context, transactionID string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, transactionID string) error
}

// NotificationSink receives the synchronous notifications the edit
// session layer emits: session open/close and exactly one
// transaction.changed per commit. Sinks must not block; delivery
// failures are theirs to handle.
type NotificationSink interface {
	Publish(ctx context.Context, event domain.Event)
}

// Retrier retries an operation on transient storage errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
