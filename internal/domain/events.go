package domain

import "time"

// Event types
const (
	EventTypeTransactionChanged = "transaction.changed"
	EventTypeSessionOpened      = "session.opened"
	EventTypeSessionClosed      = "session.closed"
)

// Event is a synchronous notification emitted by the edit session
// layer: once on session open and close, exactly once per commit.
// Consumers (undo stacks, view refreshers) subscribe through a sink.
type Event struct {
	Type          string
	TransactionID string
	Payload       any
	OccurredAt    time.Time
}

// TransactionChangedEvent payload
type TransactionChangedEvent struct {
	TransactionID string `json:"transaction_id"`
	Amount        string `json:"amount"`
	SplitCount    int    `json:"split_count"`
}

// SessionOpenedEvent payload
type SessionOpenedEvent struct {
	TransactionID string `json:"transaction_id"`
	New           bool   `json:"new"`
}

// SessionClosedEvent payload
type SessionClosedEvent struct {
	TransactionID string `json:"transaction_id"`
	Committed     bool   `json:"committed"`
}
