package domain

import "errors"

var (
	// Amount errors
	ErrCurrencyMismatch    = errors.New("amounts have different currencies")
	ErrInvalidAmountFormat = errors.New("invalid amount format")
	ErrInvalidAmount       = errors.New("amount must not be negative")

	// Transaction errors
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrSplitIndexOutOfRange  = errors.New("split index out of range")
	ErrUnbalancedTransaction = errors.New("transaction debits and credits do not balance")

	// Edit session errors
	ErrConcurrentEdit = errors.New("transaction already has an open edit session")
	ErrNoOpenSession  = errors.New("no open edit session for transaction")

	// Account errors
	ErrAccountNotFound = errors.New("account not found")
)
