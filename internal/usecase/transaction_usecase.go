package usecase

import (
	"context"
	"time"

	"github.com/avd/splitbook/internal/domain"
	"github.com/avd/splitbook/internal/infrastructure/metrics"
)

// TransactionUseCase handles transaction business logic outside of
// edit sessions: direct creation of two-split transactions, lookup,
// listing and deletion.
type TransactionUseCase struct {
	txManager TransactionManager
	txnRepo   TransactionRepository
	acctRepo  AccountRepository
	idGen     IDGenerator
	sink      NotificationSink
	metrics   *metrics.Metrics
	formatter domain.AmountFormatter
	currency  string
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(
	txManager TransactionManager,
	txnRepo TransactionRepository,
	acctRepo AccountRepository,
	idGen IDGenerator,
	sink NotificationSink,
	metrics *metrics.Metrics,
	formatter domain.AmountFormatter,
	currency string,
) *TransactionUseCase {
	return &TransactionUseCase{
		txManager: txManager,
		txnRepo:   txnRepo,
		acctRepo:  acctRepo,
		idGen:     idGen,
		sink:      sink,
		metrics:   metrics,
		formatter: formatter,
		currency:  currency,
	}
}

// CreateTransactionInput represents input for creating a simple
// two-split transaction. From is credited, To is debited.
type CreateTransactionInput struct {
	Date        time.Time
	Description string
	Payee       string
	CheckNo     string
	From        string
	To          string
	Amount      string
}

// CreateTransaction creates a balanced two-split transaction. Anything
// more elaborate goes through an edit session instead.
func (uc *TransactionUseCase) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error) {
	amount, err := uc.formatter.Parse(input.Amount, uc.currency)
	if err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	now := time.Now().UTC()
	txn := domain.NewTransaction(uc.idGen.Generate(), input.Date)
	txn.Description = input.Description
	txn.Payee = input.Payee
	txn.CheckNo = input.CheckNo
	txn.Splits[0].Account = input.To
	txn.Splits[1].Account = input.From
	txn.CreatedAt = now
	txn.UpdatedAt = now

	// Mirrors the credit side automatically.
	if err := txn.SetSplitAmount(0, amount); err != nil {
		return nil, err
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	for _, name := range []string{input.To, input.From} {
		if name == "" {
			continue
		}

		account := &domain.Account{
			ID:        uc.idGen.Generate(),
			Name:      name,
			Currency:  txn.Currency(),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.acctRepo.EnsureByName(txCtx, tx, account); err != nil {
			return nil, err
		}
	}

	if err := uc.txnRepo.Create(txCtx, tx, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	if uc.sink != nil {
		uc.sink.Publish(ctx, domain.Event{
			Type:          domain.EventTypeTransactionChanged,
			TransactionID: txn.ID,
			Payload: domain.TransactionChangedEvent{
				TransactionID: txn.ID,
				Amount:        uc.formatter.Format(txn.Amount()),
				SplitCount:    len(txn.Splits),
			},
			OccurredAt: now,
		})
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsCreated.Inc()
	}

	return txn, nil
}

// GetTransaction retrieves a transaction by ID.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.txnRepo.GetByID(ctx, id)
}

// ListTransactionsInput represents input for listing transactions.
type ListTransactionsInput struct {
	Limit  int
	Offset int
}

// ListTransactions lists transactions with pagination.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]*domain.Transaction, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}
	return uc.txnRepo.List(ctx, input.Limit, input.Offset)
}

// DeleteTransaction removes a transaction and its splits.
func (uc *TransactionUseCase) DeleteTransaction(ctx context.Context, id string) error {
	if err := uc.txnRepo.Delete(ctx, id); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsDeleted.Inc()
	}

	return nil
}
