package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/avd/splitbook/internal/domain"
	"github.com/avd/splitbook/internal/infrastructure/metrics"
)

// SessionUseCase manages transaction edit sessions. At most one
// session exists per transaction: a process-local registry handles the
// common case and a SessionLocker extends the rule across instances.
type SessionUseCase struct {
	txManager  TransactionManager
	txnRepo    TransactionRepository
	acctRepo   AccountRepository
	idGen      IDGenerator
	locker     SessionLocker
	sink       NotificationSink
	retrier    Retrier
	metrics    *metrics.Metrics
	formatter  domain.AmountFormatter
	currency   string
	sessionTTL time.Duration

	mu       sync.Mutex
	sessions map[string]*domain.EditSession
}

func NewSessionUseCase(
	txManager TransactionManager,
	txnRepo TransactionRepository,
	acctRepo AccountRepository,
	idGen IDGenerator,
	locker SessionLocker,
	sink NotificationSink,
	retrier Retrier,
	metrics *metrics.Metrics,
	formatter domain.AmountFormatter,
	currency string,
	sessionTTL time.Duration,
) *SessionUseCase {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}

	return &SessionUseCase{
		txManager:  txManager,
		txnRepo:    txnRepo,
		acctRepo:   acctRepo,
		idGen:      idGen,
		locker:     locker,
		sink:       sink,
		retrier:    retrier,
		metrics:    metrics,
		formatter:  formatter,
		currency:   currency,
		sessionTTL: sessionTTL,
		sessions:   make(map[string]*domain.EditSession),
	}
}

// SessionState is the snapshot of a session returned to callers after
// every operation. Amounts come back formatted; the engine keeps the
// splits balanced between edits.
type SessionState struct {
	TransactionID string
	New           bool
	Dirty         bool
	Date          time.Time
	Description   string
	Payee         string
	CheckNo       string
	Amount        string
	Splits        []domain.SplitView
}

// SplitEditInput carries one split edit. Nil fields are left alone;
// setting Debit and Credit together is rejected by the handler layer,
// so the last non-nil of the two wins here.
type SplitEditInput struct {
	Debit      *string
	Credit     *string
	Account    *string
	Memo       *string
	Reconciled *bool
}

// FieldsEditInput carries header-level edits to the transaction.
type FieldsEditInput struct {
	Description *string
	Payee       *string
	CheckNo     *string
}

func (uc *SessionUseCase) state(s *domain.EditSession) *SessionState {
	w := s.Working()

	return &SessionState{
		TransactionID: s.TransactionID(),
		New:           s.IsNew(),
		Dirty:         s.Dirty(),
		Date:          w.Date,
		Description:   w.Description,
		Payee:         w.Payee,
		CheckNo:       w.CheckNo,
		Amount:        s.Amount(),
		Splits:        s.Views(),
	}
}

func (uc *SessionUseCase) acquireLock(ctx context.Context, transactionID string) error {
	ok, err := uc.locker.Acquire(ctx, transactionID, uc.sessionTTL)
	if err != nil {
		return err
	}

	if !ok {
		if uc.metrics != nil {
			uc.metrics.ConcurrentEditRejections.Inc()
		}

		return domain.ErrConcurrentEdit
	}

	return nil
}

// Open starts an edit session over an existing transaction. A second
// Open for the same transaction fails with ErrConcurrentEdit until the
// first session is saved or discarded.
func (uc *SessionUseCase) Open(ctx context.Context, transactionID string) (*SessionState, error) {
	txn, err := uc.txnRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, exists := uc.sessions[transactionID]; exists {
		if uc.metrics != nil {
			uc.metrics.ConcurrentEditRejections.Inc()
		}

		return nil, domain.ErrConcurrentEdit
	}

	if err := uc.acquireLock(ctx, transactionID); err != nil {
		return nil, err
	}

	session := domain.NewEditSession(txn, uc.formatter, uc.currency)
	uc.sessions[transactionID] = session

	uc.publish(ctx, domain.EventTypeSessionOpened, transactionID, domain.SessionOpenedEvent{
		TransactionID: transactionID,
		New:           false,
	})

	if uc.metrics != nil {
		uc.metrics.SessionsOpened.Inc()
		uc.metrics.ActiveSessions.Inc()
	}

	return uc.state(session), nil
}

// OpenNew starts a session over a draft transaction that does not
// exist in the ledger yet. The draft starts with two zero main splits.
func (uc *SessionUseCase) OpenNew(ctx context.Context, date time.Time) (*SessionState, error) {
	id := uc.idGen.Generate()
	txn := domain.NewTransaction(id, date)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.acquireLock(ctx, id); err != nil {
		return nil, err
	}

	session := domain.NewDraftSession(txn, uc.formatter, uc.currency)
	uc.sessions[id] = session

	uc.publish(ctx, domain.EventTypeSessionOpened, id, domain.SessionOpenedEvent{
		TransactionID: id,
		New:           true,
	})

	if uc.metrics != nil {
		uc.metrics.SessionsOpened.Inc()
		uc.metrics.ActiveSessions.Inc()
	}

	return uc.state(session), nil
}

// Get returns the current state of an open session.
func (uc *SessionUseCase) Get(ctx context.Context, transactionID string) (*SessionState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, err := uc.session(transactionID)
	if err != nil {
		return nil, err
	}

	return uc.state(session), nil
}

// EditSplit applies one or more field changes to the split at index.
// Amount changes go through the balancing engine; a failed edit leaves
// the session exactly as it was.
func (uc *SessionUseCase) EditSplit(ctx context.Context, transactionID string, index int, input SplitEditInput) (*SessionState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, err := uc.session(transactionID)
	if err != nil {
		return nil, err
	}

	// All-or-nothing: a failing step rolls back the ones already
	// applied, so a bad amount cannot leave a half-edited split.
	restore := session.Checkpoint()

	if input.Account != nil {
		if _, err := session.SetSplitAccount(index, *input.Account); err != nil {
			restore()
			return nil, err
		}
	}

	if input.Memo != nil {
		if _, err := session.SetSplitMemo(index, *input.Memo); err != nil {
			restore()
			return nil, err
		}
	}

	if input.Reconciled != nil {
		if _, err := session.SetSplitReconciled(index, *input.Reconciled); err != nil {
			restore()
			return nil, err
		}
	}

	if input.Debit != nil {
		if _, err := session.SetSplitDebit(index, *input.Debit); err != nil {
			restore()
			return nil, err
		}
	}

	if input.Credit != nil {
		if _, err := session.SetSplitCredit(index, *input.Credit); err != nil {
			restore()
			return nil, err
		}
	}

	return uc.state(session), nil
}

// EditFields applies header-level changes to the working transaction.
func (uc *SessionUseCase) EditFields(ctx context.Context, transactionID string, input FieldsEditInput) (*SessionState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, err := uc.session(transactionID)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		session.SetDescription(*input.Description)
	}

	if input.Payee != nil {
		session.SetPayee(*input.Payee)
	}

	if input.CheckNo != nil {
		session.SetCheckNo(*input.CheckNo)
	}

	return uc.state(session), nil
}

// SetAmount changes the transaction's total amount, spreading the
// delta over the main splits.
func (uc *SessionUseCase) SetAmount(ctx context.Context, transactionID, amount string) (*SessionState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, err := uc.session(transactionID)
	if err != nil {
		return nil, err
	}

	if _, err := session.SetAmount(amount); err != nil {
		return nil, err
	}

	return uc.state(session), nil
}

// AddSplit appends a zero split to the working transaction.
func (uc *SessionUseCase) AddSplit(ctx context.Context, transactionID string) (*SessionState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, err := uc.session(transactionID)
	if err != nil {
		return nil, err
	}

	session.AddSplit()

	return uc.state(session), nil
}

// RemoveSplit deletes the split at index and rebalances.
func (uc *SessionUseCase) RemoveSplit(ctx context.Context, transactionID string, index int) (*SessionState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, err := uc.session(transactionID)
	if err != nil {
		return nil, err
	}

	if _, err := session.RemoveSplit(index); err != nil {
		return nil, err
	}

	return uc.state(session), nil
}

// Save validates the working copy, writes it to storage and closes the
// session. Exactly one transaction.changed notification goes out per
// successful save, after the database commit.
func (uc *SessionUseCase) Save(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	start := time.Now()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, err := uc.session(transactionID)
	if err != nil {
		return nil, err
	}

	result, err := session.Result()
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.BalanceViolations.Inc()
		}

		return nil, err
	}

	now := time.Now().UTC()
	if session.IsNew() {
		result.CreatedAt = now
	}
	result.UpdatedAt = now

	commit := func() error {
		txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
		defer cancel()

		tx, err := uc.txManager.Begin(txCtx)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback(txCtx) }()

		for i := range result.Splits {
			name := result.Splits[i].Account
			if name == "" {
				continue
			}

			account := &domain.Account{
				ID:        uc.idGen.Generate(),
				Name:      name,
				Currency:  result.Currency(),
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := uc.acctRepo.EnsureByName(txCtx, tx, account); err != nil {
				return err
			}
		}

		if session.IsNew() {
			if err := uc.txnRepo.Create(txCtx, tx, result); err != nil {
				return err
			}
		} else {
			if err := uc.txnRepo.Update(txCtx, tx, result); err != nil {
				return err
			}
		}

		return tx.Commit(txCtx)
	}

	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, commit)
	} else {
		err = commit()
	}
	if err != nil {
		return nil, err
	}

	delete(uc.sessions, transactionID)
	_ = uc.locker.Release(ctx, transactionID)

	uc.publish(ctx, domain.EventTypeTransactionChanged, transactionID, domain.TransactionChangedEvent{
		TransactionID: transactionID,
		Amount:        uc.formatter.Format(result.Amount()),
		SplitCount:    len(result.Splits),
	})
	uc.publish(ctx, domain.EventTypeSessionClosed, transactionID, domain.SessionClosedEvent{
		TransactionID: transactionID,
		Committed:     true,
	})

	if uc.metrics != nil {
		uc.metrics.SessionsCommitted.Inc()
		uc.metrics.ActiveSessions.Dec()
		uc.metrics.SaveDuration.Observe(time.Since(start).Seconds())
		uc.metrics.SplitsPerSave.Observe(float64(len(result.Splits)))
	}

	return result, nil
}

// Discard closes the session without saving. The committed transaction
// is untouched.
func (uc *SessionUseCase) Discard(ctx context.Context, transactionID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, err := uc.session(transactionID); err != nil {
		return err
	}

	delete(uc.sessions, transactionID)
	_ = uc.locker.Release(ctx, transactionID)

	uc.publish(ctx, domain.EventTypeSessionClosed, transactionID, domain.SessionClosedEvent{
		TransactionID: transactionID,
		Committed:     false,
	})

	if uc.metrics != nil {
		uc.metrics.SessionsDiscarded.Inc()
		uc.metrics.ActiveSessions.Dec()
	}

	return nil
}

// session looks up an open session. Callers hold uc.mu.
func (uc *SessionUseCase) session(transactionID string) (*domain.EditSession, error) {
	s, ok := uc.sessions[transactionID]
	if !ok {
		return nil, domain.ErrNoOpenSession
	}

	return s, nil
}

func (uc *SessionUseCase) publish(ctx context.Context, eventType, transactionID string, payload any) {
	if uc.sink == nil {
		return
	}

	uc.sink.Publish(ctx, domain.Event{
		Type:          eventType,
		TransactionID: transactionID,
		Payload:       payload,
		OccurredAt:    time.Now().UTC(),
	})
}
