package domain

// EditSession stages edits to one transaction. It owns a deep working
// copy of the splits; the committed transaction is never touched until
// the caller takes Result() and writes it back. Dropping the session
// is a discard: no observable effect.
type EditSession struct {
	original  *Transaction
	working   *Transaction
	formatter AmountFormatter
	currency  string
	isNew     bool
	dirty     bool
}

// NewEditSession opens a session over an existing transaction.
// currency is the fallback used when the transaction is amountless.
func NewEditSession(t *Transaction, formatter AmountFormatter, currency string) *EditSession {
	return &EditSession{
		original:  t,
		working:   t.Clone(),
		formatter: formatter,
		currency:  currency,
	}
}

// NewDraftSession opens a session over a brand-new transaction that
// does not exist in the ledger yet.
func NewDraftSession(t *Transaction, formatter AmountFormatter, currency string) *EditSession {
	s := NewEditSession(t, formatter, currency)
	s.isNew = true

	return s
}

// TransactionID identifies the transaction under edit.
func (s *EditSession) TransactionID() string {
	return s.working.ID
}

// IsNew reports whether the session edits a not-yet-saved transaction.
func (s *EditSession) IsNew() bool {
	return s.isNew
}

// Dirty reports whether any edit has been applied.
func (s *EditSession) Dirty() bool {
	return s.dirty
}

// Views returns the current working splits formatted for display.
func (s *EditSession) Views() []SplitView {
	return s.working.Views(s.formatter)
}

// Amount returns the formatted transaction amount of the working copy.
func (s *EditSession) Amount() string {
	return s.formatter.Format(s.working.Amount())
}

// Working exposes the working transaction. Callers must treat it as
// read-only; all mutation goes through the session methods.
func (s *EditSession) Working() *Transaction {
	return s.working
}

// Checkpoint captures the working state and returns a function that
// restores it. A composite edit uses it to roll back the steps already
// applied when a later step fails.
func (s *EditSession) Checkpoint() func() {
	working, dirty := s.working.Clone(), s.dirty

	return func() {
		s.working = working
		s.dirty = dirty
	}
}

func (s *EditSession) parse(value string) (Amount, error) {
	currency := s.working.Currency()
	if currency == "" {
		currency = s.currency
	}

	return s.formatter.Parse(value, currency)
}

// SetSplitDebit parses value and sets the split at idx to a debit of
// that size, rebalancing the transaction.
func (s *EditSession) SetSplitDebit(idx int, value string) ([]SplitView, error) {
	amount, err := s.parse(value)
	if err != nil {
		return nil, err
	}

	if err := s.working.SetSplitAmount(idx, amount); err != nil {
		return nil, err
	}

	s.dirty = true

	return s.Views(), nil
}

// SetSplitCredit parses value and sets the split at idx to a credit of
// that size, rebalancing the transaction.
func (s *EditSession) SetSplitCredit(idx int, value string) ([]SplitView, error) {
	amount, err := s.parse(value)
	if err != nil {
		return nil, err
	}

	if err := s.working.SetSplitAmount(idx, amount.Neg()); err != nil {
		return nil, err
	}

	s.dirty = true

	return s.Views(), nil
}

// SetAmount parses value and sets the transaction's total amount.
func (s *EditSession) SetAmount(value string) ([]SplitView, error) {
	amount, err := s.parse(value)
	if err != nil {
		return nil, err
	}

	if err := s.working.SetAmount(amount); err != nil {
		return nil, err
	}

	s.dirty = true

	return s.Views(), nil
}

// SetSplitAccount assigns the split at idx to an account.
func (s *EditSession) SetSplitAccount(idx int, account string) ([]SplitView, error) {
	if idx < 0 || idx >= len(s.working.Splits) {
		return nil, ErrSplitIndexOutOfRange
	}

	s.working.Splits[idx].Account = account
	s.dirty = true

	return s.Views(), nil
}

// SetSplitMemo sets the memo of the split at idx.
func (s *EditSession) SetSplitMemo(idx int, memo string) ([]SplitView, error) {
	if idx < 0 || idx >= len(s.working.Splits) {
		return nil, ErrSplitIndexOutOfRange
	}

	s.working.Splits[idx].Memo = memo
	s.dirty = true

	return s.Views(), nil
}

// SetSplitReconciled toggles the reconciliation flag of the split at
// idx.
func (s *EditSession) SetSplitReconciled(idx int, reconciled bool) ([]SplitView, error) {
	if idx < 0 || idx >= len(s.working.Splits) {
		return nil, ErrSplitIndexOutOfRange
	}

	s.working.Splits[idx].Reconciled = reconciled
	s.dirty = true

	return s.Views(), nil
}

// AddSplit appends a zero-amount split to the working copy.
func (s *EditSession) AddSplit() []SplitView {
	s.working.AddSplit()
	s.dirty = true

	return s.Views()
}

// RemoveSplit deletes the split at idx from the working copy and
// rebalances.
func (s *EditSession) RemoveSplit(idx int) ([]SplitView, error) {
	if err := s.working.RemoveSplit(idx); err != nil {
		return nil, err
	}

	s.dirty = true

	return s.Views(), nil
}

// SetDescription updates the working transaction's description.
func (s *EditSession) SetDescription(v string) {
	s.working.Description = v
	s.dirty = true
}

// SetPayee updates the working transaction's payee.
func (s *EditSession) SetPayee(v string) {
	s.working.Payee = v
	s.dirty = true
}

// SetCheckNo updates the working transaction's check number.
func (s *EditSession) SetCheckNo(v string) {
	s.working.CheckNo = v
	s.dirty = true
}

// Result validates the balance invariant and hands out the working
// copy for commit. The engine keeps the invariant at all times, so a
// failure here means a programming fault, not user error.
func (s *EditSession) Result() (*Transaction, error) {
	if err := s.working.Validate(); err != nil {
		return nil, err
	}

	return s.working, nil
}
