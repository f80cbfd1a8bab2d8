package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an ordered collection of splits plus the fields shown
// in a register row. A saved transaction always balances:
// sum(debits) == sum(credits).
type Transaction struct {
	ID          string
	Date        time.Time
	Description string
	Payee       string
	CheckNo     string
	Splits      []Split
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates an empty transaction with the two zero-value
// main splits a fresh editing panel starts from.
func NewTransaction(id string, date time.Time) *Transaction {
	return &Transaction{
		ID:   id,
		Date: date,
		Splits: []Split{
			{Role: RoleMainDebit},
			{Role: RoleMainCredit},
		},
	}
}

// Clone returns a deep copy of the transaction. Edit sessions work on
// clones so the committed state stays untouched until save.
func (t *Transaction) Clone() *Transaction {
	clone := *t
	clone.Splits = make([]Split, len(t.Splits))
	copy(clone.Splits, t.Splits)

	return &clone
}

// Currency returns the currency of the first non-zero split, or the
// empty string for an amountless transaction.
func (t *Transaction) Currency() string {
	for _, s := range t.Splits {
		if !s.Amount.IsZero() && s.Amount.Currency != "" {
			return s.Amount.Currency
		}
	}

	return ""
}

// CheckCurrencies verifies all non-zero splits share one currency.
func (t *Transaction) CheckCurrencies() error {
	currency := ""
	for _, s := range t.Splits {
		if s.Amount.IsZero() || s.Amount.Currency == "" {
			continue
		}

		if currency == "" {
			currency = s.Amount.Currency
			continue
		}

		if s.Amount.Currency != currency {
			return ErrCurrencyMismatch
		}
	}

	return nil
}

// TotalDebit sums the debit side of all splits.
func (t *Transaction) TotalDebit() Amount {
	total := decimal.Zero
	for _, s := range t.Splits {
		if s.Amount.IsPositive() {
			total = total.Add(s.Amount.Value)
		}
	}

	return Amount{Value: total, Currency: t.Currency()}
}

// TotalCredit sums the credit side of all splits as a positive value.
func (t *Transaction) TotalCredit() Amount {
	total := decimal.Zero
	for _, s := range t.Splits {
		if s.Amount.IsNegative() {
			total = total.Sub(s.Amount.Value)
		}
	}

	return Amount{Value: total, Currency: t.Currency()}
}

// Amount returns the transaction amount: the debit total, which equals
// the credit total whenever the transaction balances.
func (t *Transaction) Amount() Amount {
	return t.TotalDebit()
}

// delta is the signed imbalance: sum of all split amounts, positive
// when debits exceed credits.
func (t *Transaction) delta() decimal.Decimal {
	sum := decimal.Zero
	for _, s := range t.Splits {
		sum = sum.Add(s.Amount.Value)
	}

	return sum
}

// Balanced reports whether debits and credits cancel out exactly.
func (t *Transaction) Balanced() bool {
	return t.delta().IsZero()
}

// Validate checks the invariants a transaction must satisfy before it
// is written back to the ledger.
func (t *Transaction) Validate() error {
	if err := t.CheckCurrencies(); err != nil {
		return err
	}

	if !t.Balanced() {
		return ErrUnbalancedTransaction
	}

	return nil
}

// mainIndex returns the index of the split tagged with role, falling
// back to the split whose current sign matches when no tag is present.
// Returns -1 when the transaction has no such split.
func (t *Transaction) mainIndex(role SplitRole) int {
	for i, s := range t.Splits {
		if s.Role == role {
			return i
		}
	}

	wantDebit := role == RoleMainDebit
	for i, s := range t.Splits {
		if i > 1 {
			break
		}

		if wantDebit && s.Amount.IsPositive() || !wantDebit && s.Amount.IsNegative() {
			return i
		}
	}

	return -1
}

// adjustmentIndex returns the index of the trailing adjustment split,
// skipping the split at exclude. Returns -1 when none exists.
func (t *Transaction) adjustmentIndex(exclude int) int {
	for i := len(t.Splits) - 1; i >= 0; i-- {
		if i == exclude {
			continue
		}

		if t.Splits[i].Adjustment {
			return i
		}
	}

	return -1
}

// Views renders all splits for display.
func (t *Transaction) Views(f AmountFormatter) []SplitView {
	views := make([]SplitView, len(t.Splits))
	for i, s := range t.Splits {
		views[i] = s.View(f)
	}

	return views
}
