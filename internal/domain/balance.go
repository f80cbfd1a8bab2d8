package domain

import (
	"github.com/shopspring/decimal"
)

// The balancing engine restores sum(debits) == sum(credits) after each
// edit, deciding which split absorbs the difference:
//
//   - In a two-split transaction, editing one main split mirrors the
//     opposite amount onto the other. A missing counter split is
//     created, so an amountless transaction acquiring its first real
//     amount ends up with exactly two splits.
//   - With extra splits present, editing a main split must not touch
//     user-authored splits: the residual goes to a dedicated
//     adjustment split, reusing the existing one when present.
//   - Editing an extra split keeps the transaction amount stable by
//     shifting the main split on the same side as the imbalance,
//     unless an adjustment split already exists to absorb it.
//
// Splits are never reordered; adjustment splits are appended at the
// end and removed as soon as their amount reaches zero.

// SetSplitAmount sets the signed amount of the split at idx and
// rebalances. A positive amount is a debit, a negative one a credit.
// On error the transaction is left unchanged.
func (t *Transaction) SetSplitAmount(idx int, amount Amount) error {
	if idx < 0 || idx >= len(t.Splits) {
		return ErrSplitIndexOutOfRange
	}

	prev := t.Splits[idx]
	t.Splits[idx].Amount = amount
	// Once the user touches an adjustment split it is theirs.
	t.Splits[idx].Adjustment = false

	if err := t.rebalance(idx); err != nil {
		t.Splits[idx] = prev
		return err
	}

	return nil
}

// SetAmount sets the transaction's total amount by moving the two main
// splits in lockstep, leaving extra splits untouched. With exactly two
// splits this pins them to +amount/-amount outright, keeping the
// current debit/credit orientation.
func (t *Transaction) SetAmount(amount Amount) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}

	if err := t.CheckCurrencies(); err != nil {
		return err
	}

	currency, err := commonCurrency(amount, t.Amount())
	if err != nil {
		return err
	}

	if len(t.Splits) < 2 {
		return ErrSplitIndexOutOfRange
	}

	if len(t.Splits) == 2 {
		pos, neg := 0, 1
		if t.Splits[1].Amount.IsPositive() || t.Splits[0].Amount.IsNegative() {
			pos, neg = 1, 0
		}

		t.Splits[pos].Amount = NewAmount(amount.Value, currency)
		t.Splits[neg].Amount = NewAmount(amount.Value.Neg(), currency)

		return nil
	}

	delta := amount.Value.Sub(t.TotalDebit().Value)
	if delta.IsZero() {
		return nil
	}

	di := t.mainIndex(RoleMainDebit)
	ci := t.mainIndex(RoleMainCredit)
	if di < 0 || ci < 0 || di == ci {
		di, ci = 0, 1
	}

	t.Splits[di].Amount = NewAmount(t.Splits[di].Amount.Value.Add(delta), currency)
	t.Splits[ci].Amount = NewAmount(t.Splits[ci].Amount.Value.Sub(delta), currency)

	return nil
}

// AddSplit appends a zero-amount extra split and returns its index.
// A zero split contributes nothing, so balance is preserved.
func (t *Transaction) AddSplit() int {
	t.Splits = append(t.Splits, Split{Role: RoleExtra})
	return len(t.Splits) - 1
}

// RemoveSplit deletes the split at idx and restores balance. Removing
// a main split routes the residual to an adjustment split; removing an
// extra split folds its amount back into the main on the same side, so
// the transaction amount is preserved.
func (t *Transaction) RemoveSplit(idx int) error {
	if idx < 0 || idx >= len(t.Splits) {
		return ErrSplitIndexOutOfRange
	}

	removed := t.Splits[idx]
	t.Splits = append(t.Splits[:idx:idx], t.Splits[idx+1:]...)

	switch {
	case len(t.Splits) == 0:
		return nil
	case len(t.Splits) == 1:
		if t.Splits[0].Amount.IsZero() {
			return nil
		}

		role := RoleMainCredit
		if t.Splits[0].Role == RoleMainCredit {
			role = RoleMainDebit
		}

		t.Splits = append(t.Splits, Split{Role: role, Amount: t.Splits[0].Amount.Neg()})

		return nil
	}

	if removed.IsMain() {
		delta := t.delta()
		if delta.IsZero() {
			t.pruneZeroAdjustments()
			return nil
		}

		t.absorbIntoAdjustment(delta, t.Currency(), -1)

		return nil
	}

	if err := t.CheckCurrencies(); err != nil {
		return err
	}

	delta := t.delta()
	if delta.IsZero() {
		t.pruneZeroAdjustments()
		return nil
	}

	currency := t.Currency()

	if adj := t.adjustmentIndex(-1); adj >= 0 {
		t.foldIntoAdjustment(adj, delta, currency)
		return nil
	}

	// The removed extra split came off one side, so the main on that
	// same side reabsorbs it. Shifting the opposite main would shrink
	// the transaction amount instead.
	role := RoleMainDebit
	if removed.Amount.IsNegative() {
		role = RoleMainCredit
	}

	mi := t.mainIndex(role)
	if mi < 0 {
		t.absorbIntoAdjustment(delta, currency, -1)
		return nil
	}

	t.Splits[mi].Amount = NewAmount(t.Splits[mi].Amount.Value.Sub(delta), currency)

	return nil
}

// Rebalance re-runs the balancing pass without a specific edited
// split. It is idempotent: a balanced transaction is left untouched.
func (t *Transaction) Rebalance() error {
	return t.rebalance(-1)
}

func (t *Transaction) rebalance(edited int) error {
	if err := t.CheckCurrencies(); err != nil {
		return err
	}

	delta := t.delta()
	if delta.IsZero() {
		t.pruneZeroAdjustments()
		return nil
	}

	// Two-way balance: the other main split mirrors the edited one.
	if len(t.Splits) <= 2 && edited >= 0 {
		if len(t.Splits) == 1 {
			role := RoleMainCredit
			if t.Splits[0].Role == RoleMainCredit {
				role = RoleMainDebit
			}

			t.Splits = append(t.Splits, Split{Role: role})
		}

		other := 1 - edited
		t.Splits[other].Amount = t.Splits[edited].Amount.Neg()

		// When the mirror reverses the pair's orientation, the role
		// tags must follow the signs, or later edits would shift the
		// wrong main.
		if t.Splits[edited].IsMain() && t.Splits[other].IsMain() &&
			(t.Splits[edited].Amount.IsNegative() && t.Splits[edited].Role == RoleMainDebit ||
				t.Splits[edited].Amount.IsPositive() && t.Splits[edited].Role == RoleMainCredit) {
			t.Splits[edited].Role, t.Splits[other].Role = t.Splits[other].Role, t.Splits[edited].Role
		}

		return nil
	}

	currency := t.Currency()

	if adj := t.adjustmentIndex(edited); adj >= 0 {
		t.foldIntoAdjustment(adj, delta, currency)
		return nil
	}

	if edited >= 0 && t.Splits[edited].IsMain() {
		t.absorbIntoAdjustment(delta, currency, edited)
		return nil
	}

	// An extra split changed: keep the transaction amount stable by
	// shifting the main split on the imbalanced side.
	role := RoleMainDebit
	if delta.IsNegative() {
		role = RoleMainCredit
	}

	mi := t.mainIndex(role)
	if mi < 0 || mi == edited {
		t.absorbIntoAdjustment(delta, currency, edited)
		return nil
	}

	t.Splits[mi].Amount = NewAmount(t.Splits[mi].Amount.Value.Sub(delta), currency)

	return nil
}

// absorbIntoAdjustment routes delta to the adjustment split, folding
// into the existing one or appending a new one at the end.
func (t *Transaction) absorbIntoAdjustment(delta decimal.Decimal, currency string, exclude int) {
	if adj := t.adjustmentIndex(exclude); adj >= 0 {
		t.foldIntoAdjustment(adj, delta, currency)
		return
	}

	t.Splits = append(t.Splits, Split{
		Role:       RoleExtra,
		Adjustment: true,
		Amount:     NewAmount(delta.Neg(), currency),
	})
}

func (t *Transaction) foldIntoAdjustment(adj int, delta decimal.Decimal, currency string) {
	value := t.Splits[adj].Amount.Value.Sub(delta)
	if value.IsZero() {
		t.Splits = append(t.Splits[:adj:adj], t.Splits[adj+1:]...)
		return
	}

	t.Splits[adj].Amount = NewAmount(value, currency)
}

// pruneZeroAdjustments drops degenerate zero-amount adjustment splits.
func (t *Transaction) pruneZeroAdjustments() {
	kept := t.Splits[:0]
	for _, s := range t.Splits {
		if s.Adjustment && s.Amount.IsZero() {
			continue
		}

		kept = append(kept, s)
	}

	t.Splits = kept
}
