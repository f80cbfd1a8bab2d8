package domain

// SplitRole tags the position a split plays in a transaction. The two
// main splits form the transaction's primary debit/credit pair; every
// other split is an extra.
type SplitRole string

const (
	RoleMainDebit  SplitRole = "main_debit"
	RoleMainCredit SplitRole = "main_credit"
	RoleExtra      SplitRole = "extra"
)

// Split is one leg of a transaction. Amount is signed: positive means
// debit, negative means credit, so a split can never hold both at
// once. Adjustment marks splits the balancing engine created to absorb
// residual imbalance, as opposed to user-authored splits.
type Split struct {
	Account    string
	Amount     Amount
	Memo       string
	Role       SplitRole
	Reconciled bool
	Adjustment bool
}

// Debit returns the debit portion of the split, zero when the split is
// a credit.
func (s Split) Debit() Amount {
	if s.Amount.IsPositive() {
		return s.Amount
	}

	return ZeroAmount()
}

// Credit returns the credit portion of the split as a positive value,
// zero when the split is a debit.
func (s Split) Credit() Amount {
	if s.Amount.IsNegative() {
		return s.Amount.Neg()
	}

	return ZeroAmount()
}

// IsMain reports whether the split is one of the two main splits.
func (s Split) IsMain() bool {
	return s.Role == RoleMainDebit || s.Role == RoleMainCredit
}

// SplitView is the read-only projection of a split handed to table
// renderers: debit and credit pre-formatted, empty string for the
// unused side.
type SplitView struct {
	Account    string `json:"account"`
	Debit      string `json:"debit"`
	Credit     string `json:"credit"`
	Memo       string `json:"memo"`
	Reconciled bool   `json:"reconciled"`
	Adjustment bool   `json:"adjustment"`
}

// View renders the split for display using the given formatter.
func (s Split) View(f AmountFormatter) SplitView {
	view := SplitView{
		Account:    s.Account,
		Memo:       s.Memo,
		Reconciled: s.Reconciled,
		Adjustment: s.Adjustment,
	}

	if s.Amount.IsPositive() {
		view.Debit = f.Format(s.Amount)
	} else if s.Amount.IsNegative() {
		view.Credit = f.Format(s.Amount.Neg())
	}

	return view
}
