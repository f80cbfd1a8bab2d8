package domain

import (
	"testing"
	"time"
)

func TestTransaction_Clone(t *testing.T) {
	txn := simpleTransaction(t, "42")
	clone := txn.Clone()

	if err := clone.SetSplitAmount(0, usd("100")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clone.Splits[0].Account = "changed"

	if got := testFmt.Format(txn.Amount()); got != "42.00" {
		t.Errorf("expected original amount untouched, got %s", got)
	}

	if txn.Splits[0].Account != "groceries" {
		t.Errorf("expected original account untouched, got %s", txn.Splits[0].Account)
	}
}

func TestTransaction_Totals(t *testing.T) {
	txn := splitTransaction(t)

	if got := txn.TotalDebit().Value.String(); got != "42" {
		t.Errorf("expected total debit 42, got %s", got)
	}

	if got := txn.TotalCredit().Value.String(); got != "42" {
		t.Errorf("expected total credit 42, got %s", got)
	}

	if got := txn.Currency(); got != "USD" {
		t.Errorf("expected currency USD, got %s", got)
	}
}

func TestTransaction_ValidateUnbalanced(t *testing.T) {
	txn := NewTransaction("txn-1", time.Now())
	txn.Splits[0].Amount = usd("10")

	if err := txn.Validate(); err != ErrUnbalancedTransaction {
		t.Errorf("expected ErrUnbalancedTransaction, got %v", err)
	}
}

func TestTransaction_ViewsSidesAreExclusive(t *testing.T) {
	txn := simpleTransaction(t, "42")
	views := txn.Views(testFmt)

	if views[0].Debit != "42.00" || views[0].Credit != "" {
		t.Errorf("expected debit-only view, got %+v", views[0])
	}

	if views[1].Credit != "42.00" || views[1].Debit != "" {
		t.Errorf("expected credit-only view, got %+v", views[1])
	}
}
