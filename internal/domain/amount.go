package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is an exact decimal value in a single currency. A zero amount
// is currency-agnostic and combines with any other amount.
type Amount struct {
	Value    decimal.Decimal
	Currency string
}

// NewAmount creates an amount from a decimal value and a currency code.
func NewAmount(value decimal.Decimal, currency string) Amount {
	return Amount{Value: value, Currency: currency}
}

// ZeroAmount returns the currency-agnostic zero amount.
func ZeroAmount() Amount {
	return Amount{}
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.Value.IsZero()
}

// IsPositive reports whether the amount is strictly greater than zero.
func (a Amount) IsPositive() bool {
	return a.Value.IsPositive()
}

// IsNegative reports whether the amount is strictly less than zero.
func (a Amount) IsNegative() bool {
	return a.Value.IsNegative()
}

// Neg returns the amount with its sign flipped.
func (a Amount) Neg() Amount {
	return Amount{Value: a.Value.Neg(), Currency: a.Currency}
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return Amount{Value: a.Value.Abs(), Currency: a.Currency}
}

// Add returns a+b. Fails with ErrCurrencyMismatch when both operands
// are non-zero and carry different currencies.
func (a Amount) Add(b Amount) (Amount, error) {
	currency, err := commonCurrency(a, b)
	if err != nil {
		return Amount{}, err
	}

	return Amount{Value: a.Value.Add(b.Value), Currency: currency}, nil
}

// Sub returns a-b under the same currency rules as Add.
func (a Amount) Sub(b Amount) (Amount, error) {
	currency, err := commonCurrency(a, b)
	if err != nil {
		return Amount{}, err
	}

	return Amount{Value: a.Value.Sub(b.Value), Currency: currency}, nil
}

// Cmp compares a and b: -1 if a < b, 0 if equal, 1 if a > b.
func (a Amount) Cmp(b Amount) (int, error) {
	if _, err := commonCurrency(a, b); err != nil {
		return 0, err
	}

	return a.Value.Cmp(b.Value), nil
}

// Equal reports whether a and b have the same value and compatible
// currencies.
func (a Amount) Equal(b Amount) bool {
	cmp, err := a.Cmp(b)
	return err == nil && cmp == 0
}

// SameCurrency reports whether the two amounts can be combined.
func (a Amount) SameCurrency(b Amount) bool {
	_, err := commonCurrency(a, b)
	return err == nil
}

func commonCurrency(a, b Amount) (string, error) {
	switch {
	case a.IsZero() && a.Currency == "":
		return b.Currency, nil
	case b.IsZero() && b.Currency == "":
		return a.Currency, nil
	case a.Currency == b.Currency:
		return a.Currency, nil
	case a.IsZero():
		return b.Currency, nil
	case b.IsZero():
		return a.Currency, nil
	}

	return "", fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, a.Currency, b.Currency)
}

// AmountFormatter renders and parses amounts as decimal strings with
// two fractional digits, using configurable separators. The zero value
// uses "." as the decimal separator and no thousands grouping.
type AmountFormatter struct {
	DecimalSep   string
	ThousandsSep string
}

// Format renders the amount with two fractional digits, keeping the
// sign, e.g. "43.00" or "-19.99".
func (f AmountFormatter) Format(a Amount) string {
	s := a.Value.StringFixed(2)
	if f.DecimalSep != "" && f.DecimalSep != "." {
		s = strings.Replace(s, ".", f.DecimalSep, 1)
	}

	return s
}

// Parse converts a decimal string into an amount in the given
// currency. An empty string parses as zero; anything that is not a
// valid decimal fails with ErrInvalidAmountFormat.
func (f AmountFormatter) Parse(s, currency string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ZeroAmount(), nil
	}

	if f.ThousandsSep != "" {
		s = strings.ReplaceAll(s, f.ThousandsSep, "")
	}

	if f.DecimalSep != "" && f.DecimalSep != "." {
		s = strings.Replace(s, f.DecimalSep, ".", 1)
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmountFormat, s)
	}

	if value.IsZero() {
		return ZeroAmount(), nil
	}

	return Amount{Value: value, Currency: currency}, nil
}
