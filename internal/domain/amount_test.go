package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func usd(v string) Amount {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}

	return NewAmount(d, "USD")
}

func TestAmount_Add(t *testing.T) {
	tests := []struct {
		name        string
		a           Amount
		b           Amount
		want        string
		expectError error
	}{
		{
			name: "same currency",
			a:    usd("40.00"),
			b:    usd("2.50"),
			want: "42.5",
		},
		{
			name: "zero is currency agnostic",
			a:    ZeroAmount(),
			b:    usd("42.00"),
			want: "42",
		},
		{
			name: "zero with stale currency tag",
			a:    NewAmount(decimal.Zero, "EUR"),
			b:    usd("42.00"),
			want: "42",
		},
		{
			name:        "currency mismatch",
			a:           usd("10.00"),
			b:           NewAmount(decimal.NewFromInt(5), "EUR"),
			expectError: ErrCurrencyMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Add(tt.b)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Fatalf("expected error %v, got %v", tt.expectError, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got.Value.String() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got.Value.String())
			}
		})
	}
}

func TestAmount_SignHelpers(t *testing.T) {
	a := usd("42.00")

	if !a.IsPositive() || a.IsNegative() || a.IsZero() {
		t.Errorf("expected positive amount, got %+v", a)
	}

	n := a.Neg()
	if !n.IsNegative() {
		t.Errorf("expected negative amount after Neg, got %+v", n)
	}

	if !n.Abs().Equal(a) {
		t.Errorf("expected Abs to undo Neg, got %+v", n.Abs())
	}

	if !ZeroAmount().IsZero() {
		t.Error("expected zero amount to report IsZero")
	}
}

func TestAmountFormatter_Format(t *testing.T) {
	f := AmountFormatter{}

	if got := f.Format(usd("43")); got != "43.00" {
		t.Errorf("expected 43.00, got %s", got)
	}

	if got := f.Format(usd("0.5")); got != "0.50" {
		t.Errorf("expected 0.50, got %s", got)
	}

	if got := f.Format(usd("19.99").Neg()); got != "-19.99" {
		t.Errorf("expected -19.99, got %s", got)
	}

	comma := AmountFormatter{DecimalSep: ","}
	if got := comma.Format(usd("43")); got != "43,00" {
		t.Errorf("expected 43,00, got %s", got)
	}
}

func TestAmountFormatter_Parse(t *testing.T) {
	tests := []struct {
		name        string
		formatter   AmountFormatter
		input       string
		want        string
		expectError error
	}{
		{
			name:      "plain decimal",
			formatter: AmountFormatter{},
			input:     "43.00",
			want:      "43",
		},
		{
			name:      "empty string is zero",
			formatter: AmountFormatter{},
			input:     "",
			want:      "0",
		},
		{
			name:      "whitespace is zero",
			formatter: AmountFormatter{},
			input:     "  ",
			want:      "0",
		},
		{
			name:      "thousands separator stripped",
			formatter: AmountFormatter{ThousandsSep: ","},
			input:     "1,234.56",
			want:      "1234.56",
		},
		{
			name:      "comma decimal separator",
			formatter: AmountFormatter{DecimalSep: ",", ThousandsSep: " "},
			input:     "1 234,56",
			want:      "1234.56",
		},
		{
			name:        "not a decimal",
			formatter:   AmountFormatter{},
			input:       "forty-two",
			expectError: ErrInvalidAmountFormat,
		},
		{
			name:        "trailing garbage",
			formatter:   AmountFormatter{},
			input:       "42.00x",
			expectError: ErrInvalidAmountFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.formatter.Parse(tt.input, "USD")

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Fatalf("expected error %v, got %v", tt.expectError, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got.Value.String() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got.Value.String())
			}
		})
	}
}

func TestAmountFormatter_ParseZeroHasNoCurrency(t *testing.T) {
	got, err := AmountFormatter{}.Parse("0.00", "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.IsZero() || got.Currency != "" {
		t.Errorf("expected currency-agnostic zero, got %+v", got)
	}
}
