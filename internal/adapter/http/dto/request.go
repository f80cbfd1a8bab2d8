package dto

import (
	"errors"
	"time"

	"github.com/avd/splitbook/internal/usecase"
)

// DateLayout is the wire format for transaction dates.
const DateLayout = "2006-01-02"

var errBothSides = errors.New("debit and credit are mutually exclusive")

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name:     r.Name,
		Currency: r.Currency,
	}
}

// CreateTransactionRequest represents a request to create a simple
// two-split transaction.
type CreateTransactionRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Payee       string `json:"payee"`
	CheckNo     string `json:"check_no"`
	From        string `json:"from"`
	To          string `json:"to"`
	Amount      string `json:"amount"`
}

// ToUseCaseInput converts to use case input. An absent date defaults
// to today.
func (r *CreateTransactionRequest) ToUseCaseInput() (usecase.CreateTransactionInput, error) {
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if r.Date != "" {
		parsed, err := time.Parse(DateLayout, r.Date)
		if err != nil {
			return usecase.CreateTransactionInput{}, err
		}
		date = parsed
	}

	return usecase.CreateTransactionInput{
		Date:        date,
		Description: r.Description,
		Payee:       r.Payee,
		CheckNo:     r.CheckNo,
		From:        r.From,
		To:          r.To,
		Amount:      r.Amount,
	}, nil
}

// OpenDraftSessionRequest represents a request to open a session over
// a brand-new transaction.
type OpenDraftSessionRequest struct {
	Date string `json:"date"`
}

// ParseDate returns the requested date, defaulting to today.
func (r *OpenDraftSessionRequest) ParseDate() (time.Time, error) {
	if r.Date == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}

	return time.Parse(DateLayout, r.Date)
}

// EditSplitRequest represents one split edit inside a session. Nil
// fields are left untouched.
type EditSplitRequest struct {
	Debit      *string `json:"debit,omitempty"`
	Credit     *string `json:"credit,omitempty"`
	Account    *string `json:"account,omitempty"`
	Memo       *string `json:"memo,omitempty"`
	Reconciled *bool   `json:"reconciled,omitempty"`
}

// ToUseCaseInput converts to use case input. Setting debit and credit
// in the same request is rejected: a split has exactly one side.
func (r *EditSplitRequest) ToUseCaseInput() (usecase.SplitEditInput, error) {
	if r.Debit != nil && r.Credit != nil {
		return usecase.SplitEditInput{}, errBothSides
	}

	return usecase.SplitEditInput{
		Debit:      r.Debit,
		Credit:     r.Credit,
		Account:    r.Account,
		Memo:       r.Memo,
		Reconciled: r.Reconciled,
	}, nil
}

// SetAmountRequest represents a total-amount edit.
type SetAmountRequest struct {
	Amount string `json:"amount"`
}

// EditFieldsRequest represents header-level edits to the transaction
// under session.
type EditFieldsRequest struct {
	Description *string `json:"description,omitempty"`
	Payee       *string `json:"payee,omitempty"`
	CheckNo     *string `json:"check_no,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *EditFieldsRequest) ToUseCaseInput() usecase.FieldsEditInput {
	return usecase.FieldsEditInput{
		Description: r.Description,
		Payee:       r.Payee,
		CheckNo:     r.CheckNo,
	}
}
