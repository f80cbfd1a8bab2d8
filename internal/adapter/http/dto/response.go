package dto

import (
	"time"

	"github.com/avd/splitbook/internal/domain"
	"github.com/avd/splitbook/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Currency:  a.Currency,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// TransactionResponse represents a transaction in API responses.
// Split amounts come back formatted, debit and credit in separate
// columns the way a register renders them.
type TransactionResponse struct {
	ID          string             `json:"id"`
	Date        string             `json:"date"`
	Description string             `json:"description"`
	Payee       string             `json:"payee"`
	CheckNo     string             `json:"check_no"`
	Amount      string             `json:"amount"`
	Currency    string             `json:"currency"`
	Splits      []domain.SplitView `json:"splits"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction, f domain.AmountFormatter) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		Date:        t.Date.Format(DateLayout),
		Description: t.Description,
		Payee:       t.Payee,
		CheckNo:     t.CheckNo,
		Amount:      f.Format(t.Amount()),
		Currency:    t.Currency(),
		Splits:      t.Views(f),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txns []*domain.Transaction, f domain.AmountFormatter) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txns))
	for i, t := range txns {
		result[i] = TransactionFromDomain(t, f)
	}
	return result
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// SessionResponse represents the state of an edit session.
type SessionResponse struct {
	TransactionID string             `json:"transaction_id"`
	New           bool               `json:"new"`
	Dirty         bool               `json:"dirty"`
	Date          string             `json:"date"`
	Description   string             `json:"description"`
	Payee         string             `json:"payee"`
	CheckNo       string             `json:"check_no"`
	Amount        string             `json:"amount"`
	Splits        []domain.SplitView `json:"splits"`
}

// SessionFromState converts a use case session state to a response.
func SessionFromState(s *usecase.SessionState) *SessionResponse {
	return &SessionResponse{
		TransactionID: s.TransactionID,
		New:           s.New,
		Dirty:         s.Dirty,
		Date:          s.Date.Format(DateLayout),
		Description:   s.Description,
		Payee:         s.Payee,
		CheckNo:       s.CheckNo,
		Amount:        s.Amount,
		Splits:        s.Splits,
	}
}
