package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avd/splitbook/internal/adapter/http/dto"
	"github.com/avd/splitbook/internal/domain"
	"github.com/avd/splitbook/internal/usecase"
)

type transactionServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error)
	getFn    func(ctx context.Context, id string) (*domain.Transaction, error)
	listFn   func(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *transactionServiceStub) CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) {
	return s.createFn(ctx, input)
}

func (s *transactionServiceStub) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.getFn(ctx, id)
}

func (s *transactionServiceStub) ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error) {
	return s.listFn(ctx, input)
}

func (s *transactionServiceStub) DeleteTransaction(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func sampleTransaction(t *testing.T, id string) *domain.Transaction {
	t.Helper()

	txn := domain.NewTransaction(id, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))
	txn.Splits[0].Account = "Groceries"
	txn.Splits[1].Account = "Checking"
	if err := txn.SetSplitAmount(0, domain.Amount{Value: decimal.NewFromInt(42), Currency: "USD"}); err != nil {
		t.Fatalf("failed to set amount: %v", err)
	}
	return txn
}

func TestTransactionHandler_Create_Success(t *testing.T) {
	var captured usecase.CreateTransactionInput

	handler := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) {
			captured = input
			return sampleTransaction(t, "txn-1"), nil
		},
		getFn:    func(ctx context.Context, id string) (*domain.Transaction, error) { return nil, nil },
		listFn:   func(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error) { return nil, nil },
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}, domain.AmountFormatter{})

	body, _ := json.Marshal(dto.CreateTransactionRequest{
		Date:        "2025-03-14",
		Description: "weekly shop",
		From:        "Checking",
		To:          "Groceries",
		Amount:      "42",
	})

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	if captured.From != "Checking" || captured.To != "Groceries" || captured.Amount != "42" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "txn-1" {
		t.Fatalf("expected transaction ID txn-1, got %s", resp.ID)
	}
	if resp.Amount != "42.00" {
		t.Fatalf("expected amount 42.00, got %s", resp.Amount)
	}
}

func TestTransactionHandler_Create_InvalidBody(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) {
			t.Fatal("CreateTransaction should not be called")
			return nil, nil
		},
		getFn:    func(ctx context.Context, id string) (*domain.Transaction, error) { return nil, nil },
		listFn:   func(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error) { return nil, nil },
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}, domain.AmountFormatter{})

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Create_BadDate(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) {
			t.Fatal("CreateTransaction should not be called on bad date")
			return nil, nil
		},
		getFn:    func(ctx context.Context, id string) (*domain.Transaction, error) { return nil, nil },
		listFn:   func(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error) { return nil, nil },
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}, domain.AmountFormatter{})

	body, _ := json.Marshal(dto.CreateTransactionRequest{Date: "14/03/2025", From: "a", To: "b", Amount: "1"})
	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Create_InvalidAmount(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) {
			return nil, domain.ErrInvalidAmountFormat
		},
		getFn:    func(ctx context.Context, id string) (*domain.Transaction, error) { return nil, nil },
		listFn:   func(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error) { return nil, nil },
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}, domain.AmountFormatter{})

	body, _ := json.Marshal(dto.CreateTransactionRequest{From: "a", To: "b", Amount: "abc"})
	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Get(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Transaction, error) {
			return sampleTransaction(t, id), nil
		},
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) { return nil, nil },
		listFn:   func(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error) { return nil, nil },
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}, domain.AmountFormatter{})

	req := httptest.NewRequest(http.MethodGet, "/transactions/txn-1", nil)
	req = setChiURLParam(req, "id", "txn-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Splits) != 2 {
		t.Fatalf("expected 2 splits, got %d", len(resp.Splits))
	}
	if resp.Splits[0].Debit != "42.00" || resp.Splits[1].Credit != "42.00" {
		t.Fatalf("expected mirrored split amounts, got %+v", resp.Splits)
	}
}

func TestTransactionHandler_Get_NotFound(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Transaction, error) {
			return nil, domain.ErrTransactionNotFound
		},
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) { return nil, nil },
		listFn:   func(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error) { return nil, nil },
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}, domain.AmountFormatter{})

	req := httptest.NewRequest(http.MethodGet, "/transactions/missing", nil)
	req = setChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTransactionHandler_List(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		listFn: func(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error) {
			if input.Limit != 5 || input.Offset != 1 {
				t.Fatalf("unexpected input %+v", input)
			}
			return []*domain.Transaction{sampleTransaction(t, "txn-1")}, nil
		},
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) { return nil, nil },
		getFn:    func(ctx context.Context, id string) (*domain.Transaction, error) { return nil, nil },
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}, domain.AmountFormatter{})

	req := httptest.NewRequest(http.MethodGet, "/transactions?limit=5&offset=1", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTransactionHandler_Delete(t *testing.T) {
	var deleted string

	handler := NewTransactionHandler(&transactionServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) { return nil, nil },
		getFn:    func(ctx context.Context, id string) (*domain.Transaction, error) { return nil, nil },
		listFn:   func(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error) { return nil, nil },
	}, domain.AmountFormatter{})

	req := httptest.NewRequest(http.MethodDelete, "/transactions/txn-1", nil)
	req = setChiURLParam(req, "id", "txn-1")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "txn-1" {
		t.Fatalf("expected txn-1 deleted, got %s", deleted)
	}
}
