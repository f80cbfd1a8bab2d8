package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avd/splitbook/internal/adapter/http/handler"
	apimiddleware "github.com/avd/splitbook/internal/adapter/http/middleware"
	"github.com/avd/splitbook/internal/domain"
	"github.com/avd/splitbook/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"name":"Checking","currency":"USD"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/accounts/",
		"GET /api/v1/accounts/",
		"GET /api/v1/accounts/{name}",
		"POST /api/v1/transactions/",
		"GET /api/v1/transactions/{id}",
		"DELETE /api/v1/transactions/{id}",
		"POST /api/v1/transactions/{id}/session/",
		"POST /api/v1/transactions/{id}/session/save",
		"PUT /api/v1/transactions/{id}/session/amount",
		"PUT /api/v1/transactions/{id}/session/splits/{index}",
		"POST /api/v1/sessions",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	formatter := domain.AmountFormatter{}

	cfg := RouterConfig{
		HealthHandler:      &handler.HealthHandler{},
		AccountHandler:     handler.NewAccountHandler(&stubAccountService{}),
		TransactionHandler: handler.NewTransactionHandler(&stubTransactionService{}, formatter),
		SessionHandler:     handler.NewSessionHandler(&stubSessionService{}, formatter),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubAccountService struct{}

func (stubAccountService) CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
	return &domain.Account{ID: "acc", Name: input.Name}, nil
}

func (stubAccountService) GetAccount(ctx context.Context, name string) (*domain.Account, error) {
	return &domain.Account{ID: "acc", Name: name}, nil
}

func (stubAccountService) ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, error) {
	return []*domain.Account{}, nil
}

type stubTransactionService struct{}

func (stubTransactionService) CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) {
	return domain.NewTransaction("txn", time.Now().UTC()), nil
}

func (stubTransactionService) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return domain.NewTransaction(id, time.Now().UTC()), nil
}

func (stubTransactionService) ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error) {
	return []*domain.Transaction{}, nil
}

func (stubTransactionService) DeleteTransaction(ctx context.Context, id string) error {
	return nil
}

type stubSessionService struct{}

func (stubSessionService) Open(ctx context.Context, transactionID string) (*usecase.SessionState, error) {
	return &usecase.SessionState{TransactionID: transactionID}, nil
}

func (stubSessionService) OpenNew(ctx context.Context, date time.Time) (*usecase.SessionState, error) {
	return &usecase.SessionState{TransactionID: "draft", New: true, Date: date}, nil
}

func (stubSessionService) Get(ctx context.Context, transactionID string) (*usecase.SessionState, error) {
	return &usecase.SessionState{TransactionID: transactionID}, nil
}

func (stubSessionService) EditSplit(ctx context.Context, transactionID string, index int, input usecase.SplitEditInput) (*usecase.SessionState, error) {
	return &usecase.SessionState{TransactionID: transactionID}, nil
}

func (stubSessionService) EditFields(ctx context.Context, transactionID string, input usecase.FieldsEditInput) (*usecase.SessionState, error) {
	return &usecase.SessionState{TransactionID: transactionID}, nil
}

func (stubSessionService) SetAmount(ctx context.Context, transactionID, amount string) (*usecase.SessionState, error) {
	return &usecase.SessionState{TransactionID: transactionID, Amount: amount}, nil
}

func (stubSessionService) AddSplit(ctx context.Context, transactionID string) (*usecase.SessionState, error) {
	return &usecase.SessionState{TransactionID: transactionID}, nil
}

func (stubSessionService) RemoveSplit(ctx context.Context, transactionID string, index int) (*usecase.SessionState, error) {
	return &usecase.SessionState{TransactionID: transactionID}, nil
}

func (stubSessionService) Save(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return domain.NewTransaction(transactionID, time.Now().UTC()), nil
}

func (stubSessionService) Discard(ctx context.Context, transactionID string) error {
	return nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
