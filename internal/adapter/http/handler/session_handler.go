package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avd/splitbook/internal/adapter/http/dto"
	"github.com/avd/splitbook/internal/domain"
	"github.com/avd/splitbook/internal/usecase"
)

// SessionService defines the behavior needed by SessionHandler.
type SessionService interface {
	Open(ctx context.Context, transactionID string) (*usecase.SessionState, error)
	OpenNew(ctx context.Context, date time.Time) (*usecase.SessionState, error)
	Get(ctx context.Context, transactionID string) (*usecase.SessionState, error)
	EditSplit(ctx context.Context, transactionID string, index int, input usecase.SplitEditInput) (*usecase.SessionState, error)
	EditFields(ctx context.Context, transactionID string, input usecase.FieldsEditInput) (*usecase.SessionState, error)
	SetAmount(ctx context.Context, transactionID, amount string) (*usecase.SessionState, error)
	AddSplit(ctx context.Context, transactionID string) (*usecase.SessionState, error)
	RemoveSplit(ctx context.Context, transactionID string, index int) (*usecase.SessionState, error)
	Save(ctx context.Context, transactionID string) (*domain.Transaction, error)
	Discard(ctx context.Context, transactionID string) error
}

// SessionHandler handles edit session HTTP requests. Every mutating
// endpoint returns the full session state so clients can rerender the
// split table after the engine rebalances.
type SessionHandler struct {
	sessionUC SessionService
	formatter domain.AmountFormatter
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionUC SessionService, formatter domain.AmountFormatter) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
		formatter: formatter,
	}
}

// OpenDraft opens a session over a brand-new transaction.
func (h *SessionHandler) OpenDraft(w http.ResponseWriter, r *http.Request) {
	var req dto.OpenDraftSessionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
			return
		}
	}

	date, err := req.ParseDate()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	state, err := h.sessionUC.OpenNew(r.Context(), date)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to open session", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SessionFromState(state))
}

// Open opens a session over an existing transaction.
func (h *SessionHandler) Open(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	state, err := h.sessionUC.Open(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to open session", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SessionFromState(state))
}

// Get returns the current session state.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	state, err := h.sessionUC.Get(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get session", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SessionFromState(state))
}

// EditSplit applies field changes to one split.
func (h *SessionHandler) EditSplit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid split index", err.Error())
		return
	}

	var req dto.EditSplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid split edit", err.Error())
		return
	}

	state, err := h.sessionUC.EditSplit(r.Context(), id, index, input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to edit split", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SessionFromState(state))
}

// EditFields applies header-level edits.
func (h *SessionHandler) EditFields(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.EditFieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	state, err := h.sessionUC.EditFields(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to edit fields", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SessionFromState(state))
}

// SetAmount changes the transaction's total amount.
func (h *SessionHandler) SetAmount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.SetAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	state, err := h.sessionUC.SetAmount(r.Context(), id, req.Amount)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to set amount", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SessionFromState(state))
}

// AddSplit appends a zero split.
func (h *SessionHandler) AddSplit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	state, err := h.sessionUC.AddSplit(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add split", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SessionFromState(state))
}

// RemoveSplit deletes the split at index.
func (h *SessionHandler) RemoveSplit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid split index", err.Error())
		return
	}

	state, err := h.sessionUC.RemoveSplit(r.Context(), id, index)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to remove split", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SessionFromState(state))
}

// Save commits the session.
func (h *SessionHandler) Save(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	txn, err := h.sessionUC.Save(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to save session", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(txn, h.formatter))
}

// Discard closes the session without saving.
func (h *SessionHandler) Discard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.sessionUC.Discard(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to discard session", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
