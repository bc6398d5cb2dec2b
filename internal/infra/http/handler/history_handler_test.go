package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notHeisenberg/TakaFlow-Server/internal/domain"
	"github.com/notHeisenberg/TakaFlow-Server/internal/infra/http/middleware"
	"github.com/notHeisenberg/TakaFlow-Server/internal/infra/token"
	"github.com/notHeisenberg/TakaFlow-Server/internal/usecase"
)

type mockHistoryExecutor struct {
	gotInput usecase.TransactionHistoryInput
	result   []domain.Transaction
	err      error
}

func (m *mockHistoryExecutor) Execute(_ context.Context, input usecase.TransactionHistoryInput) ([]domain.Transaction, error) {
	m.gotInput = input
	return m.result, m.err
}

func TestHistoryHandler_List(t *testing.T) {
	now := time.Now()
	exec := &mockHistoryExecutor{
		result: []domain.Transaction{
			{
				ID:        2,
				Reference: "2222222222",
				Sender:    domain.Party{AccountID: "a-1", Name: "Anika"},
				Receiver:  domain.Party{AccountID: "a-2", Name: "Rahim"},
				Amount:    200,
				Fee:       5,
				Status:    domain.TxStatusSuccess,
				CreatedAt: now,
			},
			{
				ID:        1,
				Reference: "1111111111",
				Sender:    domain.Party{AccountID: "a-2", Name: "Rahim"},
				Receiver:  domain.Party{AccountID: "a-1", Name: "Anika"},
				Amount:    50,
				Status:    domain.TxStatusSuccess,
				CreatedAt: now.Add(-time.Minute),
			},
		},
	}

	router := chi.NewRouter()
	verifier := stubVerifier{identity: token.Identity{AccountID: "a-1", Role: domain.RoleAgent}}
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticated(verifier))
		r.Get("/transactions", NewHistoryHandler(exec).List)
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// The caller identity and role come from the token, not the request.
	assert.Equal(t, "a-1", exec.gotInput.CallerID)
	assert.Equal(t, domain.RoleAgent, exec.gotInput.Role)

	var resp []TransactionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "2222222222", resp[0].TransactionID)
	assert.Equal(t, "1111111111", resp[1].TransactionID)
}

func TestHistoryHandler_EmptyHistoryIsEmptyList(t *testing.T) {
	exec := &mockHistoryExecutor{}

	router := chi.NewRouter()
	verifier := stubVerifier{identity: token.Identity{AccountID: "a-1", Role: domain.RoleCustomer}}
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticated(verifier))
		r.Get("/transactions", NewHistoryHandler(exec).List)
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
