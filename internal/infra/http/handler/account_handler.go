package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/notHeisenberg/TakaFlow-Server/internal/domain"
	"github.com/notHeisenberg/TakaFlow-Server/internal/infra/http/middleware"
	"github.com/notHeisenberg/TakaFlow-Server/internal/usecase"
)

type BalanceExecutor interface {
	Execute(ctx context.Context, accountID string) (*usecase.GetBalanceOutput, error)
}

type AccountApprover interface {
	Approve(ctx context.Context, accountID string) (*domain.Account, error)
	Block(ctx context.Context, accountID string) error
}

type AccountHandler struct {
	balanceUseCase BalanceExecutor
	approveUseCase AccountApprover
}

func NewAccountHandler(balance BalanceExecutor, approve AccountApprover) *AccountHandler {
	return &AccountHandler{
		balanceUseCase: balance,
		approveUseCase: approve,
	}
}

// Balance returns the authenticated caller's own balance and profile.
func (h *AccountHandler) Balance(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	output, err := h.balanceUseCase.Execute(r.Context(), identity.AccountID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output)
}

// Approve activates a pending account (admin only; routing enforces the role).
func (h *AccountHandler) Approve(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")

	account, err := h.approveUseCase.Approve(r.Context(), accountID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":      account.ID,
		"status":  string(account.Status),
		"balance": account.Balance,
	})
}

// Block locks an account out of the system (admin only).
func (h *AccountHandler) Block(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")

	if err := h.approveUseCase.Block(r.Context(), accountID); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"id":     accountID,
		"status": string(domain.StatusBlocked),
	})
}
