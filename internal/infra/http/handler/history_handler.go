package handler

import (
	"context"
	"net/http"

	"github.com/notHeisenberg/TakaFlow-Server/internal/domain"
	"github.com/notHeisenberg/TakaFlow-Server/internal/infra/http/middleware"
	"github.com/notHeisenberg/TakaFlow-Server/internal/usecase"
)

type HistoryExecutor interface {
	Execute(ctx context.Context, input usecase.TransactionHistoryInput) ([]domain.Transaction, error)
}

type HistoryHandler struct {
	historyUseCase HistoryExecutor
}

func NewHistoryHandler(uc HistoryExecutor) *HistoryHandler {
	return &HistoryHandler{
		historyUseCase: uc,
	}
}

// List returns the caller's transactions, most recent first.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	transactions, err := h.historyUseCase.Execute(r.Context(), usecase.TransactionHistoryInput{
		CallerID: identity.AccountID,
		Role:     identity.Role,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	responses := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		responses = append(responses, toTransactionResponse(t))
	}

	respondJSON(w, http.StatusOK, responses)
}
