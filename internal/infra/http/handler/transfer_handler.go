package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/notHeisenberg/TakaFlow-Server/internal/infra/http/middleware"
	"github.com/notHeisenberg/TakaFlow-Server/internal/usecase"
)

// TransferExecutor is what the handler needs from the transfer engine.
type TransferExecutor interface {
	Execute(ctx context.Context, input usecase.TransferMoneyInput) (*usecase.TransferMoneyOutput, error)
}

type TransferHandler struct {
	transferUseCase TransferExecutor
}

func NewTransferHandler(uc TransferExecutor) *TransferHandler {
	return &TransferHandler{
		transferUseCase: uc,
	}
}

type CreateTransferRequest struct {
	Receiver string `json:"receiver"` // email or phone
	Amount   int64  `json:"amount"`   // smallest currency unit
	PIN      string `json:"pin"`
}

// Create processes one transfer request. The caller identity comes from the
// auth middleware, never from the payload.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := middleware.IdentityFrom(ctx)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	var req CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	output, err := h.transferUseCase.Execute(ctx, usecase.TransferMoneyInput{
		CallerID:        identity.AccountID,
		ReceiverContact: req.Receiver,
		Amount:          req.Amount,
		PIN:             req.PIN,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toTransactionResponse(*output.Transaction))
}
