package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/notHeisenberg/TakaFlow-Server/internal/domain"
	"github.com/rs/zerolog/log"
)

type PartyResponse struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
}

type TransactionResponse struct {
	TransactionID string        `json:"transaction_id"`
	Sender        PartyResponse `json:"sender"`
	Receiver      PartyResponse `json:"receiver"`
	Amount        int64         `json:"amount"`
	Fee           int64         `json:"fee"`
	Status        string        `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

func toTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.Reference,
		Sender: PartyResponse{
			AccountID: t.Sender.AccountID,
			Name:      t.Sender.Name,
			Contact:   t.Sender.Contact,
		},
		Receiver: PartyResponse{
			AccountID: t.Receiver.AccountID,
			Name:      t.Receiver.Name,
			Contact:   t.Receiver.Contact,
		},
		Amount:    t.Amount,
		Fee:       t.Fee,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
	}
}

// respondDomainError maps domain errors to HTTP status codes. Anything not
// recognized is a server-side failure.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		respondError(w, http.StatusBadRequest, domain.ErrInvalidAmount.Error())
	case errors.Is(err, domain.ErrReceiverNotEligible):
		respondError(w, http.StatusNotFound, domain.ErrReceiverNotEligible.Error())
	case errors.Is(err, domain.ErrInvalidCredential):
		respondError(w, http.StatusUnauthorized, domain.ErrInvalidCredential.Error())
	case errors.Is(err, domain.ErrSelfTransfer):
		respondError(w, http.StatusMethodNotAllowed, domain.ErrSelfTransfer.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		respondError(w, http.StatusNotAcceptable, domain.ErrInsufficientFunds.Error())
	case errors.Is(err, domain.ErrAccountExists):
		respondError(w, http.StatusBadRequest, domain.ErrAccountExists.Error())
	case errors.Is(err, domain.ErrInvalidRole):
		respondError(w, http.StatusBadRequest, domain.ErrInvalidRole.Error())
	case errors.Is(err, domain.ErrAccountNotFound):
		respondError(w, http.StatusNotFound, domain.ErrAccountNotFound.Error())
	case errors.Is(err, domain.ErrAccountNotPending):
		respondError(w, http.StatusConflict, domain.ErrAccountNotPending.Error())
	default:
		log.Error().Err(err).Msg("internal error")
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode JSON response")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
