package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	// Flat fee charged to the sender when the amount crosses the threshold.
	// Folded into the sender debit, never a separate ledger line.
	TransferFeeAmount    int64 = 5
	TransferFeeThreshold int64 = 100

	TxStatusSuccess = "success"

	referenceDigits = 10
)

// TransferFee returns the fee the sender pays on top of amount.
func TransferFee(amount int64) int64 {
	if amount > TransferFeeThreshold {
		return TransferFeeAmount
	}
	return 0
}

// Party is an immutable snapshot of a counterparty taken at transfer time.
// Later profile edits must not rewrite history, so no live account reference.
type Party struct {
	AccountID string
	Name      string
	Contact   string
}

// Transaction is one committed transfer. Created exactly once, never mutated.
type Transaction struct {
	ID        int64
	Reference string // external 10-digit identifier
	Sender    Party
	Receiver  Party
	Amount    int64
	Fee       int64
	Status    string
	CreatedAt time.Time
}

// NewReference draws a fresh 10-digit decimal reference. Uniqueness is
// enforced by the transaction log at insert time, not here.
func NewReference() (string, error) {
	max := big.NewInt(0).Exp(big.NewInt(10), big.NewInt(referenceDigits), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate transaction reference: %w", err)
	}
	return fmt.Sprintf("%0*d", referenceDigits, n), nil
}
