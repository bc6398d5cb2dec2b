package gateway

import (
	"context"

	"github.com/notHeisenberg/TakaFlow-Server/internal/domain"
)

type TransactionRepository interface {
	// Create appends one record to the log. Returns ErrDuplicateReference
	// when the generated reference collides with an existing row.
	Create(ctx context.Context, transaction *domain.Transaction) error
	// ListByAccount returns records where the account is sender or
	// receiver, most recent first.
	ListByAccount(ctx context.Context, accountID string, limit int32) ([]domain.Transaction, error)
	GetByReference(ctx context.Context, reference string) (*domain.Transaction, error)
	// WithTx follows the same pattern as AccountRepository so the append
	// lands in the same atomic unit as the balance mutations.
	WithTx(tx TransactionObject) TransactionRepository
}
