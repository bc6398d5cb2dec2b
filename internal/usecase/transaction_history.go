package usecase

import (
	"context"
	"fmt"

	"github.com/notHeisenberg/TakaFlow-Server/internal/domain"
	"github.com/notHeisenberg/TakaFlow-Server/internal/gateway"
)

// Page sizes are an external policy knob, not a core invariant: agents see a
// shorter page than everyone else.
const (
	historyPageSizeAgent   int32 = 10
	historyPageSizeDefault int32 = 20
)

type TransactionHistoryInput struct {
	CallerID string
	Role     domain.Role
}

type TransactionHistoryUseCase struct {
	transactionRepository gateway.TransactionRepository
}

func NewTransactionHistory(transactionRepo gateway.TransactionRepository) *TransactionHistoryUseCase {
	return &TransactionHistoryUseCase{
		transactionRepository: transactionRepo,
	}
}

// Execute returns the caller's transactions most-recent-first. Ordering is
// created_at descending with insertion order breaking ties, which is what
// "most recent" means for reconciliation.
func (u *TransactionHistoryUseCase) Execute(ctx context.Context, input TransactionHistoryInput) ([]domain.Transaction, error) {
	limit := historyPageSizeDefault
	if input.Role == domain.RoleAgent {
		limit = historyPageSizeAgent
	}

	transactions, err := u.transactionRepository.ListByAccount(ctx, input.CallerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction history: %w", err)
	}
	return transactions, nil
}
