package gateway

import (
	"context"

	"github.com/notHeisenberg/TakaFlow-Server/internal/domain"
)

// AccountRepository is the persistence contract for accounts. The usecases
// only ever see this interface, never pgx.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	// GetByContact resolves an account by email or phone number.
	GetByContact(ctx context.Context, contact string) (*domain.Account, error)

	// GetByIDForUpdate locks the account row until the enclosing
	// transaction commits (pessimistic lock).
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Account, error)
	// Debit is conditional: it only applies when the stored balance covers
	// the amount, so a concurrent spender can never drive it negative.
	Debit(ctx context.Context, id string, amount int64) error
	Credit(ctx context.Context, id string, amount int64) error

	// Activate flips a pending account to active and seeds its opening
	// balance. Out of the transfer engine's scope but part of the account
	// lifecycle it depends on.
	Activate(ctx context.Context, id string, seedBalance int64) error
	SetStatus(ctx context.Context, id string, status domain.Status) error

	// WithTx returns a copy of the repository bound to the given database
	// transaction so it participates in the caller's atomic unit.
	WithTx(tx TransactionObject) AccountRepository
}
