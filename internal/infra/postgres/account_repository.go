package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/notHeisenberg/TakaFlow-Server/internal/domain"
	"github.com/notHeisenberg/TakaFlow-Server/internal/gateway"
	"github.com/notHeisenberg/TakaFlow-Server/internal/infra/postgres/db"
)

const uniqueViolation = "23505"

// AccountRepository implements gateway.AccountRepository using pgx/v5.
type AccountRepository struct {
	db      *pgxpool.Pool
	queries *db.Queries
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		db:      pool,
		queries: db.New(pool),
	}
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	row, err := r.queries.CreateAccount(ctx, db.CreateAccountParams{
		ID:      account.ID,
		Name:    account.Name,
		Email:   account.Email,
		Phone:   account.Phone,
		Role:    string(account.Role),
		Status:  string(account.Status),
		Balance: account.Balance,
		PinHash: account.PINHash,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrAccountExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	account.CreatedAt = row.CreatedAt.Time
	account.UpdatedAt = row.UpdatedAt.Time
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	modelAccount, err := r.queries.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return toDomainAccount(modelAccount), nil
}

func (r *AccountRepository) GetByContact(ctx context.Context, contact string) (*domain.Account, error) {
	modelAccount, err := r.queries.GetAccountByContact(ctx, contact)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by contact: %w", err)
	}
	return toDomainAccount(modelAccount), nil
}

// GetByIDForUpdate locks the row (SELECT ... FOR UPDATE) until commit.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Account, error) {
	modelAccount, err := r.queries.GetAccountForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	return toDomainAccount(modelAccount), nil
}

// Debit validates the balance in the database itself. Zero rows affected
// means the "balance >= amount" guard rejected the update.
func (r *AccountRepository) Debit(ctx context.Context, id string, amount int64) error {
	rowsAffected, err := r.queries.DebitAccount(ctx, db.DebitAccountParams{
		Amount: amount,
		ID:     id,
	})
	if err != nil {
		return fmt.Errorf("failed to debit account: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrInsufficientFunds
	}
	return nil
}

func (r *AccountRepository) Credit(ctx context.Context, id string, amount int64) error {
	err := r.queries.CreditAccount(ctx, db.CreditAccountParams{
		Amount: amount,
		ID:     id,
	})
	if err != nil {
		return fmt.Errorf("failed to credit account: %w", err)
	}
	return nil
}

func (r *AccountRepository) Activate(ctx context.Context, id string, seedBalance int64) error {
	rowsAffected, err := r.queries.ActivateAccount(ctx, db.ActivateAccountParams{
		ID:      id,
		Balance: seedBalance,
	})
	if err != nil {
		return fmt.Errorf("failed to activate account: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrAccountNotPending
	}
	return nil
}

func (r *AccountRepository) SetStatus(ctx context.Context, id string, status domain.Status) error {
	rowsAffected, err := r.queries.SetAccountStatus(ctx, db.SetAccountStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		return fmt.Errorf("failed to set account status: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// WithTx returns a copy of the repository bound to a specific transaction.
func (r *AccountRepository) WithTx(tx gateway.TransactionObject) gateway.AccountRepository {
	pgTx, ok := tx.(pgx.Tx)
	if !ok {
		return r
	}
	return &AccountRepository{
		db:      r.db,
		queries: r.queries.WithTx(pgTx),
	}
}

// Mapper: pgtype -> Go types
func toDomainAccount(a db.Account) *domain.Account {
	return &domain.Account{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		Role:      domain.Role(a.Role),
		Status:    domain.Status(a.Status),
		Balance:   a.Balance,
		PINHash:   a.PinHash,
		CreatedAt: a.CreatedAt.Time,
		UpdatedAt: a.UpdatedAt.Time,
	}
}
