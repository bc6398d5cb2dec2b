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

type TransactionRepository struct {
	db      *pgxpool.Pool
	queries *db.Queries
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		db:      pool,
		queries: db.New(pool),
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	row, err := r.queries.CreateTransaction(ctx, db.CreateTransactionParams{
		Reference:       tx.Reference,
		SenderID:        tx.Sender.AccountID,
		SenderName:      tx.Sender.Name,
		SenderContact:   tx.Sender.Contact,
		ReceiverID:      tx.Receiver.AccountID,
		ReceiverName:    tx.Receiver.Name,
		ReceiverContact: tx.Receiver.Contact,
		Amount:          tx.Amount,
		Fee:             tx.Fee,
		Status:          tx.Status,
	})
	if err != nil {
		// The reference column carries a UNIQUE constraint; a collision on
		// the random reference surfaces here so the engine can retry.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	tx.ID = row.ID
	tx.CreatedAt = row.CreatedAt.Time
	return nil
}

func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string, limit int32) ([]domain.Transaction, error) {
	rows, err := r.queries.ListTransactionsByAccount(ctx, db.ListTransactionsByAccountParams{
		AccountID: accountID,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	transactions := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, toDomainTransaction(row))
	}
	return transactions, nil
}

func (r *TransactionRepository) GetByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	row, err := r.queries.GetTransactionByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	tx := toDomainTransaction(row)
	return &tx, nil
}

func (r *TransactionRepository) WithTx(tx gateway.TransactionObject) gateway.TransactionRepository {
	pgTx, ok := tx.(pgx.Tx)
	if !ok {
		return r
	}
	return &TransactionRepository{
		db:      r.db,
		queries: r.queries.WithTx(pgTx),
	}
}

func toDomainTransaction(t db.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:        t.ID,
		Reference: t.Reference,
		Sender: domain.Party{
			AccountID: t.SenderID,
			Name:      t.SenderName,
			Contact:   t.SenderContact,
		},
		Receiver: domain.Party{
			AccountID: t.ReceiverID,
			Name:      t.ReceiverName,
			Contact:   t.ReceiverContact,
		},
		Amount:    t.Amount,
		Fee:       t.Fee,
		Status:    t.Status,
		CreatedAt: t.CreatedAt.Time,
	}
}
