package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/notHeisenberg/TakaFlow-Server/internal/domain"
	"github.com/notHeisenberg/TakaFlow-Server/internal/gateway"
	"github.com/rs/zerolog/log"
)

// How many fresh references we try before giving up on a duplicate.
const maxReferenceAttempts = 3

// TransferMoneyInput is the DTO for one transfer request. CallerID comes
// from a verified token; the usecase trusts it.
type TransferMoneyInput struct {
	CallerID        string
	ReceiverContact string // email or phone of the receiver
	Amount          int64  // smallest currency unit
	PIN             string
}

type TransferMoneyOutput struct {
	Transaction *domain.Transaction
}

// TransferMoneyUseCase is the funds-transfer core: it validates the request,
// then debits, credits and appends the log record as one atomic unit.
type TransferMoneyUseCase struct {
	accountRepository     gateway.AccountRepository
	transactionRepository gateway.TransactionRepository
	transactionManager    gateway.TransactionManager // unit of work
	pinHasher             gateway.PINHasher
	eventPublisher        gateway.EventPublisher
}

func NewTransferMoney(
	accountRepo gateway.AccountRepository,
	transactionRepo gateway.TransactionRepository,
	txManager gateway.TransactionManager,
	pinHasher gateway.PINHasher,
	publisher gateway.EventPublisher,
) *TransferMoneyUseCase {
	return &TransferMoneyUseCase{
		accountRepository:     accountRepo,
		transactionRepository: transactionRepo,
		transactionManager:    txManager,
		pinHasher:             pinHasher,
		eventPublisher:        publisher,
	}
}

// Execute runs the business rules in order, fail-fast, before any mutation.
// Only when every precondition passes does it open the atomic unit of work.
func (u *TransferMoneyUseCase) Execute(ctx context.Context, input TransferMoneyInput) (*TransferMoneyOutput, error) {
	// 1. Amount must be positive.
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	// 2. Receiver must exist, be active, and be a valid destination.
	receiver, err := u.accountRepository.GetByContact(ctx, input.ReceiverContact)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrReceiverNotEligible
		}
		return nil, fmt.Errorf("failed to resolve receiver: %w", err)
	}
	if !receiver.CanReceive() {
		return nil, domain.ErrReceiverNotEligible
	}

	// 3. PIN must verify against the caller's stored hash.
	caller, err := u.accountRepository.GetByID(ctx, input.CallerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load caller account: %w", err)
	}
	if err := u.pinHasher.Verify(caller.PINHash, input.PIN); err != nil {
		return nil, domain.ErrInvalidCredential
	}

	// 4. No transfers to yourself.
	if caller.ID == receiver.ID {
		return nil, domain.ErrSelfTransfer
	}

	// 5. Balance must cover amount plus fee. This is a courtesy pre-check;
	// the conditional debit inside the unit of work is the real guard.
	fee := domain.TransferFee(input.Amount)
	totalDebit := input.Amount + fee
	if !caller.HasSufficientFunds(totalDebit) {
		return nil, domain.ErrInsufficientFunds
	}

	var createdTransaction *domain.Transaction

	// transactionManager.Run opens a database transaction (BEGIN). An error
	// from the closure rolls everything back; nil commits.
	err = u.transactionManager.Run(ctx, func(contextWithTx context.Context) error {
		transactionObject := contextWithTx.Value(gateway.TransactionKey)
		if transactionObject == nil {
			return fmt.Errorf("transaction not found in context")
		}

		// Repository copies bound to this specific transaction: every call
		// below runs inside the same BEGIN...COMMIT.
		accountRepoTx := u.accountRepository.WithTx(transactionObject)
		transactionRepoTx := u.transactionRepository.WithTx(transactionObject)

		// Lock both rows in a fixed order so two opposing transfers
		// (A->B and B->A) can never deadlock each other.
		firstID, secondID := caller.ID, receiver.ID
		if firstID > secondID {
			firstID, secondID = secondID, firstID
		}

		lockedAccounts := make(map[string]*domain.Account, 2)
		for _, id := range []string{firstID, secondID} {
			locked, err := accountRepoTx.GetByIDForUpdate(contextWithTx, id)
			if err != nil {
				return fmt.Errorf("failed to lock account %s: %w", id, err)
			}
			lockedAccounts[id] = locked
		}

		// Debit the sender. The repository re-checks the balance in SQL
		// (balance >= amount), so a concurrent spend that slipped past the
		// pre-check still cannot overdraw.
		if err := accountRepoTx.Debit(contextWithTx, caller.ID, totalDebit); err != nil {
			return fmt.Errorf("failed to debit sender %s: %w", caller.ID, err)
		}

		if err := accountRepoTx.Credit(contextWithTx, receiver.ID, input.Amount); err != nil {
			return fmt.Errorf("failed to credit receiver %s: %w", receiver.ID, err)
		}

		// Append the log record with counterparty snapshots taken from the
		// locked reads. Profile edits after this point cannot touch it.
		sender := lockedAccounts[caller.ID]
		recipient := lockedAccounts[receiver.ID]
		record := &domain.Transaction{
			Sender: domain.Party{
				AccountID: sender.ID,
				Name:      sender.Name,
				Contact:   sender.Phone,
			},
			Receiver: domain.Party{
				AccountID: recipient.ID,
				Name:      recipient.Name,
				Contact:   recipient.Phone,
			},
			Amount: input.Amount,
			Fee:    fee,
			Status: domain.TxStatusSuccess,
		}

		// The reference is random; the log enforces uniqueness, so retry
		// with a fresh draw on the (astronomically rare) collision.
		for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
			reference, err := domain.NewReference()
			if err != nil {
				return err
			}
			record.Reference = reference

			err = transactionRepoTx.Create(contextWithTx, record)
			if err == nil {
				createdTransaction = record
				return nil
			}
			if !errors.Is(err, domain.ErrDuplicateReference) {
				return fmt.Errorf("failed to record transaction: %w", err)
			}
		}
		return fmt.Errorf("failed to record transaction: %w", domain.ErrDuplicateReference)
	})

	if err != nil {
		// The in-transaction debit can still report insufficient funds;
		// that stays a user-correctable error. Everything else from the
		// commit phase is a server-side failure, safe to retry because
		// nothing was persisted.
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return nil, domain.ErrInsufficientFunds
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
	}

	if u.eventPublisher != nil {
		event := map[string]interface{}{
			"reference":   createdTransaction.Reference,
			"sender_id":   createdTransaction.Sender.AccountID,
			"receiver_id": createdTransaction.Receiver.AccountID,
			"amount":      createdTransaction.Amount,
			"fee":         createdTransaction.Fee,
			"status":      createdTransaction.Status,
		}
		if err := u.eventPublisher.Publish(ctx, "takaflow_events", "transaction.completed", event); err != nil {
			// Audit events are best-effort; never fail a committed transfer.
			log.Error().Err(err).Str("reference", createdTransaction.Reference).Msg("failed to publish transaction event")
		}
	}

	return &TransferMoneyOutput{Transaction: createdTransaction}, nil
}
