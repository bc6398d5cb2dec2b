package usecase

import (
	"context"
	"fmt"

	"github.com/notHeisenberg/TakaFlow-Server/internal/domain"
	"github.com/notHeisenberg/TakaFlow-Server/internal/gateway"
)

// Signup bonus seeded on approval, in poisha.
const (
	signupBonusCustomer int64 = 40_00
	signupBonusAgent    int64 = 100_000_00
)

type ApproveAccountUseCase struct {
	accountRepository gateway.AccountRepository
}

func NewApproveAccount(accountRepo gateway.AccountRepository) *ApproveAccountUseCase {
	return &ApproveAccountUseCase{
		accountRepository: accountRepo,
	}
}

// Approve activates a pending account and seeds its opening balance. This is
// the only balance write outside the transfer engine.
func (u *ApproveAccountUseCase) Approve(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := u.accountRepository.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Status != domain.StatusPending {
		return nil, domain.ErrAccountNotPending
	}

	seed := signupBonusCustomer
	if account.Role == domain.RoleAgent {
		seed = signupBonusAgent
	}

	if err := u.accountRepository.Activate(ctx, accountID, seed); err != nil {
		return nil, err
	}

	account.Status = domain.StatusActive
	account.Balance = seed
	return account, nil
}

// Block locks an account out of transfers in either direction.
func (u *ApproveAccountUseCase) Block(ctx context.Context, accountID string) error {
	if err := u.accountRepository.SetStatus(ctx, accountID, domain.StatusBlocked); err != nil {
		return fmt.Errorf("failed to block account: %w", err)
	}
	return nil
}
