package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/notHeisenberg/TakaFlow-Server/internal/domain"
	"github.com/notHeisenberg/TakaFlow-Server/internal/gateway"
)

type GetBalanceOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Status  string `json:"status"`
	Balance int64  `json:"balance"`
}

type GetBalanceUseCase struct {
	accountRepository gateway.AccountRepository
}

func NewGetBalance(accountRepo gateway.AccountRepository) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		accountRepository: accountRepo,
	}
}

func (u *GetBalanceUseCase) Execute(ctx context.Context, accountID string) (*GetBalanceOutput, error) {
	account, err := u.accountRepository.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	return &GetBalanceOutput{
		ID:      account.ID,
		Name:    account.Name,
		Role:    string(account.Role),
		Status:  string(account.Status),
		Balance: account.Balance,
	}, nil
}
