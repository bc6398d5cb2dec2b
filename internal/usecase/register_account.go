package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/notHeisenberg/TakaFlow-Server/internal/domain"
	"github.com/notHeisenberg/TakaFlow-Server/internal/gateway"
)

type RegisterAccountInput struct {
	Name  string
	Email string
	Phone string
	Role  domain.Role
	PIN   string
}

type RegisterAccountOutput struct {
	ID     string
	Status domain.Status
}

// RegisterAccountUseCase creates an account in pending state with zero
// balance. An admin approval later activates it and seeds the opening
// balance.
type RegisterAccountUseCase struct {
	accountRepository gateway.AccountRepository
	pinHasher         gateway.PINHasher
}

func NewRegisterAccount(accountRepo gateway.AccountRepository, pinHasher gateway.PINHasher) *RegisterAccountUseCase {
	return &RegisterAccountUseCase{
		accountRepository: accountRepo,
		pinHasher:         pinHasher,
	}
}

func (u *RegisterAccountUseCase) Execute(ctx context.Context, input RegisterAccountInput) (*RegisterAccountOutput, error) {
	role, ok := domain.ParseRole(string(input.Role))
	if !ok || role == domain.RoleAdmin {
		return nil, domain.ErrInvalidRole
	}

	pinHash, err := u.pinHasher.Hash(input.PIN)
	if err != nil {
		return nil, fmt.Errorf("failed to hash pin: %w", err)
	}

	account := &domain.Account{
		ID:      uuid.NewString(),
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Role:    role,
		Status:  domain.StatusPending,
		Balance: 0,
		PINHash: pinHash,
	}

	// The unique constraints on email and phone are the real duplicate
	// check; the repository maps the violation to ErrAccountExists.
	if err := u.accountRepository.Create(ctx, account); err != nil {
		return nil, err
	}

	return &RegisterAccountOutput{
		ID:     account.ID,
		Status: account.Status,
	}, nil
}
