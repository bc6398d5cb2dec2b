package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/notHeisenberg/TakaFlow-Server/internal/domain"
	"github.com/notHeisenberg/TakaFlow-Server/internal/gateway"
)

type LoginInput struct {
	Contact string // email or phone
	PIN     string
}

type LoginOutput struct {
	Token   string
	Account *domain.Account
}

// LoginUseCase is the Authorization Gate's entry point: contact + PIN in,
// bearer token out. The transfer engine never sees raw credentials from here
// on, only the identity resolved from the token.
type LoginUseCase struct {
	accountRepository gateway.AccountRepository
	pinHasher         gateway.PINHasher
	tokenIssuer       gateway.TokenIssuer
}

func NewLogin(accountRepo gateway.AccountRepository, pinHasher gateway.PINHasher, tokenIssuer gateway.TokenIssuer) *LoginUseCase {
	return &LoginUseCase{
		accountRepository: accountRepo,
		pinHasher:         pinHasher,
		tokenIssuer:       tokenIssuer,
	}
}

func (u *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	account, err := u.accountRepository.GetByContact(ctx, input.Contact)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			// Same error as a bad PIN: don't leak which part was wrong.
			return nil, domain.ErrInvalidCredential
		}
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}

	if err := u.pinHasher.Verify(account.PINHash, input.PIN); err != nil {
		return nil, domain.ErrInvalidCredential
	}

	token, err := u.tokenIssuer.Issue(account.ID, account.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginOutput{
		Token:   token,
		Account: account,
	}, nil
}
