package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notHeisenberg/TakaFlow-Server/internal/domain"
)

func TestLogin_Success(t *testing.T) {
	account := activeAccount("a-1", "Anika", "anika@example.com", "01711111111", domain.RoleCustomer, 500)
	store := newMemStore(account)
	uc := NewLogin(&memAccountRepo{store: store}, fakePINHasher{}, fakeTokenIssuer{})

	for _, contact := range []string{"anika@example.com", "01711111111"} {
		output, err := uc.Execute(context.Background(), LoginInput{
			Contact: contact,
			PIN:     "1234",
		})
		require.NoError(t, err)
		assert.Equal(t, "token:a-1:customer", output.Token)
		assert.Equal(t, "a-1", output.Account.ID)
	}
}

func TestLogin_WrongPIN(t *testing.T) {
	account := activeAccount("a-1", "Anika", "anika@example.com", "01711111111", domain.RoleCustomer, 500)
	store := newMemStore(account)
	uc := NewLogin(&memAccountRepo{store: store}, fakePINHasher{}, fakeTokenIssuer{})

	_, err := uc.Execute(context.Background(), LoginInput{
		Contact: "anika@example.com",
		PIN:     "0000",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestLogin_UnknownContact(t *testing.T) {
	store := newMemStore()
	uc := NewLogin(&memAccountRepo{store: store}, fakePINHasher{}, fakeTokenIssuer{})

	_, err := uc.Execute(context.Background(), LoginInput{
		Contact: "nobody@example.com",
		PIN:     "1234",
	})
	// Unknown contact and wrong PIN are indistinguishable to the caller.
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestLogin_IssuerFailure(t *testing.T) {
	account := activeAccount("a-1", "Anika", "anika@example.com", "01711111111", domain.RoleCustomer, 500)
	store := newMemStore(account)
	uc := NewLogin(&memAccountRepo{store: store}, fakePINHasher{}, fakeTokenIssuer{err: errors.New("no signing key")})

	_, err := uc.Execute(context.Background(), LoginInput{
		Contact: "anika@example.com",
		PIN:     "1234",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredential)
}
