package gateway

import "github.com/notHeisenberg/TakaFlow-Server/internal/domain"

// PINHasher hides the hashing primitive from the usecases. The transfer
// engine only ever asks "does this PIN match this hash".
type PINHasher interface {
	Hash(pin string) (string, error)
	Verify(hash, pin string) error
}

// TokenIssuer mints the bearer credential handed out at login. Verification
// happens at the transport boundary, before any usecase runs.
type TokenIssuer interface {
	Issue(accountID string, role domain.Role) (string, error)
}
