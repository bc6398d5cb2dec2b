package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/notHeisenberg/TakaFlow-Server/internal/domain"
)

// Identity is the verified caller handed to the usecases. It is the only
// thing the transfer engine trusts about who is calling.
type Identity struct {
	AccountID string
	Role      domain.Role
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and verifies the HMAC-signed bearer tokens. It implements
// gateway.TokenIssuer on the issue side; the HTTP middleware consumes Verify.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *Manager) Issue(accountID string, role domain.Role) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *Manager) Verify(tokenString string) (Identity, error) {
	parsed := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, domain.ErrInvalidCredential
	}

	role, ok := domain.ParseRole(parsed.Role)
	if !ok {
		return Identity{}, domain.ErrInvalidCredential
	}

	return Identity{
		AccountID: parsed.Subject,
		Role:      role,
	}, nil
}
