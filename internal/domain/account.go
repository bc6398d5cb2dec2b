package domain

import (
	"time"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAgent    Role = "agent"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleAgent, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusBlocked Status = "blocked"
)

// Account is the user's wallet plus identity.
// Clean Architecture: this entity knows nothing about JSON or SQL.
type Account struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Role      Role
	Status    Status
	Balance   int64 // smallest currency unit (poisha)
	PINHash   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Pure domain logic

// CanReceive reports whether the account is a valid transfer destination.
// Admin and agent accounts are operational accounts, not payees.
func (a *Account) CanReceive() bool {
	return a.Status == StatusActive && a.Role != RoleAdmin && a.Role != RoleAgent
}

// HasSufficientFunds checks affordability before touching the database.
func (a *Account) HasSufficientFunds(amount int64) bool {
	return a.Balance >= amount
}

func (a *Account) Debit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if !a.HasSufficientFunds(amount) {
		return ErrInsufficientFunds
	}
	a.Balance -= amount
	return nil
}

func (a *Account) Credit(amount int64) {
	if amount <= 0 {
		return
	}
	a.Balance += amount
}
