package gateway

import "context"

// TransactionObject is the opaque badge carrying the database transaction.
type TransactionObject interface{}

// TransactionManager is the unit-of-work boundary: Run executes fn inside
// one atomic transaction, committing on nil and rolling back on error.
type TransactionManager interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

// TransactionKeyType avoids context key collisions.
type TransactionKeyType string

const TransactionKey TransactionKeyType = "transaction"
