package domain

import "errors"

var (
	ErrInvalidAmount       = errors.New("transfer amount must be greater than zero")
	ErrReceiverNotEligible = errors.New("receiver does not exist or cannot receive transfers")
	ErrInvalidCredential   = errors.New("invalid credentials")
	ErrSelfTransfer        = errors.New("cannot transfer to own account")
	ErrInsufficientFunds   = errors.New("insufficient balance")
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountExists       = errors.New("account with this email or phone already exists")
	ErrAccountNotPending   = errors.New("account is not awaiting approval")
	ErrInvalidRole         = errors.New("role must be customer or agent")
	ErrTransferFailed      = errors.New("transfer failed")
	ErrDuplicateReference  = errors.New("transaction reference already exists")
	ErrTransactionNotFound = errors.New("transaction not found")
)
