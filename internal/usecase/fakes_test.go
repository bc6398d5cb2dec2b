package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/notHeisenberg/TakaFlow-Server/internal/domain"
	"github.com/notHeisenberg/TakaFlow-Server/internal/gateway"
)

// In-memory doubles for the storage layer. The store keeps the same
// contracts as the Postgres implementation: conditional debit, unique
// transaction references, and all-or-nothing units of work.

type memStore struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
	log      []domain.Transaction
	refs     map[string]bool
	nextID   int64

	// failure injection
	failCredit    error
	dupReferences int // next N transaction inserts report a duplicate
}

func newMemStore(accounts ...*domain.Account) *memStore {
	s := &memStore{
		accounts: make(map[string]*domain.Account),
		refs:     make(map[string]bool),
	}
	for _, a := range accounts {
		copied := *a
		s.accounts[a.ID] = &copied
	}
	return s
}

func (s *memStore) balance(id string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[id].Balance
}

func (s *memStore) snapshot() (map[string]domain.Account, []domain.Transaction) {
	accounts := make(map[string]domain.Account, len(s.accounts))
	for id, a := range s.accounts {
		accounts[id] = *a
	}
	log := append([]domain.Transaction(nil), s.log...)
	return accounts, log
}

func (s *memStore) restore(accounts map[string]domain.Account, log []domain.Transaction) {
	s.accounts = make(map[string]*domain.Account, len(accounts))
	for id, a := range accounts {
		copied := a
		s.accounts[id] = &copied
	}
	s.log = log
	s.refs = make(map[string]bool, len(log))
	for _, t := range log {
		s.refs[t.Reference] = true
	}
}

type memAccountRepo struct {
	store *memStore
}

func (r *memAccountRepo) Create(_ context.Context, account *domain.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.accounts {
		if existing.Email == account.Email || existing.Phone == account.Phone {
			return domain.ErrAccountExists
		}
	}
	copied := *account
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	r.store.accounts[account.ID] = &copied
	return nil
}

func (r *memAccountRepo) GetByID(_ context.Context, id string) (*domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	account, ok := r.store.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (r *memAccountRepo) GetByContact(_ context.Context, contact string) (*domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, account := range r.store.accounts {
		if account.Email == contact || account.Phone == contact {
			copied := *account
			return &copied, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *memAccountRepo) GetByIDForUpdate(ctx context.Context, id string) (*domain.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *memAccountRepo) Debit(_ context.Context, id string, amount int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	account, ok := r.store.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if account.Balance < amount {
		return domain.ErrInsufficientFunds
	}
	account.Balance -= amount
	return nil
}

func (r *memAccountRepo) Credit(_ context.Context, id string, amount int64) error {
	if r.store.failCredit != nil {
		return r.store.failCredit
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	account, ok := r.store.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	account.Balance += amount
	return nil
}

func (r *memAccountRepo) Activate(_ context.Context, id string, seedBalance int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	account, ok := r.store.accounts[id]
	if !ok || account.Status != domain.StatusPending {
		return domain.ErrAccountNotPending
	}
	account.Status = domain.StatusActive
	account.Balance = seedBalance
	return nil
}

func (r *memAccountRepo) SetStatus(_ context.Context, id string, status domain.Status) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	account, ok := r.store.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	account.Status = status
	return nil
}

func (r *memAccountRepo) WithTx(_ gateway.TransactionObject) gateway.AccountRepository {
	return r
}

type memTransactionRepo struct {
	store *memStore
}

func (r *memTransactionRepo) Create(_ context.Context, tx *domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.dupReferences > 0 {
		r.store.dupReferences--
		return domain.ErrDuplicateReference
	}
	if r.store.refs[tx.Reference] {
		return domain.ErrDuplicateReference
	}
	r.store.nextID++
	tx.ID = r.store.nextID
	tx.CreatedAt = time.Now()
	r.store.refs[tx.Reference] = true
	r.store.log = append(r.store.log, *tx)
	return nil
}

func (r *memTransactionRepo) ListByAccount(_ context.Context, accountID string, limit int32) ([]domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []domain.Transaction
	for _, t := range r.store.log {
		if t.Sender.AccountID == accountID || t.Receiver.AccountID == accountID {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	if int32(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *memTransactionRepo) GetByReference(_ context.Context, reference string) (*domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, t := range r.store.log {
		if t.Reference == reference {
			copied := t
			return &copied, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

func (r *memTransactionRepo) WithTx(_ gateway.TransactionObject) gateway.TransactionRepository {
	return r
}

// memTxManager serializes units of work and restores a snapshot on error,
// mirroring BEGIN/COMMIT/ROLLBACK.
type memTxManager struct {
	store *memStore
	txMu  sync.Mutex
}

type memTxToken struct{}

func (m *memTxManager) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.store.mu.Lock()
	accounts, log := m.store.snapshot()
	m.store.mu.Unlock()

	ctxWithTx := context.WithValue(ctx, gateway.TransactionKey, memTxToken{})
	if err := fn(ctxWithTx); err != nil {
		m.store.mu.Lock()
		m.store.restore(accounts, log)
		m.store.mu.Unlock()
		return err
	}
	return nil
}

type fakePINHasher struct{}

func (fakePINHasher) Hash(pin string) (string, error) {
	return "hashed:" + pin, nil
}

func (fakePINHasher) Verify(hash, pin string) error {
	if hash != "hashed:"+pin {
		return errors.New("pin mismatch")
	}
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []map[string]interface{}
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, _, _ string, body interface{}) error {
	if p.err != nil {
		return p.err
	}
	event, ok := body.(map[string]interface{})
	if !ok {
		return fmt.Errorf("unexpected event type %T", body)
	}
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()
	return nil
}

type fakeTokenIssuer struct {
	err error
}

func (f fakeTokenIssuer) Issue(accountID string, role domain.Role) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token:" + accountID + ":" + string(role), nil
}
