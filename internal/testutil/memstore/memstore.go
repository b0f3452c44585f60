// Package memstore is an in-memory implementation of the three collection
// repositories and the unit of work, for tests that exercise full
// operation flows without a database. Collections are held as JSON
// documents, same shape as the gorm-backed store; a failed transaction
// restores the pre-transaction snapshots.
package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"agrifund-backend/internal/domain/loan"
	"agrifund-backend/internal/domain/portfolio"
	"agrifund-backend/internal/domain/uow"
	"agrifund-backend/internal/domain/user"
)

type Store struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func New() *Store {
	return &Store{docs: map[string][]byte{}}
}

func (s *Store) load(name string, out any) error {
	body, ok := s.docs[name]
	if !ok {
		return nil
	}
	return json.Unmarshal(body, out)
}

func (s *Store) save(name string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("memstore: encode %s: %w", name, err)
	}
	s.docs[name] = body
	return nil
}

func (s *Store) snapshot() map[string][]byte {
	snap := make(map[string][]byte, len(s.docs))
	for k, v := range s.docs {
		snap[k] = v
	}
	return snap
}

// Users returns a user.Repository over the store.
func (s *Store) Users() user.Repository { return usersRepo{s} }

// Loans returns a loan.Repository over the store.
func (s *Store) Loans() loan.Repository { return loansRepo{s} }

// Portfolios returns a portfolio.Repository over the store.
func (s *Store) Portfolios() portfolio.Repository { return portfoliosRepo{s} }

// UoW returns a uow.UnitOfWork with snapshot-restore rollback.
func (s *Store) UoW() uow.UnitOfWork { return memUoW{s} }

type usersRepo struct{ s *Store }

func (r usersRepo) All(ctx context.Context) ([]user.User, error) {
	var out []user.User
	if err := r.s.load("users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r usersRepo) ReplaceAll(ctx context.Context, users []user.User) error {
	return r.s.save("users", users)
}

type loansRepo struct{ s *Store }

func (r loansRepo) All(ctx context.Context) ([]loan.LoanRequest, error) {
	var out []loan.LoanRequest
	if err := r.s.load("loans", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r loansRepo) ReplaceAll(ctx context.Context, loans []loan.LoanRequest) error {
	return r.s.save("loans", loans)
}

type portfoliosRepo struct{ s *Store }

func (r portfoliosRepo) All(ctx context.Context) (map[string][]portfolio.Entry, error) {
	out := map[string][]portfolio.Entry{}
	if err := r.s.load("portfolios", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r portfoliosRepo) ReplaceAll(ctx context.Context, portfolios map[string][]portfolio.Entry) error {
	return r.s.save("portfolios", portfolios)
}

type memUoW struct{ s *Store }

func (u memUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	snap := u.s.snapshot()
	err := fn(uow.Repos{
		Users:      usersRepo{u.s},
		Loans:      loansRepo{u.s},
		Portfolios: portfoliosRepo{u.s},
	})
	if err != nil {
		u.s.docs = snap
	}
	return err
}
