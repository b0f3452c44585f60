package loanmock

import (
	"context"
	"errors"

	domain "agrifund-backend/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock that satisfies loan.Repository.
type Repo struct {
	AllFn        func(ctx context.Context) ([]domain.LoanRequest, error)
	ReplaceAllFn func(ctx context.Context, loans []domain.LoanRequest) error
}

func (m *Repo) All(ctx context.Context) ([]domain.LoanRequest, error) {
	if m.AllFn != nil {
		return m.AllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ReplaceAll(ctx context.Context, loans []domain.LoanRequest) error {
	if m.ReplaceAllFn != nil {
		return m.ReplaceAllFn(ctx, loans)
	}
	return errUnimplemented
}
