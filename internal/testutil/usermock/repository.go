package usermock

import (
	"context"
	"errors"

	domain "agrifund-backend/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("usermock: method not implemented")

// Repo is a function-backed mock that satisfies user.Repository. Fill in
// the function fields a test needs; unfilled ones fail loudly.
type Repo struct {
	AllFn        func(ctx context.Context) ([]domain.User, error)
	ReplaceAllFn func(ctx context.Context, users []domain.User) error
}

func (m *Repo) All(ctx context.Context) ([]domain.User, error) {
	if m.AllFn != nil {
		return m.AllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ReplaceAll(ctx context.Context, users []domain.User) error {
	if m.ReplaceAllFn != nil {
		return m.ReplaceAllFn(ctx, users)
	}
	return errUnimplemented
}
