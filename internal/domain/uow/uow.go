package uow

import (
	"context"

	"agrifund-backend/internal/domain/loan"
	"agrifund-backend/internal/domain/portfolio"
	"agrifund-backend/internal/domain/user"
)

type Repos struct {
	Users      user.Repository
	Loans      loan.Repository
	Portfolios portfolio.Repository
}

// UnitOfWork runs fn against repositories bound to one transaction.
// Everything fn writes commits together or not at all; this is the
// explicit boundary that keeps a mutating operation free of partial
// writes across the loan and portfolio collections.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
