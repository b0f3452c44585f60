package portfolio

import (
	"context"

	portfolioDomain "agrifund-backend/internal/domain/portfolio"
)

// Usecase is the read side of the portfolio index. Entries are written by
// the loan ledger inside its investment transaction.
type Usecase struct{ portfolios portfolioDomain.Repository }

func NewUsecase(r portfolioDomain.Repository) *Usecase { return &Usecase{portfolios: r} }

// Get returns the investor's entries; empty slice when there are none.
func (u *Usecase) Get(ctx context.Context, investorID string) ([]portfolioDomain.Entry, error) {
	portfolios, err := u.portfolios.All(ctx)
	if err != nil {
		return nil, err
	}
	entries := portfolios[investorID]
	if entries == nil {
		entries = []portfolioDomain.Entry{}
	}
	return entries, nil
}
