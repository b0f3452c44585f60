package portfolio

import "context"

// Repository persists the portfolio index: a mapping from investor id to
// that investor's entries, replaced as a whole on write. The index is a
// read-oriented copy; the loan ledger stays authoritative for funding.
type Repository interface {
	All(ctx context.Context) (map[string][]Entry, error)
	ReplaceAll(ctx context.Context, portfolios map[string][]Entry) error
}
