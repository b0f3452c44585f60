package loan

import "context"

// Repository persists the loan-request collection with whole-value replace
// semantics, mirroring the source-of-truth store: no partial updates.
type Repository interface {
	All(ctx context.Context) ([]LoanRequest, error)
	ReplaceAll(ctx context.Context, loans []LoanRequest) error
}
