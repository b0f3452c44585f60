package kv

import (
	"context"

	loanDomain "agrifund-backend/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) All(ctx context.Context) ([]loanDomain.LoanRequest, error) {
	var loans []loanDomain.LoanRequest
	if err := load(ctx, r.db, colLoans, &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *LoanRepository) ReplaceAll(ctx context.Context, loans []loanDomain.LoanRequest) error {
	if loans == nil {
		loans = []loanDomain.LoanRequest{}
	}
	return save(ctx, r.db, colLoans, loans)
}
