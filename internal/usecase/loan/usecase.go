package loan

import (
	"context"
	"fmt"
	"math"
	"time"

	loanDomain "agrifund-backend/internal/domain/loan"
	"agrifund-backend/internal/domain/portfolio"
	"agrifund-backend/internal/domain/uow"
	"agrifund-backend/internal/domain/user"
	"agrifund-backend/internal/risk"
	"agrifund-backend/pkg/id"
)

// Usecase is the loan ledger: it owns loan-request records and keeps the
// portfolio index consistent with them on every investment.
type Usecase struct {
	uw    uow.UnitOfWork
	loans loanDomain.Repository
}

func NewUsecase(uw uow.UnitOfWork, loans loanDomain.Repository) *Usecase {
	return &Usecase{uw: uw, loans: loans}
}

type SubmitInput struct {
	FarmSize              float64 `json:"farm_size"`
	Location              string  `json:"location"`
	CropType              string  `json:"crop_type"`
	TargetAmount          float64 `json:"target_amount"`
	Purpose               string  `json:"purpose"`
	RepaymentPeriodMonths int     `json:"repayment_period_months"`
	ExperienceYears       int     `json:"experience_years"`
	PreviousLoans         string  `json:"previous_loans"`
}

// SubmitRequest creates a loan request for the acting farmer. The risk
// score is computed here, once, from the submitted attributes.
func (u *Usecase) SubmitRequest(ctx context.Context, actor *user.User, in SubmitInput) (*loanDomain.LoanRequest, error) {
	if actor == nil || actor.Role != user.RoleFarmer {
		return nil, loanDomain.ErrUnauthorized
	}
	if in.FarmSize <= 0 || !isFinite(in.FarmSize) ||
		in.TargetAmount <= 0 || !isFinite(in.TargetAmount) ||
		in.RepaymentPeriodMonths <= 0 || in.ExperienceYears < 0 {
		return nil, loanDomain.ErrInvalidInput
	}

	req := loanDomain.LoanRequest{
		ID:                    id.NewID32(),
		FarmerID:              actor.ID,
		FarmerName:            actor.Name,
		FarmerEmail:           actor.Email,
		FarmSize:              in.FarmSize,
		Location:              in.Location,
		CropType:              in.CropType,
		TargetAmount:          in.TargetAmount,
		Purpose:               in.Purpose,
		RepaymentPeriodMonths: in.RepaymentPeriodMonths,
		ExperienceYears:       in.ExperienceYears,
		PreviousLoans:         in.PreviousLoans,
		CurrentFunding:        0,
		RiskScore:             risk.Score(in.FarmSize, in.ExperienceYears, in.PreviousLoans, in.CropType),
		Status:                loanDomain.StatusActive,
		Investors:             []loanDomain.Investment{},
		RepaymentProgress:     0,
		CreatedAt:             time.Now().UTC(),
	}

	err := u.uw.WithinTx(ctx, func(r uow.Repos) error {
		loans, err := r.Loans.All(ctx)
		if err != nil {
			return fmt.Errorf("load loans: %w", err)
		}
		loans = append(loans, req)
		return r.Loans.ReplaceAll(ctx, loans)
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Invest applies an investment to a loan request with a capacity check,
// and records the matching portfolio entry in the same transaction. On
// any failure nothing is written: the ledger and the index stay as they
// were.
func (u *Usecase) Invest(ctx context.Context, actor *user.User, loanID string, amount float64) (*loanDomain.Investment, error) {
	if actor == nil || actor.Role != user.RoleInvestor {
		return nil, loanDomain.ErrUnauthorized
	}
	if amount <= 0 || !isFinite(amount) {
		return nil, loanDomain.ErrInvalidAmount
	}

	var inv loanDomain.Investment
	err := u.uw.WithinTx(ctx, func(r uow.Repos) error {
		loans, err := r.Loans.All(ctx)
		if err != nil {
			return fmt.Errorf("load loans: %w", err)
		}
		idx := -1
		for i := range loans {
			if loans[i].ID == loanID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return loanDomain.ErrNotFound
		}
		l := &loans[idx]

		if l.CurrentFunding+amount > l.TargetAmount {
			return &loanDomain.CapacityError{Remaining: l.Remaining()}
		}

		inv = loanDomain.Investment{
			ID:           id.NewID32(),
			InvestorID:   actor.ID,
			InvestorName: actor.Name,
			Amount:       amount,
			Date:         time.Now().UTC(),
			Status:       loanDomain.InvestmentActive,
		}
		l.Investors = append(l.Investors, inv)
		l.CurrentFunding += amount
		if l.CurrentFunding >= l.TargetAmount {
			l.Status = loanDomain.StatusFunded
		}
		if err := r.Loans.ReplaceAll(ctx, loans); err != nil {
			return fmt.Errorf("persist loans: %w", err)
		}

		// Denormalized entry, frozen at processing time: later repayment
		// updates do not rewrite it.
		portfolios, err := r.Portfolios.All(ctx)
		if err != nil {
			return fmt.Errorf("load portfolios: %w", err)
		}
		portfolios[actor.ID] = append(portfolios[actor.ID], portfolio.Entry{
			ID:                inv.ID,
			LoanID:            l.ID,
			InvestorID:        inv.InvestorID,
			InvestorName:      inv.InvestorName,
			Amount:            inv.Amount,
			Date:              inv.Date,
			Status:            inv.Status,
			FarmerName:        l.FarmerName,
			CropType:          l.CropType,
			ExpectedReturn:    inv.Amount * portfolio.ExpectedReturnMultiplier,
			RepaymentProgress: l.RepaymentProgress,
		})
		if err := r.Portfolios.ReplaceAll(ctx, portfolios); err != nil {
			return fmt.Errorf("persist portfolios: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// UpdateRepayment sets the repayment progress of a loan the acting farmer
// owns. Ownership is checked by farmer id, not just loan id: someone
// else's loan id reports not-found. Progress 100 completes the loan;
// completed is terminal. Lowering a previously higher progress is
// permitted.
func (u *Usecase) UpdateRepayment(ctx context.Context, actor *user.User, loanID string, progress int) (*loanDomain.LoanRequest, error) {
	if actor == nil || actor.Role != user.RoleFarmer {
		return nil, loanDomain.ErrUnauthorized
	}
	if progress < 0 || progress > 100 {
		return nil, loanDomain.ErrInvalidProgress
	}

	var out loanDomain.LoanRequest
	err := u.uw.WithinTx(ctx, func(r uow.Repos) error {
		loans, err := r.Loans.All(ctx)
		if err != nil {
			return fmt.Errorf("load loans: %w", err)
		}
		idx := -1
		for i := range loans {
			if loans[i].ID == loanID && loans[i].FarmerID == actor.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return loanDomain.ErrNotFound
		}
		l := &loans[idx]

		l.RepaymentProgress = progress
		if progress == 100 {
			l.Status = loanDomain.StatusCompleted
		}
		if err := r.Loans.ReplaceAll(ctx, loans); err != nil {
			return fmt.Errorf("persist loans: %w", err)
		}
		out = *l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns every loan request.
func (u *Usecase) List(ctx context.Context) ([]loanDomain.LoanRequest, error) {
	return u.loans.All(ctx)
}

// ListOpen returns loan requests still accepting investments.
func (u *Usecase) ListOpen(ctx context.Context) ([]loanDomain.LoanRequest, error) {
	loans, err := u.loans.All(ctx)
	if err != nil {
		return nil, err
	}
	open := make([]loanDomain.LoanRequest, 0, len(loans))
	for i := range loans {
		if loans[i].Status == loanDomain.StatusActive {
			open = append(open, loans[i])
		}
	}
	return open, nil
}

// ListByFarmer returns the loans owned by one farmer.
func (u *Usecase) ListByFarmer(ctx context.Context, farmerID string) ([]loanDomain.LoanRequest, error) {
	loans, err := u.loans.All(ctx)
	if err != nil {
		return nil, err
	}
	own := make([]loanDomain.LoanRequest, 0, len(loans))
	for i := range loans {
		if loans[i].FarmerID == farmerID {
			own = append(own, loans[i])
		}
	}
	return own, nil
}

// Get returns one loan request by id.
func (u *Usecase) Get(ctx context.Context, loanID string) (*loanDomain.LoanRequest, error) {
	loans, err := u.loans.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range loans {
		if loans[i].ID == loanID {
			out := loans[i]
			return &out, nil
		}
	}
	return nil, loanDomain.ErrNotFound
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
