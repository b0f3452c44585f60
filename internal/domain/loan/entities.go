package loan

import "time"

type Status string

const (
	StatusActive    Status = "active"
	StatusFunded    Status = "funded"
	StatusCompleted Status = "completed"
)

// InvestmentActive is the only investment status in use; partial defaults
// and write-offs are out of scope.
const InvestmentActive = "active"

// Investment is one investor's contribution toward a loan request's target.
// Immutable once created; it lives embedded in its LoanRequest and is
// denormalized into the investor's portfolio.
type Investment struct {
	ID           string    `json:"id"`
	InvestorID   string    `json:"investor_id"`
	InvestorName string    `json:"investor_name"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`
}

// LoanRequest is a farmer's ask for capital. The embedded Investments
// sequence is the source of truth for CurrentFunding; the portfolio index
// holds read-only copies and must never drive capacity checks.
type LoanRequest struct {
	ID string `json:"id"`

	// Farmer snapshot taken at creation.
	FarmerID    string `json:"farmer_id"`
	FarmerName  string `json:"farmer_name"`
	FarmerEmail string `json:"farmer_email"`

	FarmSize              float64 `json:"farm_size"` // acres
	Location              string  `json:"location"`
	CropType              string  `json:"crop_type"`
	TargetAmount          float64 `json:"target_amount"`
	Purpose               string  `json:"purpose"`
	RepaymentPeriodMonths int     `json:"repayment_period_months"`
	ExperienceYears       int     `json:"experience_years"`
	PreviousLoans         string  `json:"previous_loans"`

	CurrentFunding float64 `json:"current_funding"`
	// RiskScore is computed once at creation and never re-derived.
	RiskScore int          `json:"risk_score"`
	Status    Status       `json:"status"`
	Investors []Investment `json:"investors"`
	// RepaymentProgress is a farmer-controlled percent in [0,100].
	// Regressions are permitted; see the ledger's UpdateRepayment.
	RepaymentProgress int       `json:"repayment_progress"`
	CreatedAt         time.Time `json:"created_at"`
}

// Remaining is the capacity the request may still accept.
func (l *LoanRequest) Remaining() float64 { return l.TargetAmount - l.CurrentFunding }
