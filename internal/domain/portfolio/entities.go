package portfolio

import "time"

// ExpectedReturnMultiplier is the fixed payout multiplier applied to every
// investment when its portfolio entry is recorded.
const ExpectedReturnMultiplier = 1.10

// Entry is the denormalized, read-oriented record of one investment in an
// investor's portfolio. FarmerName, CropType and RepaymentProgress are
// snapshots taken when the investment was processed; later repayment
// updates do not touch the entry. LoanID is retained so a caller that
// wants a live view can dereference the loan itself.
type Entry struct {
	ID                string    `json:"id"`
	LoanID            string    `json:"loan_id"`
	InvestorID        string    `json:"investor_id"`
	InvestorName      string    `json:"investor_name"`
	Amount            float64   `json:"amount"`
	Date              time.Time `json:"date"`
	Status            string    `json:"status"`
	FarmerName        string    `json:"farmer_name"`
	CropType          string    `json:"crop_type"`
	ExpectedReturn    float64   `json:"expected_return"`
	RepaymentProgress int       `json:"repayment_progress"`
}
