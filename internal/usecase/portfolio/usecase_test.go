package portfolio

import (
	"context"
	"testing"
	"time"

	portfolioDomain "agrifund-backend/internal/domain/portfolio"
	"agrifund-backend/internal/testutil/memstore"
)

func TestGet_EmptyForUnknownInvestor(t *testing.T) {
	uc := NewUsecase(memstore.New().Portfolios())

	entries, err := uc.Get(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if entries == nil {
		t.Fatal("entries is nil, want empty slice")
	}
	if len(entries) != 0 {
		t.Fatalf("entries = %d, want 0", len(entries))
	}
}

func TestGet_ReturnsInvestorEntriesOnly(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	now := time.Now().UTC()
	seed := map[string][]portfolioDomain.Entry{
		"ivan": {
			{ID: "inv1", LoanID: "loan1", InvestorID: "ivan", Amount: 100, Date: now, Status: "active", FarmerName: "Alice", CropType: "maize", ExpectedReturn: 110, RepaymentProgress: 25},
			{ID: "inv2", LoanID: "loan2", InvestorID: "ivan", Amount: 50, Date: now, Status: "active", ExpectedReturn: 55},
		},
		"judy": {
			{ID: "inv3", LoanID: "loan1", InvestorID: "judy", Amount: 75, Date: now, Status: "active", ExpectedReturn: 82.5},
		},
	}
	if err := s.Portfolios().ReplaceAll(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	uc := NewUsecase(s.Portfolios())
	entries, err := uc.Get(ctx, "ivan")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].RepaymentProgress != 25 {
		t.Fatalf("snapshot progress = %d, want 25", entries[0].RepaymentProgress)
	}
}
