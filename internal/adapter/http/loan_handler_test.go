package http

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
)

func submitLoanBody() map[string]any {
	return map[string]any{
		"farm_size":               3.0,
		"location":                "Nakuru",
		"crop_type":               "maize",
		"target_amount":           1000.0,
		"purpose":                 "seeds",
		"repayment_period_months": 12,
		"experience_years":        6,
		"previous_loans":          "good",
	}
}

func submitLoan(t *testing.T, e *echo.Echo, farmerID string) string {
	t.Helper()
	rec := doJSON(t, e, http.MethodPost, "/loans", farmerID, submitLoanBody())
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit loan: status %d body %s", rec.Code, rec.Body.String())
	}
	var l struct {
		ID string `json:"id"`
	}
	decode(t, rec, &l)
	return l.ID
}

func TestSubmitLoan_RequiresFarmer(t *testing.T) {
	e := newTestApp(t)
	investorID := registerUser(t, e, "Ivan", "ivan@fund.example", "investor")

	// No identity header at all.
	rec := doJSON(t, e, http.MethodPost, "/loans", "", submitLoanBody())
	if rec.Code != http.StatusForbidden {
		t.Fatalf("anonymous submit status = %d, want 403", rec.Code)
	}
	// Investor identity.
	rec = doJSON(t, e, http.MethodPost, "/loans", investorID, submitLoanBody())
	if rec.Code != http.StatusForbidden {
		t.Fatalf("investor submit status = %d, want 403", rec.Code)
	}
}

func TestSubmitLoan_ComputesRiskScore(t *testing.T) {
	e := newTestApp(t)
	farmerID := registerUser(t, e, "Alice", "alice@farm.example", "farmer")

	rec := doJSON(t, e, http.MethodPost, "/loans", farmerID, submitLoanBody())
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var l struct {
		RiskScore int    `json:"risk_score"`
		Status    string `json:"status"`
	}
	decode(t, rec, &l)
	if l.RiskScore != 100 {
		t.Fatalf("risk_score = %d, want 100", l.RiskScore)
	}
	if l.Status != "active" {
		t.Fatalf("status = %s, want active", l.Status)
	}
}

func TestInvest_FullFlowWithCapacityRejection(t *testing.T) {
	e := newTestApp(t)
	farmerID := registerUser(t, e, "Alice", "alice@farm.example", "farmer")
	i1 := registerUser(t, e, "Ivan", "ivan@fund.example", "investor")
	i2 := registerUser(t, e, "Judy", "judy@fund.example", "investor")
	loanID := submitLoan(t, e, farmerID)

	rec := doJSON(t, e, http.MethodPost, "/loans/"+loanID+"/investments", i1, map[string]any{"amount": 600.0})
	if rec.Code != http.StatusCreated {
		t.Fatalf("invest 600: status %d body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, e, http.MethodPost, "/loans/"+loanID+"/investments", i2, map[string]any{"amount": 500.0})
	if rec.Code != http.StatusConflict {
		t.Fatalf("invest 500: status %d, want 409; body %s", rec.Code, rec.Body.String())
	}
	var resp ErrorResponse
	decode(t, rec, &resp)
	if resp.MaxRemaining == nil || *resp.MaxRemaining != 400 {
		t.Fatalf("max_remaining = %v, want 400", resp.MaxRemaining)
	}

	rec = doJSON(t, e, http.MethodPost, "/loans/"+loanID+"/investments", i2, map[string]any{"amount": 400.0})
	if rec.Code != http.StatusCreated {
		t.Fatalf("invest 400: status %d body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, e, http.MethodGet, "/loans/"+loanID, "", nil)
	var l struct {
		CurrentFunding float64 `json:"current_funding"`
		Status         string  `json:"status"`
	}
	decode(t, rec, &l)
	if l.CurrentFunding != 1000 || l.Status != "funded" {
		t.Fatalf("loan after fill: %+v", l)
	}

	// Farmer completes repayment.
	rec = doJSON(t, e, http.MethodPatch, "/loans/"+loanID+"/repayment", farmerID, map[string]any{"progress": 100})
	if rec.Code != http.StatusOK {
		t.Fatalf("repayment: status %d body %s", rec.Code, rec.Body.String())
	}
	var after struct {
		Status string `json:"status"`
	}
	decode(t, rec, &after)
	if after.Status != "completed" {
		t.Fatalf("status = %s, want completed", after.Status)
	}
}

func TestInvest_UnknownLoanIs404(t *testing.T) {
	e := newTestApp(t)
	investorID := registerUser(t, e, "Ivan", "ivan@fund.example", "investor")

	rec := doJSON(t, e, http.MethodPost, "/loans/deadbeefdeadbeefdeadbeefdeadbeef/investments", investorID, map[string]any{"amount": 10.0})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body=%s", rec.Code, rec.Body.String())
	}
}

func TestUpdateRepayment_ForeignLoanIs404(t *testing.T) {
	e := newTestApp(t)
	alice := registerUser(t, e, "Alice", "alice@farm.example", "farmer")
	bob := registerUser(t, e, "Bob", "bob@farm.example", "farmer")
	loanID := submitLoan(t, e, alice)

	rec := doJSON(t, e, http.MethodPatch, "/loans/"+loanID+"/repayment", bob, map[string]any{"progress": 50})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body=%s", rec.Code, rec.Body.String())
	}
}

func TestListLoans_OpenFilterAndFarmerFilter(t *testing.T) {
	e := newTestApp(t)
	alice := registerUser(t, e, "Alice", "alice@farm.example", "farmer")
	investor := registerUser(t, e, "Ivan", "ivan@fund.example", "investor")

	first := submitLoan(t, e, alice)
	second := submitLoan(t, e, alice)
	// Fill the second loan entirely.
	rec := doJSON(t, e, http.MethodPost, "/loans/"+second+"/investments", investor, map[string]any{"amount": 1000.0})
	if rec.Code != http.StatusCreated {
		t.Fatalf("fill: status %d body %s", rec.Code, rec.Body.String())
	}

	var loans []struct {
		ID string `json:"id"`
	}
	rec = doJSON(t, e, http.MethodGet, "/loans?open=true", "", nil)
	decode(t, rec, &loans)
	if len(loans) != 1 || loans[0].ID != first {
		t.Fatalf("open loans = %+v", loans)
	}

	rec = doJSON(t, e, http.MethodGet, "/loans?farmer_id="+alice, "", nil)
	decode(t, rec, &loans)
	if len(loans) != 2 {
		t.Fatalf("farmer loans = %d, want 2", len(loans))
	}
}

func TestPortfolioAndStats(t *testing.T) {
	e := newTestApp(t)
	alice := registerUser(t, e, "Alice", "alice@farm.example", "farmer")
	investor := registerUser(t, e, "Ivan", "ivan@fund.example", "investor")
	loanID := submitLoan(t, e, alice)

	rec := doJSON(t, e, http.MethodPost, "/loans/"+loanID+"/investments", investor, map[string]any{"amount": 250.0})
	if rec.Code != http.StatusCreated {
		t.Fatalf("invest: status %d body %s", rec.Code, rec.Body.String())
	}

	// Portfolio requires an investor identity.
	rec = doJSON(t, e, http.MethodGet, "/portfolio", alice, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("farmer portfolio status = %d, want 403", rec.Code)
	}
	rec = doJSON(t, e, http.MethodGet, "/portfolio", investor, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("portfolio status = %d body %s", rec.Code, rec.Body.String())
	}
	var entries []struct {
		Amount         float64 `json:"amount"`
		ExpectedReturn float64 `json:"expected_return"`
		FarmerName     string  `json:"farmer_name"`
	}
	decode(t, rec, &entries)
	if len(entries) != 1 || entries[0].ExpectedReturn != 275 || entries[0].FarmerName != "Alice" {
		t.Fatalf("entries = %+v", entries)
	}

	rec = doJSON(t, e, http.MethodGet, "/stats/impact", "", nil)
	var impact struct {
		FarmerCount   int     `json:"farmer_count"`
		TotalInvested float64 `json:"total_invested"`
		TotalAcres    float64 `json:"total_acres"`
	}
	decode(t, rec, &impact)
	if impact.FarmerCount != 1 || impact.TotalInvested != 250 || impact.TotalAcres != 3 {
		t.Fatalf("impact = %+v", impact)
	}

	rec = doJSON(t, e, http.MethodGet, "/stats/portfolio", investor, nil)
	var istats struct {
		TotalInvested float64 `json:"total_invested"`
		ActiveCount   int     `json:"active_count"`
	}
	decode(t, rec, &istats)
	if istats.TotalInvested != 250 || istats.ActiveCount != 1 {
		t.Fatalf("investor stats = %+v", istats)
	}

	rec = doJSON(t, e, http.MethodGet, "/stats/farmer", alice, nil)
	var fstats struct {
		Count          int     `json:"count"`
		TotalRequested float64 `json:"total_requested"`
		TotalReceived  float64 `json:"total_received"`
		ActiveCount    int     `json:"active_count"`
	}
	decode(t, rec, &fstats)
	if fstats.Count != 1 || fstats.TotalRequested != 1000 || fstats.TotalReceived != 250 || fstats.ActiveCount != 1 {
		t.Fatalf("farmer stats = %+v", fstats)
	}
}
