// Package report computes display-ready summary statistics over the
// persisted collections. Pure aggregation: recomputed on demand from
// caller-supplied data, never cached.
package report

import (
	"agrifund-backend/internal/domain/loan"
	"agrifund-backend/internal/domain/portfolio"
)

type ImpactStats struct {
	// FarmerCount counts loan requests, not distinct farmers.
	FarmerCount   int     `json:"farmer_count"`
	TotalInvested float64 `json:"total_invested"`
	TotalAcres    float64 `json:"total_acres"`
}

type InvestorStats struct {
	TotalInvested    float64 `json:"total_invested"`
	ActiveCount      int     `json:"active_count"`
	FarmersSupported int     `json:"farmers_supported"`
}

type FarmerStats struct {
	Count          int     `json:"count"`
	TotalRequested float64 `json:"total_requested"`
	TotalReceived  float64 `json:"total_received"`
	ActiveCount    int     `json:"active_count"`
}

func Impact(loans []loan.LoanRequest) ImpactStats {
	s := ImpactStats{FarmerCount: len(loans)}
	for i := range loans {
		s.TotalInvested += loans[i].CurrentFunding
		s.TotalAcres += loans[i].FarmSize
	}
	return s
}

func Investor(entries []portfolio.Entry) InvestorStats {
	s := InvestorStats{FarmersSupported: len(entries)}
	for i := range entries {
		s.TotalInvested += entries[i].Amount
		if entries[i].Status == loan.InvestmentActive {
			s.ActiveCount++
		}
	}
	return s
}

func Farmer(loans []loan.LoanRequest) FarmerStats {
	s := FarmerStats{Count: len(loans)}
	for i := range loans {
		s.TotalRequested += loans[i].TargetAmount
		s.TotalReceived += loans[i].CurrentFunding
		// Funded loans still count as active until repayment completes.
		if loans[i].Status == loan.StatusActive || loans[i].Status == loan.StatusFunded {
			s.ActiveCount++
		}
	}
	return s
}
