// Package risk scores loan applications with a bounded heuristic.
package risk

import "strings"

const (
	baseScore = 70
	minScore  = 30
	maxScore  = 100
)

// stableCrops earn a stability bonus; matched case-insensitively.
var stableCrops = map[string]struct{}{
	"maize":    {},
	"beans":    {},
	"potatoes": {},
}

// Score maps loan-application attributes to an integer in [30,100].
// Deterministic, no side effects. previousLoans is a history qualifier
// ("excellent", "good", "fair", ...); unknown values add nothing.
func Score(farmSize float64, experienceYears int, previousLoans, cropType string) int {
	score := baseScore

	switch {
	case farmSize >= 5:
		score += 15
	case farmSize >= 2:
		score += 10
	default:
		score += 5
	}

	switch {
	case experienceYears >= 10:
		score += 15
	case experienceYears >= 5:
		score += 10
	default:
		score += 5
	}

	switch previousLoans {
	case "excellent":
		score += 15
	case "good":
		score += 10
	case "fair":
		score += 5
	}

	if _, ok := stableCrops[strings.ToLower(cropType)]; ok {
		score += 10
	}

	if score > maxScore {
		score = maxScore
	}
	if score < minScore {
		score = minScore
	}
	return score
}
