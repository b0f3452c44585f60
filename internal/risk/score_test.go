package risk

import "testing"

func TestScore_BestCaseHitsCeiling(t *testing.T) {
	if got := Score(5, 10, "excellent", "maize"); got != 100 {
		t.Fatalf("Score(5,10,excellent,maize) = %d, want 100", got)
	}
}

func TestScore_WorstCaseLiterals(t *testing.T) {
	// 70 base + 5 (small farm) + 5 (little experience) + 0 (no history) + 0 (unstable crop)
	if got := Score(0.5, 1, "none", "wheat"); got != 80 {
		t.Fatalf("Score(0.5,1,none,wheat) = %d, want 80", got)
	}
}

func TestScore_Tiers(t *testing.T) {
	cases := []struct {
		name     string
		farmSize float64
		years    int
		history  string
		crop     string
		want     int
	}{
		{"mid farm mid experience", 2, 5, "fair", "wheat", 70 + 10 + 10 + 5},
		{"large farm no history", 7.5, 0, "poor", "coffee", 70 + 15 + 5},
		{"good history stable crop", 1, 4, "good", "beans", 70 + 5 + 5 + 10 + 10},
		{"boundary farm size 5", 5, 4, "none", "tea", 70 + 15 + 5},
		{"boundary experience 10", 0, 10, "none", "tea", 70 + 5 + 15},
	}
	for _, tc := range cases {
		if got := Score(tc.farmSize, tc.years, tc.history, tc.crop); got != tc.want {
			t.Fatalf("%s: Score = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestScore_CropMatchIsCaseInsensitive(t *testing.T) {
	withBonus := Score(1, 1, "none", "MAIZE")
	without := Score(1, 1, "none", "wheat")
	if withBonus-without != 10 {
		t.Fatalf("crop bonus = %d, want 10", withBonus-without)
	}
}

func TestScore_AlwaysWithinBounds(t *testing.T) {
	farms := []float64{-3, 0, 0.1, 2, 4.9, 5, 100}
	years := []int{-1, 0, 4, 5, 9, 10, 50}
	histories := []string{"", "none", "poor", "fair", "good", "excellent", "stellar"}
	crops := []string{"", "maize", "Beans", "POTATOES", "wheat", "cassava"}
	for _, f := range farms {
		for _, y := range years {
			for _, h := range histories {
				for _, c := range crops {
					got := Score(f, y, h, c)
					if got < 30 || got > 100 {
						t.Fatalf("Score(%v,%d,%q,%q) = %d out of [30,100]", f, y, h, c, got)
					}
				}
			}
		}
	}
}
