package engine

import "math"

// Level is the coarse four-tier classification of a total score. It is a
// separate scale from the message tiers, which cut finer for narrative
// purposes.
type Level string

const (
	LevelExcellent        Level = "excellent"
	LevelGood             Level = "good"
	LevelFair             Level = "fair"
	LevelNeedsImprovement Level = "needsImprovement"
)

// CombineScores folds the two category scores into one 0-100 total:
// weighted sum, joint-achievement bonus, then the 100-point cap.
func (e *Engine) CombineScores(cardio CardioMetric, strength StrengthMetric) int {
	weighted := roundHalfUp(
		float64(cardio.Score)*e.standards.CardioWeight +
			float64(strength.Score)*e.standards.StrengthWeight,
	)
	bonus := 0
	if cardio.WHOAchieved && strength.WHOAchieved {
		bonus = e.standards.BothAchievedBonus
	}
	return capScore(weighted + bonus)
}

// Contribution is one category's share of the weighted total.
type Contribution struct {
	Score        int     `json:"score"`
	Weight       float64 `json:"weight"`
	Contribution int     `json:"contribution"`
}

// Breakdown itemises how the total score was assembled. Contributions are
// the rounded weighted values before capping; only Total is capped.
type Breakdown struct {
	Cardio   Contribution `json:"cardio"`
	Strength Contribution `json:"strength"`
	Bonus    int          `json:"bonus"`
	Total    int          `json:"total"`
}

// ScoreBreakdown itemises the weighted contributions and bonus behind a
// combined total.
func (e *Engine) ScoreBreakdown(cardio CardioMetric, strength StrengthMetric) Breakdown {
	cardioPart := roundHalfUp(float64(cardio.Score) * e.standards.CardioWeight)
	strengthPart := roundHalfUp(float64(strength.Score) * e.standards.StrengthWeight)
	bonus := 0
	if cardio.WHOAchieved && strength.WHOAchieved {
		bonus = e.standards.BothAchievedBonus
	}
	return Breakdown{
		Cardio:   Contribution{Score: cardio.Score, Weight: e.standards.CardioWeight, Contribution: cardioPart},
		Strength: Contribution{Score: strength.Score, Weight: e.standards.StrengthWeight, Contribution: strengthPart},
		Bonus:    bonus,
		Total:    capScore(cardioPart + strengthPart + bonus),
	}
}

// ScoreLevel classifies a total score on the 90/70/50 scale.
func ScoreLevel(total int) Level {
	switch {
	case total >= 90:
		return LevelExcellent
	case total >= 70:
		return LevelGood
	case total >= 50:
		return LevelFair
	default:
		return LevelNeedsImprovement
	}
}

// ratePercent is the uncapped achievement percentage of value against
// target, rounded half-up.
func ratePercent(value, target int) int {
	if target <= 0 {
		return 0
	}
	return roundHalfUp(float64(value) / float64(target) * 100)
}

func capScore(score int) int {
	if score > 100 {
		return 100
	}
	return score
}

// roundHalfUp is the single rounding rule used throughout scoring, keeping
// results reproducible across implementations.
func roundHalfUp(v float64) int {
	return int(math.Round(v))
}
