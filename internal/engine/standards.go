package engine

// Version identifies the scoring algorithm revision. It is stamped on every
// insight so downstream stores can tell outputs of different revisions apart.
const Version = "2.0.0"

// Standards holds the health-policy constants the engine scores against.
// The zero value is not usable; construct via DefaultStandards.
type Standards struct {
	// CardioWeeklyMinutes is the weekly moderate-aerobic target in minutes.
	CardioWeeklyMinutes int
	// StrengthWeeklyDays is the weekly strength-training-days target.
	StrengthWeeklyDays int
	// CardioWeight and StrengthWeight combine category scores; they sum to 1.
	CardioWeight   float64
	StrengthWeight float64
	// BothAchievedBonus is added after weighting when both targets are met,
	// before the 100-point cap.
	BothAchievedBonus int
}

// DefaultStandards returns the WHO physical-activity recommendations:
// 150 minutes of moderate aerobic exercise and 2 strength-training days
// per week.
func DefaultStandards() Standards {
	return Standards{
		CardioWeeklyMinutes: 150,
		StrengthWeeklyDays:  2,
		CardioWeight:        0.6,
		StrengthWeight:      0.4,
		BothAchievedBonus:   5,
	}
}
