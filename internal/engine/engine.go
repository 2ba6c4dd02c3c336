package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownCategory reports a caller contract violation: a category other
// than cardio or strength passed to a per-category entrypoint. Dirty data
// never produces this; only programmer error does.
var ErrUnknownCategory = errors.New("unknown exercise category")

// Engine scores weekly workout data against immutable health-policy
// standards. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	standards Standards
}

// New returns an Engine scoring against the WHO default standards.
func New() *Engine {
	return &Engine{standards: DefaultStandards()}
}

// NewWithStandards returns an Engine scoring against custom policy values.
func NewWithStandards(s Standards) *Engine {
	return &Engine{standards: s}
}

// Standards returns the policy values the engine scores against.
func (e *Engine) Standards() Standards {
	return e.standards
}

// Achievements flags which weekly targets were met.
type Achievements struct {
	Cardio   bool `json:"cardio"`
	Strength bool `json:"strength"`
	Both     bool `json:"both"`
}

// WeekSummary counts activity across the scored week.
type WeekSummary struct {
	TotalWorkouts int `json:"totalWorkouts"`
	TrainingDays  int `json:"trainingDays"`
	RemainingDays int `json:"remainingDays"`
}

// Scores groups the combined and per-category totals.
type Scores struct {
	Total    int `json:"total"`
	Cardio   int `json:"cardio"`
	Strength int `json:"strength"`
}

// WeeklyInsight is the full derived output for one user week. It is a pure
// value: no identity, no mutation after construction, nothing persisted by
// the engine itself.
type WeeklyInsight struct {
	Week            WeekWindow       `json:"week"`
	Scores          Scores           `json:"scores"`
	Level           Level            `json:"level"`
	Breakdown       Breakdown        `json:"breakdown"`
	Cardio          CardioMetric     `json:"cardio"`
	Strength        StrengthMetric   `json:"strength"`
	Achievements    Achievements     `json:"achievements"`
	Summary         WeekSummary      `json:"summary"`
	HealthMessage   string           `json:"healthMessage"`
	DetailedMessage DetailedMessage  `json:"detailedMessage"`
	Recommendations []Recommendation `json:"recommendations"`
	EngineVersion   string           `json:"engineVersion"`
	CalculatedAt    time.Time        `json:"calculatedAt"`
}

// CalculateWeeklyInsight filters workouts to the ISO week containing
// targetDate, scores both categories, and assembles the narrated insight.
// A zero targetDate means now. Malformed records never cause an error; they
// are absorbed by the per-field coercion rules in the calculators.
func (e *Engine) CalculateWeeklyInsight(workouts []*Record, targetDate time.Time) WeeklyInsight {
	if targetDate.IsZero() {
		targetDate = time.Now()
	}

	weekly := FilterToWeek(workouts, targetDate)
	cardio := e.CardioMetrics(weekly)
	strength := e.StrengthMetrics(weekly)

	total := e.CombineScores(cardio, strength)
	achievements := Achievements{
		Cardio:   cardio.WHOAchieved,
		Strength: strength.WHOAchieved,
		Both:     cardio.WHOAchieved && strength.WHOAchieved,
	}
	summary := WeekSummary{
		TotalWorkouts: len(weekly),
		TrainingDays:  distinctDays(weekly),
		RemainingDays: RemainingDaysInWeek(targetDate),
	}

	return WeeklyInsight{
		Week:            WeekBounds(targetDate),
		Scores:          Scores{Total: total, Cardio: cardio.Score, Strength: strength.Score},
		Level:           ScoreLevel(total),
		Breakdown:       e.ScoreBreakdown(cardio, strength),
		Cardio:          cardio,
		Strength:        strength,
		Achievements:    achievements,
		Summary:         summary,
		HealthMessage:   GenerateMessage(total, achievements),
		DetailedMessage: GenerateDetailedMessage(total, achievements, cardio, strength, summary),
		Recommendations: e.Recommendations(cardio, strength),
		EngineVersion:   Version,
		CalculatedAt:    time.Now().UTC(),
	}
}

// ScoreSummary is the low-latency output of CalculateWeeklyScore, skipping
// message and recommendation construction.
type ScoreSummary struct {
	Scores       Scores       `json:"scores"`
	Achievements Achievements `json:"achievements"`
}

// CalculateWeeklyScore computes only the scores for the week containing
// targetDate. Intended for UI feedback paths that cannot afford the full
// insight assembly.
func (e *Engine) CalculateWeeklyScore(workouts []*Record, targetDate time.Time) ScoreSummary {
	if targetDate.IsZero() {
		targetDate = time.Now()
	}

	weekly := FilterToWeek(workouts, targetDate)
	cardio := e.CardioMetrics(weekly)
	strength := e.StrengthMetrics(weekly)

	return ScoreSummary{
		Scores: Scores{
			Total:    e.CombineScores(cardio, strength),
			Cardio:   cardio.Score,
			Strength: strength.Score,
		},
		Achievements: Achievements{
			Cardio:   cardio.WHOAchieved,
			Strength: strength.WHOAchieved,
			Both:     cardio.WHOAchieved && strength.WHOAchieved,
		},
	}
}

// CategorySummary is the category-agnostic view of one metric set, shaped as
// {score, achieved, weekly value vs target}.
type CategorySummary struct {
	Category        ExerciseType `json:"category"`
	Score           int          `json:"score"`
	WHOAchieved     bool         `json:"whoAchieved"`
	WeeklyValue     int          `json:"weeklyValue"`
	TargetValue     int          `json:"targetValue"`
	AchievementRate int          `json:"achievementRate"`
	WorkoutCount    int          `json:"workoutCount"`
}

// SummarizeCategory computes a single category's metric set over the given
// workouts. Unlike dirty-data handling, an unrecognised category is a
// contract violation and returns ErrUnknownCategory.
func (e *Engine) SummarizeCategory(workouts []*Record, category ExerciseType) (CategorySummary, error) {
	switch category {
	case ExerciseCardio:
		m := e.CardioMetrics(workouts)
		return CategorySummary{
			Category:        ExerciseCardio,
			Score:           m.Score,
			WHOAchieved:     m.WHOAchieved,
			WeeklyValue:     m.Details.WeeklyMinutes,
			TargetValue:     m.Details.TargetMinutes,
			AchievementRate: m.Details.AchievementRate,
			WorkoutCount:    m.Details.WorkoutCount,
		}, nil
	case ExerciseStrength:
		m := e.StrengthMetrics(workouts)
		return CategorySummary{
			Category:        ExerciseStrength,
			Score:           m.Score,
			WHOAchieved:     m.WHOAchieved,
			WeeklyValue:     m.Details.WeeklyDays,
			TargetValue:     m.Details.TargetDays,
			AchievementRate: m.Details.AchievementRate,
			WorkoutCount:    m.Details.WorkoutCount,
		}, nil
	default:
		return CategorySummary{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
}

// distinctDays counts unique parseable dates across all record types.
func distinctDays(workouts []*Record) int {
	days := make(map[string]struct{})
	for _, w := range workouts {
		if w == nil {
			continue
		}
		if key, _, ok := parseDay(w.Date); ok {
			days[key] = struct{}{}
		}
	}
	return len(days)
}
