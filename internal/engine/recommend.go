package engine

import (
	"fmt"
	"math"
)

// Priority orders recommendations by urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// RecommendationType names the concern a recommendation addresses.
type RecommendationType string

const (
	RecommendationCardio      RecommendationType = "cardio"
	RecommendationStrength    RecommendationType = "strength"
	RecommendationMaintenance RecommendationType = "maintenance"
	RecommendationBalance     RecommendationType = "balance"
)

// Recommendation is one actionable improvement suggestion.
type Recommendation struct {
	Type       RecommendationType `json:"type"`
	Priority   Priority           `json:"priority"`
	Message    string             `json:"message"`
	Suggestion string             `json:"suggestion"`
	Tips       []string           `json:"tips"`
}

// balanceGapThreshold is the achievement-rate spread beyond which the weekly
// routine counts as lopsided.
const balanceGapThreshold = 50

// Recommendations derives the ordered suggestion list: cardio gap, strength
// gap, maintenance when both targets are met, and a balance nudge when the
// category achievement rates diverge by more than 50 points.
func (e *Engine) Recommendations(cardio CardioMetric, strength StrengthMetric) []Recommendation {
	recs := make([]Recommendation, 0, 4)

	if !cardio.WHOAchieved {
		recs = append(recs, cardioRecommendation(cardio))
	}
	if !strength.WHOAchieved {
		recs = append(recs, strengthRecommendation(strength))
	}
	if cardio.WHOAchieved && strength.WHOAchieved {
		recs = append(recs, maintenanceRecommendation())
	}
	if rec, ok := balanceRecommendation(cardio, strength); ok {
		recs = append(recs, rec)
	}

	return recs
}

func cardioRecommendation(metric CardioMetric) Recommendation {
	gap := metric.Details.TargetMinutes - metric.Details.WeeklyMinutes
	dailyGap := int(math.Ceil(float64(gap) / 7))

	priority := PriorityMedium
	if gap > 100 {
		priority = PriorityHigh
	}

	rec := Recommendation{
		Type:       RecommendationCardio,
		Priority:   priority,
		Message:    fmt.Sprintf("Add %d more minutes of aerobic exercise this week to reach the WHO target", gap),
		Suggestion: fmt.Sprintf("Start with %d minutes of walking a day", dailyGap),
		Tips:       make([]string, 0, 2),
	}

	switch {
	case gap <= 30:
		rec.Tips = append(rec.Tips, "Walking one extra stop on your commute covers it")
	case gap <= 60:
		rec.Tips = append(rec.Tips, "Make a lunchtime walk part of your routine")
	default:
		rec.Tips = append(rec.Tips, "Add two 30-minute weekend jogs")
	}

	switch activeDays := len(metric.Details.ByDay); {
	case activeDays == 0:
		rec.Tips = append(rec.Tips, "Begin with three 10-minute sessions this week")
	case activeDays < 3:
		rec.Tips = append(rec.Tips, "Add one more active day to your week")
	}

	return rec
}

func strengthRecommendation(metric StrengthMetric) Recommendation {
	gap := metric.Details.TargetDays - metric.Details.WeeklyDays

	priority := PriorityMedium
	if metric.Details.WeeklyDays == 0 {
		priority = PriorityHigh
	}

	rec := Recommendation{
		Type:       RecommendationStrength,
		Priority:   priority,
		Message:    fmt.Sprintf("Add %d more strength training days this week to reach the WHO target", gap),
		Suggestion: "Push-ups, squats, and other bodyweight moves need no equipment",
		Tips:       make([]string, 0, 2),
	}

	switch metric.Details.WeeklyDays {
	case 0:
		rec.Tips = append(rec.Tips,
			"Start with two 10-minute sessions a week",
			"Push-ups, squats, and planks make a solid starting trio")
	case 1:
		rec.Tips = append(rec.Tips,
			"Just one more day hits the target",
			"Train a different muscle group than last time")
	}

	return rec
}

func maintenanceRecommendation() Recommendation {
	return Recommendation{
		Type:       RecommendationMaintenance,
		Priority:   PriorityLow,
		Message:    "You are sustaining an excellent exercise habit!",
		Suggestion: "Try a new challenge or add variety to your sessions",
		Tips: []string{
			"Raise intensity with a HIIT session",
			"Improve flexibility with yoga or pilates",
			"Take up a new sport",
		},
	}
}

func balanceRecommendation(cardio CardioMetric, strength StrengthMetric) (Recommendation, bool) {
	cardioRate := cardio.Details.AchievementRate
	strengthRate := strength.Details.AchievementRate

	difference := cardioRate - strengthRate
	if difference < 0 {
		difference = -difference
	}
	if difference <= balanceGapThreshold {
		return Recommendation{}, false
	}

	weakerLabel := "strength training"
	weakerRate := strengthRate
	if cardioRate < strengthRate {
		weakerLabel = "aerobic exercise"
		weakerRate = cardioRate
	}

	return Recommendation{
		Type:       RecommendationBalance,
		Priority:   PriorityMedium,
		Message:    fmt.Sprintf("Shore up your %s to improve the balance of your week", weakerLabel),
		Suggestion: fmt.Sprintf("Your %s achievement rate is currently %d%%", weakerLabel, weakerRate),
		Tips: []string{
			fmt.Sprintf("Block out time for %s in your weekly schedule", weakerLabel),
		},
	}, true
}
