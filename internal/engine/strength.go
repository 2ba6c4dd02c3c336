package engine

import "fmt"

// SetRepCount accumulates sets and reps for one training day.
type SetRepCount struct {
	Sets int `json:"sets"`
	Reps int `json:"reps"`
}

// StrengthDetails breaks down the weekly strength aggregate.
type StrengthDetails struct {
	WeeklyDays int `json:"weeklyDays"`
	TargetDays int `json:"targetDays"`
	// AchievementRate is uncapped and may exceed 100, unlike Score.
	AchievementRate int                    `json:"achievementRate"`
	TotalSets       int                    `json:"totalSets"`
	TotalReps       int                    `json:"totalReps"`
	ByDay           map[string]SetRepCount `json:"byDay"`
	WorkoutCount    int                    `json:"workoutCount"`
}

// StrengthMetric is the scored weekly strength aggregate.
type StrengthMetric struct {
	Score       int             `json:"score"`
	WHOAchieved bool            `json:"whoAchieved"`
	Details     StrengthDetails `json:"details"`
}

// StrengthMetrics counts distinct strength training days and total set/rep
// volume, scoring days against the weekly-days target. Nil entries and
// non-strength records are skipped; missing or negative counts are zero.
func (e *Engine) StrengthMetrics(workouts []*Record) StrengthMetric {
	trainingDays := make(map[string]struct{})
	byDay := make(map[string]SetRepCount)
	totalSets, totalReps, count := 0, 0, 0

	for _, w := range workouts {
		if w == nil || w.ExerciseType != ExerciseStrength {
			continue
		}
		count++
		sets, reps := w.Sets.Int(), w.Reps.Int()
		totalSets += sets
		totalReps += reps
		if key, _, ok := parseDay(w.Date); ok {
			trainingDays[key] = struct{}{}
			acc := byDay[key]
			acc.Sets += sets
			acc.Reps += reps
			byDay[key] = acc
		}
	}

	weeklyDays := len(trainingDays)
	target := e.standards.StrengthWeeklyDays
	rate := ratePercent(weeklyDays, target)

	return StrengthMetric{
		Score:       capScore(rate),
		WHOAchieved: weeklyDays >= target,
		Details: StrengthDetails{
			WeeklyDays:      weeklyDays,
			TargetDays:      target,
			AchievementRate: rate,
			TotalSets:       totalSets,
			TotalReps:       totalReps,
			ByDay:           byDay,
			WorkoutCount:    count,
		},
	}
}

// StrengthStatistics carries volume stats derived from a metric.
type StrengthStatistics struct {
	AvgSetsPerDay     int    `json:"avgSetsPerDay"`
	AvgRepsPerDay     int    `json:"avgRepsPerDay"`
	AvgRepsPerSet     int    `json:"avgRepsPerSet"`
	TrainingFrequency string `json:"trainingFrequency"`
}

// Statistics summarises per-day training volume.
func (m StrengthMetric) Statistics() StrengthStatistics {
	stats := StrengthStatistics{
		TrainingFrequency: fmt.Sprintf("%d/7 days", m.Details.WeeklyDays),
	}
	if m.Details.WeeklyDays > 0 {
		stats.AvgSetsPerDay = roundHalfUp(float64(m.Details.TotalSets) / float64(m.Details.WeeklyDays))
		stats.AvgRepsPerDay = roundHalfUp(float64(m.Details.TotalReps) / float64(m.Details.WeeklyDays))
	}
	if m.Details.TotalSets > 0 {
		stats.AvgRepsPerSet = roundHalfUp(float64(m.Details.TotalReps) / float64(m.Details.TotalSets))
	}
	return stats
}
