package engine

// CardioDetails breaks down the weekly aerobic aggregate.
type CardioDetails struct {
	WeeklyMinutes int `json:"weeklyMinutes"`
	TargetMinutes int `json:"targetMinutes"`
	// AchievementRate is uncapped and may exceed 100, unlike Score.
	AchievementRate int            `json:"achievementRate"`
	ByDay           map[string]int `json:"byDay"`
	WorkoutCount    int            `json:"workoutCount"`
}

// CardioMetric is the scored weekly aerobic aggregate.
type CardioMetric struct {
	Score       int           `json:"score"`
	WHOAchieved bool          `json:"whoAchieved"`
	Details     CardioDetails `json:"details"`
}

// CardioMetrics aggregates cardio-typed records into weekly minutes and a
// 0-100 score against the weekly-minutes target. Nil entries and non-cardio
// records are skipped; missing or negative durations count as zero.
func (e *Engine) CardioMetrics(workouts []*Record) CardioMetric {
	totalSeconds := 0
	byDay := make(map[string]int)
	count := 0

	for _, w := range workouts {
		if w == nil || w.ExerciseType != ExerciseCardio {
			continue
		}
		count++
		seconds := w.Duration.Int()
		totalSeconds += seconds
		if key, _, ok := parseDay(w.Date); ok {
			// Per-session floor division, so same-day sessions accumulate
			// whole minutes each.
			byDay[key] += seconds / 60
		}
	}

	totalMinutes := totalSeconds / 60
	target := e.standards.CardioWeeklyMinutes
	rate := ratePercent(totalMinutes, target)

	return CardioMetric{
		Score:       capScore(rate),
		WHOAchieved: totalMinutes >= target,
		Details: CardioDetails{
			WeeklyMinutes:   totalMinutes,
			TargetMinutes:   target,
			AchievementRate: rate,
			ByDay:           byDay,
			WorkoutCount:    count,
		},
	}
}

// CardioStatistics carries habit-tracking stats derived from a metric.
type CardioStatistics struct {
	DailyAverage  int `json:"dailyAverage"`
	DaysActive    int `json:"daysActive"`
	MaxDayMinutes int `json:"maxDayMinutes"`
	MinDayMinutes int `json:"minDayMinutes"`
}

// Statistics summarises per-day spread for habit visualisation.
func (m CardioMetric) Statistics() CardioStatistics {
	stats := CardioStatistics{DaysActive: len(m.Details.ByDay)}
	if stats.DaysActive == 0 {
		return stats
	}
	stats.DailyAverage = roundHalfUp(float64(m.Details.WeeklyMinutes) / float64(stats.DaysActive))
	first := true
	for _, minutes := range m.Details.ByDay {
		if first || minutes > stats.MaxDayMinutes {
			stats.MaxDayMinutes = minutes
		}
		if first || minutes < stats.MinDayMinutes {
			stats.MinDayMinutes = minutes
		}
		first = false
	}
	return stats
}
