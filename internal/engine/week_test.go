package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeekBoundsMondayReference(t *testing.T) {
	monday := time.Date(2025, time.September, 22, 0, 0, 0, 0, time.UTC)

	bounds := WeekBounds(monday)

	require.Equal(t, "2025-09-22", bounds.StartLabel)
	require.Equal(t, "2025-09-28", bounds.EndLabel)
	require.Equal(t, time.Monday, bounds.Start.Weekday())
	require.Equal(t, time.Sunday, bounds.End.Weekday())
}

func TestWeekBoundsSundayStaysInSameWeek(t *testing.T) {
	// A Sunday 23:59 reference belongs to the week that started the
	// preceding Monday, not the next one.
	sundayNight := time.Date(2025, time.September, 28, 23, 59, 0, 0, time.UTC)

	bounds := WeekBounds(sundayNight)

	require.Equal(t, "2025-09-22", bounds.StartLabel)
	require.Equal(t, "2025-09-28", bounds.EndLabel)
}

func TestWeekBoundsIdenticalAcrossWeek(t *testing.T) {
	monday := time.Date(2025, time.September, 22, 8, 0, 0, 0, time.UTC)
	thursday := time.Date(2025, time.September, 25, 12, 30, 0, 0, time.UTC)
	sunday := time.Date(2025, time.September, 28, 6, 0, 0, 0, time.UTC)

	ref := WeekBounds(monday)
	require.Equal(t, ref.StartLabel, WeekBounds(thursday).StartLabel)
	require.Equal(t, ref.EndLabel, WeekBounds(thursday).EndLabel)
	require.Equal(t, ref.StartLabel, WeekBounds(sunday).StartLabel)
	require.Equal(t, ref.EndLabel, WeekBounds(sunday).EndLabel)
}

func TestFilterToWeekInclusiveBoundaries(t *testing.T) {
	target := time.Date(2025, time.September, 24, 0, 0, 0, 0, time.UTC)

	workouts := []*Record{
		{Date: "2025-09-21", ExerciseType: ExerciseCardio}, // Sunday before
		{Date: "2025-09-22", ExerciseType: ExerciseCardio}, // boundary Monday
		{Date: "2025-09-25", ExerciseType: ExerciseStrength},
		{Date: "2025-09-28", ExerciseType: ExerciseCardio}, // boundary Sunday
		{Date: "2025-09-29", ExerciseType: ExerciseCardio}, // Monday after
	}

	weekly := FilterToWeek(workouts, target)

	require.Len(t, weekly, 3)
	require.Equal(t, "2025-09-22", weekly[0].Date)
	require.Equal(t, "2025-09-25", weekly[1].Date)
	require.Equal(t, "2025-09-28", weekly[2].Date)
}

func TestFilterToWeekDropsBadDatesAndNils(t *testing.T) {
	target := time.Date(2025, time.September, 24, 0, 0, 0, 0, time.UTC)

	workouts := []*Record{
		nil,
		{Date: "", ExerciseType: ExerciseCardio},
		{Date: "not-a-date", ExerciseType: ExerciseCardio},
		{Date: "2025-09-23T18:30:00Z", ExerciseType: ExerciseCardio},
	}

	weekly := FilterToWeek(workouts, target)

	require.Len(t, weekly, 1)
	require.Equal(t, "2025-09-23T18:30:00Z", weekly[0].Date)
}

func TestRemainingDaysInWeek(t *testing.T) {
	tests := []struct {
		name string
		day  time.Time
		want int
	}{
		{"monday", time.Date(2025, time.September, 22, 10, 0, 0, 0, time.UTC), 7},
		{"thursday", time.Date(2025, time.September, 25, 10, 0, 0, 0, time.UTC), 4},
		{"sunday", time.Date(2025, time.September, 28, 10, 0, 0, 0, time.UTC), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, RemainingDaysInWeek(tc.day))
		})
	}
}

func TestWeekInfoFor(t *testing.T) {
	wednesday := time.Date(2025, time.September, 24, 0, 0, 0, 0, time.UTC)

	info := WeekInfoFor(wednesday)

	require.Equal(t, 2025, info.Year)
	require.Equal(t, 39, info.ISOWeek)
	require.Equal(t, 9, info.Month)
	require.Equal(t, 3, info.Weekday)
	require.Equal(t, "2025-09-24", info.Day)
}

func TestDaysDifference(t *testing.T) {
	a := time.Date(2025, time.September, 22, 23, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.September, 28, 1, 0, 0, 0, time.UTC)

	require.Equal(t, 6, DaysDifference(a, b))
	require.Equal(t, 6, DaysDifference(b, a))
	require.Equal(t, 0, DaysDifference(a, a))
}
