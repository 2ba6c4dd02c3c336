package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateMessageBothAchievedWinsRegardlessOfScore(t *testing.T) {
	msg := GenerateMessage(70, Achievements{Cardio: true, Strength: true, Both: true})

	require.Equal(t, healthMessages[TierExcellent], msg)
}

func TestGenerateMessageScoreLadder(t *testing.T) {
	tests := []struct {
		score int
		want  MessageTier
	}{
		{95, TierVeryGood}, // excellent is reserved for joint achievement
		{80, TierVeryGood},
		{79, TierGood},
		{60, TierGood},
		{59, TierFair},
		{40, TierFair},
		{39, TierStart},
		{0, TierStart},
	}

	for _, tc := range tests {
		msg := GenerateMessage(tc.score, Achievements{})
		require.Equal(t, healthMessages[tc.want], msg, "score %d", tc.score)
	}
}

func TestGenerateMessageNeverEmpty(t *testing.T) {
	for score := 0; score <= 100; score += 10 {
		require.NotEmpty(t, GenerateMessage(score, Achievements{}))
	}
}

func TestGenerateDetailedMessageEncouragements(t *testing.T) {
	cardio := CardioMetric{
		Score:       85,
		WHOAchieved: false,
		Details:     CardioDetails{AchievementRate: 85},
	}
	strength := StrengthMetric{
		Score:   50,
		Details: StrengthDetails{WeeklyDays: 1},
	}
	summary := WeekSummary{TotalWorkouts: 1, TrainingDays: 1}

	detailed := GenerateDetailedMessage(65, Achievements{}, cardio, strength, summary)

	// All qualifying notes are included in listed order.
	require.Equal(t, []string{
		encouragementCardioClose,
		encouragementOneMoreDay,
		encouragementFirstStep,
	}, detailed.Additional)
	require.Equal(t, TierGood, detailed.Level)
	require.NotEmpty(t, detailed.Main)
}

func TestGenerateDetailedMessageConsistencyPraise(t *testing.T) {
	detailed := GenerateDetailedMessage(
		100,
		Achievements{Cardio: true, Strength: true, Both: true},
		CardioMetric{WHOAchieved: true, Details: CardioDetails{AchievementRate: 120}},
		StrengthMetric{WHOAchieved: true, Details: StrengthDetails{WeeklyDays: 5}},
		WeekSummary{TotalWorkouts: 9, TrainingDays: 6},
	)

	require.Equal(t, []string{encouragementConsistency}, detailed.Additional)
	require.Equal(t, TierExcellent, detailed.Level)
	require.Equal(t, healthMessages[TierExcellent], detailed.Main)
}

func TestGenerateDetailedMessageNoNotes(t *testing.T) {
	detailed := GenerateDetailedMessage(30, Achievements{}, CardioMetric{}, StrengthMetric{}, WeekSummary{})

	require.Empty(t, detailed.Additional)
	require.Equal(t, TierStart, detailed.Level)
}

func TestMessageLevelUsesFinerScaleThanScoreLevel(t *testing.T) {
	// 80 is "good" on the coarse classification scale but "veryGood" on the
	// narrative scale; the two tiering functions are intentionally distinct.
	require.Equal(t, LevelGood, ScoreLevel(80))
	require.Equal(t, TierVeryGood, messageTier(80))
}
