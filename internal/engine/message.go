package engine

// MessageTier is the five-step narrative scale used for health messages.
// Its cut points (90/80/60/40) deliberately differ from ScoreLevel's.
type MessageTier string

const (
	TierExcellent MessageTier = "excellent"
	TierVeryGood  MessageTier = "veryGood"
	TierGood      MessageTier = "good"
	TierFair      MessageTier = "fair"
	TierStart     MessageTier = "start"
)

var healthMessages = map[MessageTier]string{
	TierExcellent: "Excellent! You met both WHO recommendations this week. Keep the habit going!",
	TierVeryGood:  "Great exercise habits! You are just short of full WHO compliance.",
	TierGood:      "A solid routine is taking shape. Aim for two to three sessions a week.",
	TierFair:      "You are getting moving! Build up frequency and duration a little at a time.",
	TierStart:     "Start small. How about one workout this week?",
}

const (
	encouragementCardioClose = "Your aerobic goal is almost within reach!"
	encouragementOneMoreDay  = "One more strength day and you hit the target!"
	encouragementFirstStep   = "You took the first step this week!"
	encouragementConsistency = "Consistency pays off. Great pace!"
)

// GenerateMessage maps a total score and achievement flags to the fixed tier
// message. The excellent message is reserved for joint achievement; by score
// alone the ladder tops out at veryGood.
func GenerateMessage(total int, achievements Achievements) string {
	switch {
	case achievements.Both:
		return healthMessages[TierExcellent]
	case total >= 80:
		return healthMessages[TierVeryGood]
	case total >= 60:
		return healthMessages[TierGood]
	case total >= 40:
		return healthMessages[TierFair]
	default:
		return healthMessages[TierStart]
	}
}

// DetailedMessage couples the main tier message with contextual
// encouragement notes. Main is never empty for any valid input.
type DetailedMessage struct {
	Main       string      `json:"main"`
	Additional []string    `json:"additional"`
	Level      MessageTier `json:"level"`
}

// GenerateDetailedMessage appends every qualifying encouragement to the main
// message: a near-miss on the cardio target, exactly one strength day so
// far, a first workout of the week, and five or more distinct training days.
func GenerateDetailedMessage(total int, achievements Achievements, cardio CardioMetric, strength StrengthMetric, summary WeekSummary) DetailedMessage {
	additional := make([]string, 0, 4)

	if cardio.Details.AchievementRate >= 80 && !achievements.Cardio {
		additional = append(additional, encouragementCardioClose)
	}
	if strength.Details.WeeklyDays == 1 {
		additional = append(additional, encouragementOneMoreDay)
	}
	if summary.TotalWorkouts == 1 {
		additional = append(additional, encouragementFirstStep)
	}
	if summary.TrainingDays >= 5 {
		additional = append(additional, encouragementConsistency)
	}

	return DetailedMessage{
		Main:       GenerateMessage(total, achievements),
		Additional: additional,
		Level:      messageTier(total),
	}
}

func messageTier(total int) MessageTier {
	switch {
	case total >= 90:
		return TierExcellent
	case total >= 80:
		return TierVeryGood
	case total >= 60:
		return TierGood
	case total >= 40:
		return TierFair
	default:
		return TierStart
	}
}
