// Package events defines cross-service event payloads and the Kafka
// producer used to publish them.
package events

import "time"

// WorkoutImported is emitted by third-party import gateways (for example a
// Strava sync worker) when an external activity has been normalised into a
// workout record.
type WorkoutImported struct {
	TenantID     string `json:"tenant_id"`
	UserID       string `json:"user_id"`
	ExternalID   string `json:"external_id"`
	Source       string `json:"source"`
	ExerciseType string `json:"exercise_type"`
	Date         string `json:"date"`
	DurationSec  int    `json:"duration_sec"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
}

// InsightCalculated is emitted after a weekly insight snapshot has been
// computed and persisted, so downstream consumers can react without polling.
type InsightCalculated struct {
	TenantID      string    `json:"tenant_id"`
	UserID        string    `json:"user_id"`
	Date          string    `json:"date"`
	TotalScore    int       `json:"total_score"`
	CardioScore   int       `json:"cardio_score"`
	StrengthScore int       `json:"strength_score"`
	BothAchieved  bool      `json:"both_achieved"`
	EngineVersion string    `json:"engine_version"`
	CalculatedAt  time.Time `json:"calculated_at"`
}

// Event type names carried in the event_type message header.
const (
	TypeWorkoutImported   = "workout.imported"
	TypeInsightCalculated = "insight.calculated"
)
