package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"example.com/insight/internal/events"
)

// WorkoutStore persists imported workouts keyed by external ID and keeps an
// audit trail of consumed events.
type WorkoutStore interface {
	InsertImportedWorkout(ctx context.Context, tenantID, userID, externalID, source, exerciseType, date string, durationSec, sets, reps int) error
	LogImportedEvent(ctx context.Context, eventType, tenantID, topic string, partition int, offset int64, payload []byte, receivedAt time.Time) error
}

// WorkoutImportHandler stores workout.imported events so the insight engine
// can pick them up on the next weekly computation.
type WorkoutImportHandler struct {
	store WorkoutStore
}

// NewWorkoutImportHandler constructs a handler backed by the provided store.
func NewWorkoutImportHandler(store WorkoutStore) *WorkoutImportHandler {
	return &WorkoutImportHandler{store: store}
}

// Handle decodes and upserts one imported workout. Unknown event types are
// skipped without error so mixed-topic deployments stay quiet.
func (h *WorkoutImportHandler) Handle(ctx context.Context, msg Message) error {
	if msg.EventType != events.TypeWorkoutImported {
		return nil
	}

	var event events.WorkoutImported
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return fmt.Errorf("unmarshal workout.imported: %w", err)
	}

	if err := validateImport(event); err != nil {
		return err
	}

	if err := h.store.InsertImportedWorkout(ctx,
		event.TenantID,
		event.UserID,
		event.ExternalID,
		event.Source,
		event.ExerciseType,
		event.Date,
		event.DurationSec,
		event.Sets,
		event.Reps,
	); err != nil {
		return err
	}

	receivedAt := msg.Timestamp
	if receivedAt.IsZero() {
		receivedAt = time.Now().UTC()
	}
	return h.store.LogImportedEvent(ctx, msg.EventType, event.TenantID, msg.Topic, msg.Partition, msg.Offset, msg.Payload, receivedAt)
}

func validateImport(event events.WorkoutImported) error {
	if strings.TrimSpace(event.TenantID) == "" {
		return errors.New("workout.imported missing tenant_id")
	}
	if strings.TrimSpace(event.UserID) == "" {
		return errors.New("workout.imported missing user_id")
	}
	if strings.TrimSpace(event.ExternalID) == "" {
		return errors.New("workout.imported missing external_id")
	}
	if strings.TrimSpace(event.Date) == "" {
		return errors.New("workout.imported missing date")
	}
	return nil
}
