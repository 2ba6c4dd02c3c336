package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/insight/internal/events"
)

func TestWorkoutImportHandlerStoresWorkout(t *testing.T) {
	store := &stubStore{}
	handler := NewWorkoutImportHandler(store)

	payload, err := json.Marshal(events.WorkoutImported{
		TenantID:     "tenant-1",
		UserID:       "user-1",
		ExternalID:   "strava-42",
		Source:       "strava",
		ExerciseType: "cardio",
		Date:         "2025-09-22",
		DurationSec:  4500,
	})
	require.NoError(t, err)

	err = handler.Handle(context.Background(), Message{
		Topic:     "workout_import_events",
		Partition: 3,
		Offset:    77,
		Timestamp: time.Date(2025, time.September, 24, 9, 0, 0, 0, time.UTC),
		EventType: events.TypeWorkoutImported,
		TenantID:  "tenant-1",
		Payload:   payload,
	})
	require.NoError(t, err)

	require.Len(t, store.inserts, 1)
	got := store.inserts[0]
	require.Equal(t, "tenant-1", got.tenantID)
	require.Equal(t, "user-1", got.userID)
	require.Equal(t, "strava-42", got.externalID)
	require.Equal(t, "cardio", got.exerciseType)
	require.Equal(t, 4500, got.durationSec)

	require.Len(t, store.logged, 1)
	logged := store.logged[0]
	require.Equal(t, events.TypeWorkoutImported, logged.eventType)
	require.Equal(t, "workout_import_events", logged.topic)
	require.Equal(t, 3, logged.partition)
	require.Equal(t, int64(77), logged.offset)
}

func TestWorkoutImportHandlerPropagatesLogFailure(t *testing.T) {
	store := &stubStore{logErr: errors.New("log insert failed")}
	handler := NewWorkoutImportHandler(store)

	payload, err := json.Marshal(events.WorkoutImported{
		TenantID:   "tenant-1",
		UserID:     "user-1",
		ExternalID: "strava-43",
		Date:       "2025-09-23",
	})
	require.NoError(t, err)

	err = handler.Handle(context.Background(), Message{
		Topic:     "workout_import_events",
		EventType: events.TypeWorkoutImported,
		Payload:   payload,
	})
	require.Error(t, err)
	// The workout row itself is idempotent, so redelivery retries the log.
	require.Len(t, store.inserts, 1)
	require.Empty(t, store.logged)
}

func TestWorkoutImportHandlerSkipsOtherEventTypes(t *testing.T) {
	store := &stubStore{}
	handler := NewWorkoutImportHandler(store)

	err := handler.Handle(context.Background(), Message{
		EventType: events.TypeInsightCalculated,
		Payload:   json.RawMessage(`{}`),
	})
	require.NoError(t, err)
	require.Empty(t, store.inserts)
}

func TestWorkoutImportHandlerRejectsIncompleteEvents(t *testing.T) {
	store := &stubStore{}
	handler := NewWorkoutImportHandler(store)

	err := handler.Handle(context.Background(), Message{
		EventType: events.TypeWorkoutImported,
		Payload:   json.RawMessage(`{"tenant_id":"tenant-1","user_id":"user-1"}`),
	})
	require.Error(t, err)
	require.Empty(t, store.inserts)
}

type storedWorkout struct {
	tenantID     string
	userID       string
	externalID   string
	source       string
	exerciseType string
	date         string
	durationSec  int
	sets         int
	reps         int
}

type loggedEvent struct {
	eventType string
	tenantID  string
	topic     string
	partition int
	offset    int64
}

type stubStore struct {
	inserts []storedWorkout
	logged  []loggedEvent
	err     error
	logErr  error
}

func (s *stubStore) InsertImportedWorkout(_ context.Context, tenantID, userID, externalID, source, exerciseType, date string, durationSec, sets, reps int) error {
	if s.err != nil {
		return s.err
	}
	s.inserts = append(s.inserts, storedWorkout{
		tenantID:     tenantID,
		userID:       userID,
		externalID:   externalID,
		source:       source,
		exerciseType: exerciseType,
		date:         date,
		durationSec:  durationSec,
		sets:         sets,
		reps:         reps,
	})
	return nil
}

func (s *stubStore) LogImportedEvent(_ context.Context, eventType, tenantID, topic string, partition int, offset int64, _ []byte, _ time.Time) error {
	if s.logErr != nil {
		return s.logErr
	}
	s.logged = append(s.logged, loggedEvent{
		eventType: eventType,
		tenantID:  tenantID,
		topic:     topic,
		partition: partition,
		offset:    offset,
	})
	return nil
}
