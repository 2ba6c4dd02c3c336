// Package domain defines the business logic for the insight service: weekly
// score computation, per-user-per-day snapshot caching, and history.
package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"example.com/insight/internal/engine"
	"example.com/insight/internal/events"
	"example.com/insight/internal/observability"
)

// ErrSnapshotNotFound is returned when a stored insight cannot be located.
var ErrSnapshotNotFound = errors.New("insight snapshot not found")

const dayLayout = "2006-01-02"

// InsightSnapshot is one persisted weekly insight: a single row per user per
// day, stamped with the engine revision that produced it.
type InsightSnapshot struct {
	ID                  string
	TenantID            string
	UserID              string
	Date                string // YYYY-MM-DD
	TotalScore          int
	CardioScore         int
	StrengthScore       int
	WHOCardioAchieved   bool
	WHOStrengthAchieved bool
	Insight             engine.WeeklyInsight
	EngineVersion       string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Cursor models the pagination token for snapshot history.
type Cursor struct {
	Date string
	ID   string
}

// Repository captures persistence operations.
type Repository interface {
	WorkoutsForRange(ctx context.Context, tenantID, userID, fromDate, toDate string) ([]*engine.Record, error)
	GetSnapshot(ctx context.Context, tenantID, userID, date string) (*InsightSnapshot, error)
	UpsertSnapshot(ctx context.Context, snapshot InsightSnapshot) error
	ListSnapshots(ctx context.Context, tenantID, userID string, cursor *Cursor, limit int) ([]InsightSnapshot, *Cursor, error)
}

// Service orchestrates insight workflows.
type Service struct {
	repo      Repository
	engine    *engine.Engine
	publisher events.Publisher
	now       func() time.Time
}

// Option configures optional behaviour for the Service.
type Option func(*Service)

// WithClock overrides the wall clock, letting tests pin the target week.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService constructs a Service. A nil publisher disables event emission.
func NewService(repo Repository, eng *engine.Engine, publisher events.Publisher, opts ...Option) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	s := &Service{
		repo:      repo,
		engine:    eng,
		publisher: publisher,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CurrentInsight returns today's insight snapshot for the user, computing and
// persisting one from the week's workouts when none is stored yet. The
// second return value reports whether a fresh computation happened.
func (s *Service) CurrentInsight(ctx context.Context, tenantID, userID string) (*InsightSnapshot, bool, error) {
	now := s.now().UTC()
	today := now.Format(dayLayout)

	if stored, err := s.repo.GetSnapshot(ctx, tenantID, userID, today); err != nil {
		return nil, false, err
	} else if stored != nil {
		observability.RecordSnapshotHit()
		return stored, false, nil
	}

	workouts, err := s.weekWorkouts(ctx, tenantID, userID, now)
	if err != nil {
		return nil, false, err
	}

	insight := s.engine.CalculateWeeklyInsight(workouts, now)
	observability.RecordSnapshotComputed()
	observability.RecordInsightComputed(string(insight.Level))

	snapshot := InsightSnapshot{
		ID:                  uuid.NewString(),
		TenantID:            tenantID,
		UserID:              userID,
		Date:                today,
		TotalScore:          insight.Scores.Total,
		CardioScore:         insight.Scores.Cardio,
		StrengthScore:       insight.Scores.Strength,
		WHOCardioAchieved:   insight.Achievements.Cardio,
		WHOStrengthAchieved: insight.Achievements.Strength,
		Insight:             insight,
		EngineVersion:       insight.EngineVersion,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.UpsertSnapshot(ctx, snapshot); err != nil {
		return nil, false, err
	}
	observability.RecordSnapshotPersisted(snapshot.UpdatedAt)

	if err := s.publisher.PublishInsightCalculated(ctx, events.InsightCalculated{
		TenantID:      tenantID,
		UserID:        userID,
		Date:          today,
		TotalScore:    insight.Scores.Total,
		CardioScore:   insight.Scores.Cardio,
		StrengthScore: insight.Scores.Strength,
		BothAchieved:  insight.Achievements.Both,
		EngineVersion: insight.EngineVersion,
		CalculatedAt:  insight.CalculatedAt,
	}); err != nil {
		return nil, false, fmt.Errorf("publish insight event: %w", err)
	}

	return &snapshot, true, nil
}

// QuickScore computes only the weekly scores, skipping message and
// recommendation assembly and persisting nothing. Intended for low-latency
// UI feedback.
func (s *Service) QuickScore(ctx context.Context, tenantID, userID string) (engine.ScoreSummary, error) {
	now := s.now().UTC()
	workouts, err := s.weekWorkouts(ctx, tenantID, userID, now)
	if err != nil {
		return engine.ScoreSummary{}, err
	}
	return s.engine.CalculateWeeklyScore(workouts, now), nil
}

// InsightHistory lists stored snapshots newest first with cursor pagination.
func (s *Service) InsightHistory(ctx context.Context, tenantID, userID string, cursor *Cursor, limit int) ([]InsightSnapshot, *Cursor, error) {
	return s.repo.ListSnapshots(ctx, tenantID, userID, cursor, limit)
}

func (s *Service) weekWorkouts(ctx context.Context, tenantID, userID string, now time.Time) ([]*engine.Record, error) {
	bounds := engine.WeekBounds(now)
	return s.repo.WorkoutsForRange(ctx, tenantID, userID, bounds.StartLabel, bounds.EndLabel)
}
