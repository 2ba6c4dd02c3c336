// Package postgres provides pgx-backed persistence for workouts and insight
// snapshots.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/insight/internal/domain"
	"example.com/insight/internal/engine"
)

// Repository provides Postgres-backed persistence for the insight service.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// WorkoutsForRange returns the user's workouts with dates inside
// [fromDate, toDate] inclusive, shaped for the scoring engine. Numeric
// columns are nullable; NULL reads as zero, matching the engine's coercion
// rules.
func (r *Repository) WorkoutsForRange(ctx context.Context, tenantID, userID, fromDate, toDate string) ([]*engine.Record, error) {
	const query = `SELECT workout_date, exercise_type, COALESCE(duration_sec, 0), COALESCE(sets, 0), COALESCE(reps, 0)
        FROM workouts
        WHERE tenant_id=$1 AND user_id=$2 AND workout_date BETWEEN $3 AND $4
        ORDER BY workout_date`

	rows, err := r.pool.Query(ctx, query, tenantID, userID, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*engine.Record
	for rows.Next() {
		var (
			date                 time.Time
			exerciseType         string
			duration, sets, reps int64
		)
		if err := rows.Scan(&date, &exerciseType, &duration, &sets, &reps); err != nil {
			return nil, err
		}
		out = append(out, &engine.Record{
			Date:         date.Format("2006-01-02"),
			ExerciseType: engine.ExerciseType(exerciseType),
			Duration:     engine.FlexInt(duration),
			Sets:         engine.FlexInt(sets),
			Reps:         engine.FlexInt(reps),
		})
	}
	return out, rows.Err()
}

// GetSnapshot fetches the insight snapshot for (user, date). A missing row
// returns (nil, nil); the service layer decides whether to compute.
func (r *Repository) GetSnapshot(ctx context.Context, tenantID, userID, date string) (*domain.InsightSnapshot, error) {
	const query = `SELECT snapshot_id, tenant_id, user_id, snapshot_date, total_score, cardio_score, strength_score,
            who_cardio_achieved, who_strength_achieved, payload, engine_version, created_at, updated_at
        FROM insights WHERE tenant_id=$1 AND user_id=$2 AND snapshot_date=$3`

	row := r.pool.QueryRow(ctx, query, tenantID, userID, date)
	snapshot, err := scanSnapshot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return snapshot, nil
}

// UpsertSnapshot stores the snapshot, replacing any existing row for the
// same user and date so reruns of a newer engine revision win.
func (r *Repository) UpsertSnapshot(ctx context.Context, snapshot domain.InsightSnapshot) error {
	payload, err := json.Marshal(snapshot.Insight)
	if err != nil {
		return err
	}

	const stmt = `INSERT INTO insights (snapshot_id, tenant_id, user_id, snapshot_date, total_score, cardio_score,
            strength_score, who_cardio_achieved, who_strength_achieved, payload, engine_version, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        ON CONFLICT (tenant_id, user_id, snapshot_date) DO UPDATE SET
            total_score=EXCLUDED.total_score,
            cardio_score=EXCLUDED.cardio_score,
            strength_score=EXCLUDED.strength_score,
            who_cardio_achieved=EXCLUDED.who_cardio_achieved,
            who_strength_achieved=EXCLUDED.who_strength_achieved,
            payload=EXCLUDED.payload,
            engine_version=EXCLUDED.engine_version,
            updated_at=EXCLUDED.updated_at`

	_, err = r.pool.Exec(ctx, stmt,
		snapshot.ID,
		snapshot.TenantID,
		snapshot.UserID,
		snapshot.Date,
		snapshot.TotalScore,
		snapshot.CardioScore,
		snapshot.StrengthScore,
		snapshot.WHOCardioAchieved,
		snapshot.WHOStrengthAchieved,
		payload,
		snapshot.EngineVersion,
		snapshot.CreatedAt,
		snapshot.UpdatedAt,
	)
	return err
}

// ListSnapshots pages through stored snapshots newest first.
func (r *Repository) ListSnapshots(ctx context.Context, tenantID, userID string, cursor *domain.Cursor, limit int) ([]domain.InsightSnapshot, *domain.Cursor, error) {
	if limit <= 0 {
		limit = 20
	}

	const base = `SELECT snapshot_id, tenant_id, user_id, snapshot_date, total_score, cardio_score, strength_score,
            who_cardio_achieved, who_strength_achieved, payload, engine_version, created_at, updated_at
        FROM insights WHERE tenant_id=$1 AND user_id=$2`

	var (
		rows pgx.Rows
		err  error
	)
	if cursor != nil {
		rows, err = r.pool.Query(ctx, base+` AND (snapshot_date, snapshot_id) < ($3, $4)
            ORDER BY snapshot_date DESC, snapshot_id DESC LIMIT $5`,
			tenantID, userID, cursor.Date, cursor.ID, limit+1)
	} else {
		rows, err = r.pool.Query(ctx, base+` ORDER BY snapshot_date DESC, snapshot_id DESC LIMIT $3`,
			tenantID, userID, limit+1)
	}
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var out []domain.InsightSnapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, *snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	var next *domain.Cursor
	if len(out) > limit {
		out = out[:limit]
		last := out[len(out)-1]
		next = &domain.Cursor{Date: last.Date, ID: last.ID}
	}
	return out, next, nil
}

// InsertImportedWorkout stores a workout delivered by the import pipeline,
// using the external ID for idempotent replays.
func (r *Repository) InsertImportedWorkout(ctx context.Context, tenantID, userID, externalID, source, exerciseType, date string, durationSec, sets, reps int) error {
	const stmt = `INSERT INTO workouts (workout_id, tenant_id, user_id, external_id, source, exercise_type, workout_date, duration_sec, sets, reps, created_at)
        VALUES (gen_random_uuid(),$1,$2,$3,$4,$5,$6,$7,$8,$9,now())
        ON CONFLICT (tenant_id, external_id) WHERE external_id IS NOT NULL DO NOTHING`

	_, err := r.pool.Exec(ctx, stmt, tenantID, userID, externalID, source, exerciseType, date, durationSec, sets, reps)
	return err
}

// LogImportedEvent appends one consumed import event to the audit log,
// keeping topic/partition/offset for replay forensics.
func (r *Repository) LogImportedEvent(ctx context.Context, eventType, tenantID, topic string, partition int, offset int64, payload []byte, receivedAt time.Time) error {
	const stmt = `INSERT INTO workout_import_log (event_type, tenant_id, topic, partition, record_offset, payload, received_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)`

	_, err := r.pool.Exec(ctx, stmt, eventType, tenantID, topic, partition, offset, payload, receivedAt)
	return err
}

func scanSnapshot(row pgx.Row) (*domain.InsightSnapshot, error) {
	var (
		snapshot domain.InsightSnapshot
		date     time.Time
		payload  []byte
	)
	if err := row.Scan(
		&snapshot.ID,
		&snapshot.TenantID,
		&snapshot.UserID,
		&date,
		&snapshot.TotalScore,
		&snapshot.CardioScore,
		&snapshot.StrengthScore,
		&snapshot.WHOCardioAchieved,
		&snapshot.WHOStrengthAchieved,
		&payload,
		&snapshot.EngineVersion,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	); err != nil {
		return nil, err
	}
	snapshot.Date = date.Format("2006-01-02")
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &snapshot.Insight); err != nil {
			return nil, err
		}
	}
	return &snapshot, nil
}
