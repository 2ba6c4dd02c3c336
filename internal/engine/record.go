// Package engine computes weekly health-insight scores from raw workout
// records, benchmarked against WHO physical-activity targets. All
// computation is pure and allocation-local, so an Engine is safe for
// concurrent use.
package engine

import (
	"bytes"
	"strconv"
	"time"
)

// ExerciseType classifies a workout record. Values other than cardio and
// strength exclude the record from every calculator.
type ExerciseType string

const (
	ExerciseCardio   ExerciseType = "cardio"
	ExerciseStrength ExerciseType = "strength"
)

// FlexInt is an integer that tolerates the loose typing of upstream payloads:
// JSON numbers, numeric strings, null, and garbage all decode without error.
// Anything non-numeric becomes zero.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler. It never returns an error;
// data-quality problems are resolved to zero at this boundary so they cannot
// abort score computation downstream.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = FlexInt(n)
		return nil
	}
	if fl, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt(fl)
		return nil
	}
	*f = 0
	return nil
}

// Int returns the value clamped to be non-negative. Negative inputs must
// never subtract from weekly totals.
func (f FlexInt) Int() int {
	if f < 0 {
		return 0
	}
	return int(f)
}

// Record is one raw workout as delivered by the persistence collaborator.
// Every field is optional; records themselves may be nil in a batch and are
// silently skipped.
type Record struct {
	Date         string       `json:"date"`
	ExerciseType ExerciseType `json:"exerciseType"`
	Duration     FlexInt      `json:"duration"` // seconds, cardio only
	Sets         FlexInt      `json:"sets"`     // strength only
	Reps         FlexInt      `json:"reps"`     // strength only
}

const dayLayout = "2006-01-02"

var dateLayouts = []string{
	dayLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseDay normalises a record date (date-only or ISO datetime) to a
// YYYY-MM-DD key plus its midnight UTC instant. ok is false for empty or
// unparseable dates; such records are excluded, never errors.
func parseDay(raw string) (key string, day time.Time, ok bool) {
	if raw == "" {
		return "", time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		key = t.Format(dayLayout)
		day = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return key, day, true
	}
	return "", time.Time{}, false
}
