package engine

import "time"

// WeekWindow describes one ISO week: Monday 00:00:00 through Sunday 23:59:59
// inclusive. Labels carry the YYYY-MM-DD day boundaries for queries and
// display.
type WeekWindow struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	StartLabel string    `json:"startLabel"`
	EndLabel   string    `json:"endLabel"`
}

// WeekBounds returns the ISO week containing ref. A Sunday reference belongs
// to the week that started the preceding Monday, never the next one.
func WeekBounds(ref time.Time) WeekWindow {
	monday := ref.AddDate(0, 0, -isoWeekdayIndex(ref))
	start := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 0, 6).Add(24*time.Hour - time.Second)
	return WeekWindow{
		Start:      start,
		End:        end,
		StartLabel: start.Format(dayLayout),
		EndLabel:   end.Format(dayLayout),
	}
}

// FilterToWeek keeps only the records whose date falls within the ISO week
// containing ref, boundaries inclusive. Nil records and records with a
// missing or unparseable date are dropped.
func FilterToWeek(workouts []*Record, ref time.Time) []*Record {
	bounds := WeekBounds(ref)
	first := bounds.Start
	last := first.AddDate(0, 0, 6)

	out := make([]*Record, 0, len(workouts))
	for _, w := range workouts {
		if w == nil {
			continue
		}
		_, day, ok := parseDay(w.Date)
		if !ok {
			continue
		}
		// Compare at day granularity so a datetime-stamped record on the
		// boundary Sunday still lands inside the week.
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, first.Location())
		if day.Before(first) || day.After(last) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// RemainingDaysInWeek reports how many days of now's ISO week are left,
// counting today as remaining. Monday yields 7, Sunday yields 1.
func RemainingDaysInWeek(now time.Time) int {
	return 7 - isoWeekdayIndex(now)
}

// WeekInfo summarises where ref sits in the ISO calendar.
type WeekInfo struct {
	ISOWeek int    `json:"isoWeek"`
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Weekday int    `json:"weekday"` // 1=Monday .. 7=Sunday
	Day     string `json:"day"`
}

// WeekInfoFor returns calendar context for ref.
func WeekInfoFor(ref time.Time) WeekInfo {
	year, week := ref.ISOWeek()
	return WeekInfo{
		ISOWeek: week,
		Year:    year,
		Month:   int(ref.Month()),
		Weekday: isoWeekdayIndex(ref) + 1,
		Day:     ref.Format(dayLayout),
	}
}

// DaysDifference returns the absolute whole-day distance between two dates.
func DaysDifference(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	diff := int(da.Sub(db) / (24 * time.Hour))
	if diff < 0 {
		diff = -diff
	}
	return diff
}

// isoWeekdayIndex maps Monday..Sunday to 0..6.
func isoWeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
