package utils

import (
	"strings"
	"time"
)

type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// ParsePeriod never fails: empty or unknown tokens mean PeriodAll.
func ParsePeriod(raw string) Period {
	switch p := Period(strings.ToLower(strings.TrimSpace(raw))); p {
	case PeriodToday, PeriodWeek, PeriodMonth:
		return p
	default:
		return PeriodAll
	}
}

// Window is the half-open interval [Start, End). An unbounded window matches everything.
type Window struct {
	Start   time.Time
	End     time.Time
	Bounded bool
}

func (w Window) Contains(t time.Time) bool {
	if !w.Bounded {
		return true
	}
	return !t.Before(w.Start) && t.Before(w.End)
}

// ResolvePeriod maps p to a concrete window anchored at now, in now's location.
// Weeks are ISO weeks starting Monday.
func ResolvePeriod(p Period, now time.Time) Window {
	midnight := StartOfDay(now)

	switch p {
	case PeriodToday:
		return Window{Start: midnight, End: midnight.AddDate(0, 0, 1), Bounded: true}
	case PeriodWeek:
		offset := (int(now.Weekday()) + 6) % 7
		start := midnight.AddDate(0, 0, -offset)
		return Window{Start: start, End: start.AddDate(0, 0, 7), Bounded: true}
	case PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Window{Start: start, End: start.AddDate(0, 1, 0), Bounded: true}
	default:
		return Window{}
	}
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
