package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		raw  string
		want Period
	}{
		{"today", PeriodToday},
		{" WEEK ", PeriodWeek},
		{"Month", PeriodMonth},
		{"all", PeriodAll},
		{"", PeriodAll},
		{"yesterday", PeriodAll},
		{"'; DROP TABLE invoices; --", PeriodAll},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePeriod(tt.raw), "raw=%q", tt.raw)
	}
}

func TestResolvePeriod(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// Wednesday
	now := time.Date(2026, time.October, 14, 15, 30, 0, 0, loc)

	today := ResolvePeriod(PeriodToday, now)
	assert.True(t, today.Bounded)
	assert.Equal(t, time.Date(2026, time.October, 14, 0, 0, 0, 0, loc), today.Start)
	assert.Equal(t, time.Date(2026, time.October, 15, 0, 0, 0, 0, loc), today.End)

	week := ResolvePeriod(PeriodWeek, now)
	assert.Equal(t, time.Date(2026, time.October, 12, 0, 0, 0, 0, loc), week.Start)
	assert.Equal(t, time.Monday, week.Start.Weekday())
	assert.Equal(t, time.Date(2026, time.October, 19, 0, 0, 0, 0, loc), week.End)

	month := ResolvePeriod(PeriodMonth, now)
	assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, loc), month.Start)
	assert.Equal(t, time.Date(2026, time.November, 1, 0, 0, 0, 0, loc), month.End)

	all := ResolvePeriod(PeriodAll, now)
	assert.False(t, all.Bounded)
	assert.True(t, all.Contains(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestResolvePeriodWeekEdges(t *testing.T) {
	sunday := time.Date(2026, time.October, 18, 23, 59, 59, 0, time.UTC)
	week := ResolvePeriod(PeriodWeek, sunday)
	assert.Equal(t, time.Date(2026, time.October, 12, 0, 0, 0, 0, time.UTC), week.Start)

	monday := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	week = ResolvePeriod(PeriodWeek, monday)
	assert.Equal(t, monday, week.Start)

	// ISO week crossing a year boundary
	thursday := time.Date(2027, time.January, 1, 12, 0, 0, 0, time.UTC)
	week = ResolvePeriod(PeriodWeek, thursday)
	assert.Equal(t, time.Date(2026, time.December, 28, 0, 0, 0, 0, time.UTC), week.Start)
	assert.Equal(t, time.Date(2027, time.January, 4, 0, 0, 0, 0, time.UTC), week.End)
}

func TestWindowContainsIsHalfOpen(t *testing.T) {
	now := time.Date(2026, time.February, 10, 8, 0, 0, 0, time.UTC)
	month := ResolvePeriod(PeriodMonth, now)

	assert.True(t, month.Contains(month.Start))
	assert.False(t, month.Contains(month.End))
	assert.False(t, month.Contains(month.Start.Add(-time.Nanosecond)))
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), month.End)
}

func TestResolvePeriodTodayInsideMonthAndWeek(t *testing.T) {
	for d := 1; d <= 31; d++ {
		now := time.Date(2026, time.December, d, 10, 0, 0, 0, time.UTC)
		today := ResolvePeriod(PeriodToday, now)
		for _, p := range []Period{PeriodWeek, PeriodMonth} {
			w := ResolvePeriod(p, now)
			assert.True(t, w.Contains(today.Start), "day %d period %s", d, p)
			assert.False(t, today.End.After(w.End), "day %d period %s", d, p)
		}
	}
}
