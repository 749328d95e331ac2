package kernel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/healthkernel/healthkernel-api/schema"
)

func day(s string) time.Time {
	d, err := time.Parse(schema.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func manualRange(from, to string) map[string]bool {
	out := map[string]bool{}
	for d := day(from); !d.After(day(to)); d = addDays(d, 1) {
		out[dayKey(d)] = true
	}
	return out
}

func TestEvaluateTrackingSixOfSevenIsGreen(t *testing.T) {
	// Presence Feb 11-16, absence Feb 9-10; window Feb 10-16 covers 6/7.
	in := TrackingInput{
		Today:            day("2026-02-16"),
		TrackingStart:    day("2026-02-09"),
		RecentWindowDays: 7,
		ManualDays:       manualRange("2026-02-11", "2026-02-16"),
	}
	vector, result := EvaluateTracking(in)

	assert.InDelta(t, 6.0/7.0, vector.ManualCoverageRecent, 1e-9)
	assert.Equal(t, schema.StatusGreen, result.Status)
	assert.InDelta(t, 6.0/7.0*100, result.ProgressPct, 1e-6)
	assert.Equal(t, 6, vector.StreakManualDays)
	if assert.NotNil(t, vector.DaysSinceLastManualEntry) {
		assert.Equal(t, 0, *vector.DaysSinceLastManualEntry)
	}
}

func TestEvaluateTrackingYoungHabitNotPenalized(t *testing.T) {
	// Habit started yesterday with both days logged: judged over 2 days,
	// not the nominal 7.
	in := TrackingInput{
		Today:            day("2026-02-16"),
		TrackingStart:    day("2026-02-15"),
		RecentWindowDays: 7,
		ManualDays:       manualRange("2026-02-15", "2026-02-16"),
	}
	vector, result := EvaluateTracking(in)

	assert.InDelta(t, 1.0, vector.ManualCoverageRecent, 1e-9)
	assert.InDelta(t, 1.0, vector.ManualCoverageExtended, 1e-9)
	assert.Equal(t, schema.StatusGreen, result.Status)
	assert.Equal(t, 2, vector.StreakManualDays)
}

func TestEvaluateTrackingStatusThresholds(t *testing.T) {
	today := day("2026-02-16")
	start := day("2026-01-01")

	cases := []struct {
		presentDays int // out of a 20-day recent window
		expected    schema.Status
	}{
		{20, schema.StatusGreen},
		{17, schema.StatusGreen},  // 0.85 exactly
		{16, schema.StatusYellow}, // 0.80
		{14, schema.StatusYellow}, // 0.70 exactly
		{13, schema.StatusRed},    // 0.65
		{0, schema.StatusRed},
	}
	for _, c := range cases {
		manual := map[string]bool{}
		for i := 0; i < c.presentDays; i++ {
			manual[dayKey(addDays(today, -i))] = true
		}
		_, result := EvaluateTracking(TrackingInput{
			Today:            today,
			TrackingStart:    start,
			RecentWindowDays: 20,
			ManualDays:       manual,
		})
		assert.Equal(t, c.expected, result.Status, "present=%d", c.presentDays)
	}
}

func TestEvaluateTrackingNeverObserved(t *testing.T) {
	vector, result := EvaluateTracking(TrackingInput{
		Today:            day("2026-02-16"),
		TrackingStart:    day("2026-02-09"),
		RecentWindowDays: 7,
		ManualDays:       map[string]bool{},
	})

	assert.Nil(t, vector.DaysSinceLastManualEntry)
	assert.Zero(t, vector.StreakManualDays)
	assert.Zero(t, vector.ManualCoverageRecent)
	assert.Equal(t, schema.StatusRed, result.Status)
	assert.Equal(t, schema.TrendFlat, result.Trend)
}

func TestEvaluateTrackingStreakBreaks(t *testing.T) {
	manual := manualRange("2026-02-13", "2026-02-16")
	delete(manual, "2026-02-14")

	vector, _ := EvaluateTracking(TrackingInput{
		Today:            day("2026-02-16"),
		TrackingStart:    day("2026-02-01"),
		RecentWindowDays: 7,
		ManualDays:       manual,
	})
	assert.Equal(t, 2, vector.StreakManualDays)
}

func TestEvaluateTrackingDaysSinceLast(t *testing.T) {
	vector, _ := EvaluateTracking(TrackingInput{
		Today:            day("2026-02-16"),
		TrackingStart:    day("2026-02-01"),
		RecentWindowDays: 7,
		ManualDays:       map[string]bool{"2026-02-10": true},
	})
	if assert.NotNil(t, vector.DaysSinceLastManualEntry) {
		assert.Equal(t, 6, *vector.DaysSinceLastManualEntry)
	}
}

func TestEvaluateTrackingExtendedWindowClippedToStart(t *testing.T) {
	// 10 days since start: extended window is 10 days, not 30.
	today := day("2026-02-16")
	start := day("2026-02-07")
	vector, _ := EvaluateTracking(TrackingInput{
		Today:            today,
		TrackingStart:    start,
		RecentWindowDays: 7,
		ManualDays:       manualRange("2026-02-07", "2026-02-11"),
	})
	assert.InDelta(t, 0.5, vector.ManualCoverageExtended, 1e-9)
}

func TestEvaluateTrackingWindowNeverBeforeStart(t *testing.T) {
	// Presence before the tracking start must not leak into coverage.
	manual := manualRange("2026-01-01", "2026-02-16")
	vector, _ := EvaluateTracking(TrackingInput{
		Today:            day("2026-02-16"),
		TrackingStart:    day("2026-02-16"),
		RecentWindowDays: 7,
		ManualDays:       manual,
	})
	assert.InDelta(t, 1.0, vector.ManualCoverageRecent, 1e-9)
	assert.InDelta(t, 1.0, vector.ManualCoverageExtended, 1e-9)
	assert.Equal(t, 1, vector.StreakManualDays)
}

func locDay(s, zone string) time.Time {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		panic(err)
	}
	d, err := time.ParseInLocation(schema.DateLayout, s, loc)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEvaluateTrackingCoverageAcrossSpringForward(t *testing.T) {
	// The 7-day window 2026-03-08..14 contains the US spring-forward; the
	// denominator must stay 7 civil days even though the span is 167 hours.
	vector, _ := EvaluateTracking(TrackingInput{
		Today:            locDay("2026-03-14", "America/New_York"),
		TrackingStart:    locDay("2026-03-01", "America/New_York"),
		RecentWindowDays: 7,
		ManualDays:       manualRange("2026-03-09", "2026-03-14"),
	})
	assert.InDelta(t, 6.0/7.0, vector.ManualCoverageRecent, 1e-9)
}

func TestEvaluateTrackingTodayEntryEastOfUTC(t *testing.T) {
	// Tokyo midnight precedes the same date's UTC midnight; an entry logged
	// today must still count as zero days ago.
	vector, _ := EvaluateTracking(TrackingInput{
		Today:            locDay("2026-02-16", "Asia/Tokyo"),
		TrackingStart:    locDay("2026-02-01", "Asia/Tokyo"),
		RecentWindowDays: 7,
		ManualDays:       map[string]bool{"2026-02-16": true},
	})
	if assert.NotNil(t, vector.DaysSinceLastManualEntry) {
		assert.Equal(t, 0, *vector.DaysSinceLastManualEntry)
	}
	assert.Equal(t, 1, vector.StreakManualDays)
}

func TestEvaluateTrackingIdempotent(t *testing.T) {
	in := TrackingInput{
		Today:            day("2026-02-16"),
		TrackingStart:    day("2026-02-01"),
		RecentWindowDays: 7,
		ManualDays:       manualRange("2026-02-10", "2026-02-14"),
	}
	v1, r1 := EvaluateTracking(in)
	v2, r2 := EvaluateTracking(in)
	assert.Equal(t, v1, v2)
	assert.Equal(t, r1, r2)
}
