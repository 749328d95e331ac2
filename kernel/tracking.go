package kernel

import (
	"time"

	"github.com/healthkernel/healthkernel-api/schema"
)

// Tracking reliability thresholds on recent coverage.
const (
	trackingGreenThreshold  = 0.85
	trackingYellowThreshold = 0.70
)

const extendedWindowDays = 30

// TrackingInput is everything the P1 evaluator needs: the presence set of
// manual-signal days, the fixed lower bound for coverage windows, and
// today's civil date in the caller's zone.
type TrackingInput struct {
	Today            time.Time
	TrackingStart    time.Time
	RecentWindowDays int
	ManualDays       map[string]bool
}

// EvaluateTracking computes the coverage vector and the priority-1 result.
// Coverage denominators are the intersection of the nominal window with
// [tracking start, today]: a habit started two days ago is judged over two
// days, not seven.
func EvaluateTracking(in TrackingInput) (schema.CoverageVector, schema.EvaluationResult) {
	today := in.Today
	start := in.TrackingStart
	if start.After(today) {
		start = today
	}
	recentWindow := in.RecentWindowDays
	if recentWindow <= 0 {
		recentWindow = 7
	}

	recent := windowCoverage(in.ManualDays, today, start, recentWindow)

	daysSinceStart := daysBetween(start, today)
	extendedWindow := extendedWindowDays
	if daysSinceStart+1 < extendedWindow {
		extendedWindow = daysSinceStart + 1
	}
	extended := windowCoverage(in.ManualDays, today, start, extendedWindow)

	vector := schema.CoverageVector{
		ManualCoverageRecent:   recent,
		ManualCoverageExtended: extended,
		StreakManualDays:       manualStreak(in.ManualDays, today, start),
	}
	if days, ok := daysSinceLastManual(in.ManualDays, today); ok {
		vector.DaysSinceLastManualEntry = intPtr(days)
	}

	var status schema.Status
	switch {
	case recent >= trackingGreenThreshold:
		status = schema.StatusGreen
	case recent >= trackingYellowThreshold:
		status = schema.StatusYellow
	default:
		status = schema.StatusRed
	}

	result := schema.EvaluationResult{
		Priority:    1,
		Status:      status,
		ProgressPct: clamp(recent*100, 0, 100),
		Trend:       trackingTrend(in.ManualDays, today, start, recentWindow),
		Message:     trackingMessage(status, vector),
	}
	return vector, result
}

// windowCoverage is the fraction of days in the trailing window, clipped to
// the tracking start, that carry a manual signal.
func windowCoverage(manual map[string]bool, today, start time.Time, window int) float64 {
	windowStart := addDays(today, -(window - 1))
	if windowStart.Before(start) {
		windowStart = start
	}
	denominator := daysBetween(windowStart, today) + 1
	if denominator <= 0 {
		return 0
	}
	present := 0
	for d := windowStart; !d.After(today); d = addDays(d, 1) {
		if manual[dayKey(d)] {
			present++
		}
	}
	return clamp(float64(present)/float64(denominator), 0, 1)
}

// daysSinceLastManual finds the freshest manual day at or before today.
// Days are compared as civil date strings; the map keys and today may sit
// in different zones, so instant comparison would misorder them.
func daysSinceLastManual(manual map[string]bool, today time.Time) (int, bool) {
	todayKey := dayKey(today)
	best := -1
	for key, present := range manual {
		if !present || key > todayKey {
			continue
		}
		d, ok := parseDay(key)
		if !ok {
			continue
		}
		if age := daysBetween(d, today); best < 0 || age < best {
			best = age
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// manualStreak counts consecutive tracked days ending today, never looking
// past the tracking start.
func manualStreak(manual map[string]bool, today, start time.Time) int {
	streak := 0
	for d := today; !d.Before(start); d = addDays(d, -1) {
		if !manual[dayKey(d)] {
			break
		}
		streak++
	}
	return streak
}

// trackingTrend compares manual presence over the recent window against the
// preceding window of equal length. Days before the tracking start do not
// exist for this comparison.
func trackingTrend(manual map[string]bool, today, start time.Time, window int) schema.Trend {
	recentStart := addDays(today, -(window - 1))
	if recentStart.Before(start) {
		recentStart = start
	}
	recent := presenceSeries(manual, recentStart, today)

	priorEnd := addDays(recentStart, -1)
	priorStart := addDays(priorEnd, -(len(recent) - 1))
	if priorStart.Before(start) {
		priorStart = start
	}
	if priorEnd.Before(priorStart) {
		return schema.TrendFlat
	}
	prior := presenceSeries(manual, priorStart, priorEnd)

	return TrendLabel(recent, prior, schema.TargetMinimum)
}

func presenceSeries(manual map[string]bool, from, to time.Time) []float64 {
	var series []float64
	for d := from; !d.After(to); d = addDays(d, 1) {
		if manual[dayKey(d)] {
			series = append(series, 1)
		} else {
			series = append(series, 0)
		}
	}
	return series
}

func trackingMessage(status schema.Status, v schema.CoverageVector) string {
	switch status {
	case schema.StatusGreen:
		return "Tracking is consistent. Keep logging daily."
	case schema.StatusYellow:
		return "Tracking has gaps this week. A daily log keeps the other goals honest."
	default:
		if v.DaysSinceLastManualEntry == nil {
			return "No manual entries yet. Log calories or weight to start tracking."
		}
		return "Tracking has lapsed. Log calories or weight to get back on record."
	}
}
