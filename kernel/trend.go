package kernel

import (
	"github.com/healthkernel/healthkernel-api/schema"
)

// trendBand is the ±5% dead zone around a flat trend.
const trendBand = 0.05

// TrendLabel compares the recent window average against the immediately
// preceding window of equal length. The label always means "moving toward
// the goal": for maximum-type goals the raw direction is inverted before
// labeling. A zero or unavailable prior average is flat.
func TrendLabel(recent, prior []float64, targetType schema.TargetType) schema.Trend {
	if len(recent) == 0 || len(prior) == 0 {
		return schema.TrendFlat
	}
	recentAvg := sum(recent) / float64(len(recent))
	priorAvg := sum(prior) / float64(len(prior))
	if priorAvg == 0 {
		return schema.TrendFlat
	}

	ratio := recentAvg / priorAvg
	var raw schema.Trend
	switch {
	case ratio >= 1+trendBand:
		raw = schema.TrendUp
	case ratio <= 1-trendBand:
		raw = schema.TrendDown
	default:
		return schema.TrendFlat
	}

	if targetType == schema.TargetMaximum {
		if raw == schema.TrendUp {
			return schema.TrendDown
		}
		return schema.TrendUp
	}
	return raw
}

// GoalProgressPct computes progress toward a configured goal target.
//
//	minimum: value/target, capped at 100
//	maximum: 100 when under target, else target/value
//	exact:   100 minus the relative deviation, clamped to [0,100]
//
// Nil when the value is absent or the target is zero.
func GoalProgressPct(value *float64, target float64, targetType schema.TargetType) *float64 {
	if value == nil || target == 0 {
		return nil
	}
	v := *value
	switch targetType {
	case schema.TargetMinimum:
		return floatPtr(clamp(v/target*100, 0, 100))
	case schema.TargetMaximum:
		if v <= target {
			return floatPtr(100)
		}
		return floatPtr(clamp(target/v*100, 0, 100))
	case schema.TargetExact:
		deviation := abs(v-target) / abs(target)
		return floatPtr(clamp((1-deviation)*100, 0, 100))
	default:
		return nil
	}
}

// GoalStatus maps goal progress to a status color. Absent progress is red:
// a goal we cannot measure is not on track.
func GoalStatus(progress *float64) schema.Status {
	if progress == nil {
		return schema.StatusRed
	}
	switch {
	case *progress >= 100:
		return schema.StatusGreen
	case *progress >= 50:
		return schema.StatusYellow
	default:
		return schema.StatusRed
	}
}
