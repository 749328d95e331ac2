package kernel

import (
	"github.com/healthkernel/healthkernel-api/schema"
)

// Aggregate reduces observed values with the given kind. Zero observations
// yield nil, never zero: an empty day is absent, not a day of zeros.
// Unknown kinds fall back to the average; the signal table is validated at
// startup so this only covers future table edits.
func Aggregate(values []float64, kind string) *float64 {
	if len(values) == 0 {
		return nil
	}
	switch kind {
	case schema.AggSum:
		return floatPtr(sum(values))
	case schema.AggMax:
		m := values[0]
		for _, v := range values[1:] {
			if v > m {
				m = v
			}
		}
		return floatPtr(m)
	case schema.AggMin:
		m := values[0]
		for _, v := range values[1:] {
			if v < m {
				m = v
			}
		}
		return floatPtr(m)
	case schema.AggLast:
		return floatPtr(values[len(values)-1])
	default: // schema.AggAvg and anything unrecognized
		return floatPtr(sum(values) / float64(len(values)))
	}
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

// TrailingAverage averages the last window values, or all of them when the
// window is zero or exceeds the series length. Nil on empty input.
func TrailingAverage(values []float64, window int) *float64 {
	if len(values) == 0 {
		return nil
	}
	subset := values
	if window > 0 && len(values) > window {
		subset = values[len(values)-window:]
	}
	return floatPtr(sum(subset) / float64(len(subset)))
}

// LeadingAverage averages the first window values; the step evaluator uses
// it for the earliest-history baseline.
func LeadingAverage(values []float64, window int) *float64 {
	if len(values) == 0 {
		return nil
	}
	subset := values
	if window > 0 && len(values) > window {
		subset = values[:window]
	}
	return floatPtr(sum(subset) / float64(len(subset)))
}

// BaselineWindowDays is the length of the prior period used for baseline
// computation, per granularity.
func BaselineWindowDays(g schema.Granularity) int {
	switch g {
	case schema.GranularityWeekly:
		return 4 * 7
	case schema.GranularityMonthly:
		return 3 * 30
	default:
		return 7
	}
}

// Delta is current − baseline, signed and unclamped. Nil unless both are
// present.
func Delta(current, baseline *float64) *float64 {
	if current == nil || baseline == nil {
		return nil
	}
	return floatPtr(*current - *baseline)
}

// DeltaPct is the percentage delta against the baseline. Nil when either
// side is missing or the baseline is zero.
func DeltaPct(current, baseline *float64) *float64 {
	if current == nil || baseline == nil || *baseline == 0 {
		return nil
	}
	return floatPtr((*current - *baseline) / abs(*baseline) * 100)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// SignalAggregate is one signal's rollup with its prior-period baseline.
// The delta is set iff both value and baseline are set.
type SignalAggregate struct {
	SignalName string
	Value      *float64
	Baseline   *float64
	Delta      *float64
}

// ComputeAggregate reduces the current period's observations and estimates
// the baseline from the immediately preceding period's observations. A
// prior period with zero observations yields a nil baseline; the caller is
// responsible for turning that into a warning.
func ComputeAggregate(signalName, kind string, current, prior []float64) SignalAggregate {
	value := Aggregate(current, kind)
	baseline := TrailingAverage(prior, 0)
	return SignalAggregate{
		SignalName: signalName,
		Value:      value,
		Baseline:   baseline,
		Delta:      Delta(value, baseline),
	}
}
