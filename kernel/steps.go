package kernel

import (
	"github.com/healthkernel/healthkernel-api/schema"
)

// StepsInput feeds the gated P3 evaluator. History is the full per-day step
// series, oldest first. TrackingStatus and CaloriesStatus are the already
// computed P1/P2 statuses: P3 is a pure function of them and never feeds
// back, so the evaluation order stays acyclic.
type StepsInput struct {
	History []float64

	TrackingStatus schema.Status
	CaloriesStatus schema.Status

	Floor          float64
	LongTermTarget float64
	RampFast       float64
	RampSlow       float64

	BaselineWindow int
	TrailingWindow int
}

// StepsEvaluation exposes the intermediate ramp values alongside the
// result; the card builder surfaces the dynamic target on the signal.
type StepsEvaluation struct {
	Baseline      float64
	Current       float64
	RampRate      float64
	DynamicTarget float64
	Result        schema.EvaluationResult
}

// EvaluateSteps computes the trajectory-based step target and status.
// Ramp precedence: any red gate stops the ramp, any yellow slows it, both
// green runs it fast. The floor check dominates the target comparison: a
// low absolute average is red no matter how modest the dynamic target is.
func EvaluateSteps(in StepsInput) StepsEvaluation {
	baselineWindow := in.BaselineWindow
	if baselineWindow <= 0 {
		baselineWindow = 14
	}
	trailingWindow := in.TrailingWindow
	if trailingWindow <= 0 {
		trailingWindow = 14
	}

	// Baseline anchors on the earliest history so the ramp measures real
	// progress from where the habit started, not from last week.
	baseline := 0.0
	if b := LeadingAverage(in.History, baselineWindow); b != nil {
		baseline = *b
	}
	current := 0.0
	if c := TrailingAverage(in.History, trailingWindow); c != nil {
		current = *c
	}

	var ramp float64
	switch {
	case in.TrackingStatus == schema.StatusRed || in.CaloriesStatus == schema.StatusRed:
		ramp = 0
	case in.TrackingStatus == schema.StatusGreen && in.CaloriesStatus == schema.StatusGreen:
		ramp = in.RampFast
	default:
		ramp = in.RampSlow
	}

	target := baseline * (1 + ramp)
	if target > in.LongTermTarget {
		target = in.LongTermTarget
	}

	var status schema.Status
	switch {
	case current < in.Floor:
		status = schema.StatusRed
	case current >= target:
		status = schema.StatusGreen
	default:
		status = schema.StatusYellow
	}

	var progress float64
	switch {
	case target > 0:
		progress = clamp(current/target*100, 0, 100)
	case current > 0:
		progress = 100
	}

	result := schema.EvaluationResult{
		Priority:    3,
		Status:      status,
		ProgressPct: progress,
		Trend:       stepsTrend(in.History),
		Message:     stepsMessage(status, current, target, in.Floor, ramp),
	}

	return StepsEvaluation{
		Baseline:      baseline,
		Current:       current,
		RampRate:      ramp,
		DynamicTarget: target,
		Result:        result,
	}
}

func stepsTrend(history []float64) schema.Trend {
	if len(history) < 2 {
		return schema.TrendFlat
	}
	window := 7
	if len(history) < 2*window {
		window = len(history) / 2
	}
	recent := history[len(history)-window:]
	prior := history[len(history)-2*window : len(history)-window]
	return TrendLabel(recent, prior, schema.TargetMinimum)
}

func stepsMessage(status schema.Status, current, target, floor, ramp float64) string {
	switch status {
	case schema.StatusGreen:
		return "Step average meets the current target."
	case schema.StatusYellow:
		if ramp == 0 {
			return "Step target is holding steady until tracking and calories recover."
		}
		return "Step average is between the floor and the current target."
	default:
		return "Step average has fallen below the floor. Rebuild the base before ramping."
	}
}
