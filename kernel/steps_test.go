package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/healthkernel/healthkernel-api/schema"
)

func stepsSettings() StepsInput {
	return StepsInput{
		Floor:          4000,
		LongTermTarget: 8000,
		RampFast:       0.075,
		RampSlow:       0.025,
		BaselineWindow: 14,
		TrailingWindow: 14,
	}
}

func flatHistory(early, late float64, earlyDays, lateDays int) []float64 {
	var h []float64
	for i := 0; i < earlyDays; i++ {
		h = append(h, early)
	}
	for i := 0; i < lateDays; i++ {
		h = append(h, late)
	}
	return h
}

func TestEvaluateStepsSlowRampGreen(t *testing.T) {
	// Baseline 5800, slow ramp 2.5% → target 5944.5; current 6240 clears it.
	in := stepsSettings()
	in.History = flatHistory(5800, 6240, 14, 14)
	in.TrackingStatus = schema.StatusGreen
	in.CaloriesStatus = schema.StatusYellow

	eval := EvaluateSteps(in)

	assert.InDelta(t, 0.025, eval.RampRate, 1e-9)
	assert.InDelta(t, 5944.5, eval.DynamicTarget, 1e-6)
	assert.InDelta(t, 6240, eval.Current, 1e-9)
	assert.Equal(t, schema.StatusGreen, eval.Result.Status)
	assert.InDelta(t, 100, eval.Result.ProgressPct, 1e-9)
}

func TestEvaluateStepsFloorDominates(t *testing.T) {
	// Current 3000 is under the floor: red even with a tiny target.
	in := stepsSettings()
	in.History = flatHistory(2000, 3000, 14, 14)
	in.TrackingStatus = schema.StatusGreen
	in.CaloriesStatus = schema.StatusGreen

	eval := EvaluateSteps(in)

	assert.True(t, eval.DynamicTarget <= 3000)
	assert.Equal(t, schema.StatusRed, eval.Result.Status)
}

func TestEvaluateStepsRampSelection(t *testing.T) {
	cases := []struct {
		tracking schema.Status
		calories schema.Status
		expected float64
	}{
		{schema.StatusGreen, schema.StatusGreen, 0.075},
		{schema.StatusGreen, schema.StatusYellow, 0.025},
		{schema.StatusYellow, schema.StatusGreen, 0.025},
		{schema.StatusYellow, schema.StatusYellow, 0.025},
		{schema.StatusRed, schema.StatusGreen, 0},
		{schema.StatusGreen, schema.StatusRed, 0},
		{schema.StatusRed, schema.StatusYellow, 0},
		{schema.StatusRed, schema.StatusRed, 0},
	}
	for _, c := range cases {
		in := stepsSettings()
		in.History = flatHistory(5000, 5000, 14, 14)
		in.TrackingStatus = c.tracking
		in.CaloriesStatus = c.calories
		eval := EvaluateSteps(in)
		assert.InDelta(t, c.expected, eval.RampRate, 1e-9, "%s/%s", c.tracking, c.calories)
	}
}

func TestEvaluateStepsTargetCappedAtLongTerm(t *testing.T) {
	in := stepsSettings()
	in.History = flatHistory(7900, 7900, 14, 14)
	in.TrackingStatus = schema.StatusGreen
	in.CaloriesStatus = schema.StatusGreen

	eval := EvaluateSteps(in)
	assert.InDelta(t, 8000, eval.DynamicTarget, 1e-9)
}

func TestEvaluateStepsBaselineUsesEarliestHistory(t *testing.T) {
	// Early 14 days at 4500, later 14 at 7000: the baseline anchors on the
	// early block even though the trailing average has moved on.
	in := stepsSettings()
	in.History = flatHistory(4500, 7000, 14, 14)
	in.TrackingStatus = schema.StatusGreen
	in.CaloriesStatus = schema.StatusGreen

	eval := EvaluateSteps(in)
	assert.InDelta(t, 4500, eval.Baseline, 1e-9)
	assert.InDelta(t, 7000, eval.Current, 1e-9)
}

func TestEvaluateStepsShortHistoryAveragesWhatExists(t *testing.T) {
	in := stepsSettings()
	in.History = []float64{5000, 6000}
	in.TrackingStatus = schema.StatusGreen
	in.CaloriesStatus = schema.StatusGreen

	eval := EvaluateSteps(in)
	assert.InDelta(t, 5500, eval.Baseline, 1e-9)
	assert.InDelta(t, 5500, eval.Current, 1e-9)
}

func TestEvaluateStepsNoHistory(t *testing.T) {
	in := stepsSettings()
	in.TrackingStatus = schema.StatusRed
	in.CaloriesStatus = schema.StatusRed

	eval := EvaluateSteps(in)
	assert.Zero(t, eval.Current)
	assert.Equal(t, schema.StatusRed, eval.Result.Status)
	assert.Zero(t, eval.Result.ProgressPct)
	assert.Equal(t, schema.TrendFlat, eval.Result.Trend)
}

func TestEvaluateStepsProgressClamped(t *testing.T) {
	in := stepsSettings()
	in.History = flatHistory(5000, 20000, 14, 14)
	in.TrackingStatus = schema.StatusGreen
	in.CaloriesStatus = schema.StatusGreen

	eval := EvaluateSteps(in)
	assert.InDelta(t, 100, eval.Result.ProgressPct, 1e-9)
}

func TestEvaluateStepsYellowBetweenFloorAndTarget(t *testing.T) {
	in := stepsSettings()
	// Baseline 7000 → fast target 7525; current 5000 sits between floor
	// and target.
	in.History = flatHistory(7000, 5000, 14, 14)
	in.TrackingStatus = schema.StatusGreen
	in.CaloriesStatus = schema.StatusGreen

	eval := EvaluateSteps(in)
	assert.Equal(t, schema.StatusYellow, eval.Result.Status)
	assert.InDelta(t, 5000/7525.0*100, eval.Result.ProgressPct, 1e-6)
}

func TestEvaluateStepsIdempotent(t *testing.T) {
	in := stepsSettings()
	in.History = flatHistory(5200, 6100, 14, 14)
	in.TrackingStatus = schema.StatusYellow
	in.CaloriesStatus = schema.StatusGreen
	assert.Equal(t, EvaluateSteps(in), EvaluateSteps(in))
}
