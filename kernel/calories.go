package kernel

import (
	"github.com/healthkernel/healthkernel-api/schema"
)

// Calorie trend thresholds on weekly deficit progress.
const (
	caloriesRedBelow    = 20.0
	caloriesYellowBelow = 70.0
)

// CaloriesInput feeds the P2 evaluator. Burned and Eaten map civil dates to
// observed kcal; Days and PriorDays list the trailing window and the window
// before it, oldest first.
type CaloriesInput struct {
	Days      []string
	PriorDays []string
	Burned    map[string]float64
	Eaten     map[string]float64

	// BurnModifier discounts device-estimated burn; defaults are chosen
	// conservative on purpose.
	BurnModifier        float64
	DeficitTargetPerDay float64

	// MinObservedDays is the smallest number of fully-observed days for
	// which the week is scored at all. Below it the result is an
	// insufficient-data red instead of a misleading score.
	MinObservedDays int
}

// EvaluateCalories scores the weekly energy deficit. Only days where both
// burned and eaten are present contribute; partial days are excluded from
// the sum entirely rather than zero-filled. The weekly window absorbs
// single-day spikes by construction.
func EvaluateCalories(in CaloriesInput) schema.EvaluationResult {
	modifier := in.BurnModifier
	if modifier <= 0 {
		modifier = 0.5
	}
	targetPerDay := in.DeficitTargetPerDay
	if targetPerDay <= 0 {
		targetPerDay = 500
	}

	deficits := dailyDeficits(in.Days, in.Burned, in.Eaten, modifier)
	observed := len(deficits)

	result := schema.EvaluationResult{Priority: 2, Trend: schema.TrendFlat}

	if observed < in.MinObservedDays {
		result.Status = schema.StatusRed
		result.ProgressPct = 0
		result.Message = "Not enough logged days to score this week's deficit. Log both intake and activity."
		return result
	}

	actual := sum(deficits)
	target := float64(len(in.Days)) * targetPerDay
	progress := 0.0
	if target > 0 {
		progress = clamp(actual/target*100, 0, 100)
	}

	result.ProgressPct = progress
	switch {
	case progress < caloriesRedBelow:
		result.Status = schema.StatusRed
	case progress < caloriesYellowBelow:
		result.Status = schema.StatusYellow
	default:
		result.Status = schema.StatusGreen
	}

	prior := dailyDeficits(in.PriorDays, in.Burned, in.Eaten, modifier)
	result.Trend = TrendLabel(deficits, prior, schema.TargetMinimum)
	result.Message = caloriesMessage(result.Status, actual, target)
	return result
}

func dailyDeficits(days []string, burned, eaten map[string]float64, modifier float64) []float64 {
	var deficits []float64
	for _, day := range days {
		b, okBurn := burned[day]
		e, okEat := eaten[day]
		if !okBurn || !okEat {
			continue
		}
		deficits = append(deficits, b*modifier-e)
	}
	return deficits
}

func caloriesMessage(status schema.Status, actual, target float64) string {
	switch status {
	case schema.StatusGreen:
		return "Weekly deficit is on target."
	case schema.StatusYellow:
		return "Weekly deficit is behind target. Small daily adjustments close the gap."
	default:
		if actual <= 0 {
			return "Intake exceeded discounted burn this week. The weekly deficit is negative."
		}
		return "Weekly deficit is well behind target."
	}
}
