package schema

import (
	"fmt"
	"time"
)

type TargetType string

const (
	TargetMinimum TargetType = "minimum"
	TargetMaximum TargetType = "maximum"
	TargetExact   TargetType = "exact"
)

// GoalDefinition ties a signal (or virtual signal) to a target. The table is
// static configuration shared read-only by all evaluators.
type GoalDefinition struct {
	SignalName  string     `json:"signal_name"`
	TargetValue float64    `json:"target_value"`
	TargetType  TargetType `json:"target_type"`
	Priority    int        `json:"priority"`
	WindowDays  int        `json:"window_days"`
	Label       string     `json:"label"`
}

var goalsBySignal = map[string]GoalDefinition{
	SignalTrackingConsistency: {
		SignalName:  SignalTrackingConsistency,
		TargetValue: 1.0,
		TargetType:  TargetMinimum,
		Priority:    1,
		WindowDays:  7,
		Label:       "Tracking consistency",
	},
	SignalCaloriesTotal: {
		SignalName:  SignalCaloriesTotal,
		TargetValue: 2000.0,
		TargetType:  TargetMaximum,
		Priority:    2,
		WindowDays:  1,
		Label:       "Calorie target",
	},
	SignalSteps: {
		SignalName:  SignalSteps,
		TargetValue: 8000.0,
		TargetType:  TargetMinimum,
		Priority:    3,
		WindowDays:  1,
		Label:       "Daily steps",
	},
}

func GetGoal(signalName string) (GoalDefinition, bool) {
	g, ok := goalsBySignal[signalName]
	return g, ok
}

func ListGoals() []GoalDefinition {
	out := make([]GoalDefinition, 0, len(goalsBySignal))
	for _, name := range []string{SignalTrackingConsistency, SignalCaloriesTotal, SignalSteps} {
		out = append(out, goalsBySignal[name])
	}
	return out
}

// GoalSettings carries the tunable evaluator parameters. Loaded from
// configuration at process start and passed around read-only.
type GoalSettings struct {
	TrackingRecentWindowDays int
	TrackingStartOverride    string // YYYY-MM-DD, empty for none

	BurnModifier         float64
	DeficitTargetPerDay  float64
	CaloriesMinObserved  int
	StepsFloor           float64
	StepsLongTermTarget  float64
	StepsRampFast        float64
	StepsRampSlow        float64
	StepsBaselineWindow  int
	StepsTrailingWindow  int
}

// DefaultGoalSettings mirrors the documented defaults.
func DefaultGoalSettings() GoalSettings {
	return GoalSettings{
		TrackingRecentWindowDays: 7,
		BurnModifier:             0.5,
		DeficitTargetPerDay:      500,
		CaloriesMinObserved:      3,
		StepsFloor:               4000,
		StepsLongTermTarget:      8000,
		StepsRampFast:            0.075,
		StepsRampSlow:            0.025,
		StepsBaselineWindow:      14,
		StepsTrailingWindow:      14,
	}
}

// Validate rejects malformed goal configuration. Fatal at process start,
// never called at request time.
func (s GoalSettings) Validate() error {
	if s.TrackingRecentWindowDays <= 0 {
		return fmt.Errorf("tracking recent window must be positive, got %d", s.TrackingRecentWindowDays)
	}
	if s.TrackingStartOverride != "" {
		if _, err := time.Parse(DateLayout, s.TrackingStartOverride); err != nil {
			return fmt.Errorf("tracking start override: %v", err)
		}
	}
	if s.BurnModifier <= 0 || s.BurnModifier > 1 {
		return fmt.Errorf("burn modifier must be in (0,1], got %g", s.BurnModifier)
	}
	if s.DeficitTargetPerDay <= 0 {
		return fmt.Errorf("deficit target must be positive, got %g", s.DeficitTargetPerDay)
	}
	if s.CaloriesMinObserved < 0 || s.CaloriesMinObserved > 7 {
		return fmt.Errorf("calories min observed days must be in [0,7], got %d", s.CaloriesMinObserved)
	}
	if s.StepsRampFast < s.StepsRampSlow || s.StepsRampSlow < 0 {
		return fmt.Errorf("ramp rates must satisfy fast >= slow >= 0, got fast=%g slow=%g", s.StepsRampFast, s.StepsRampSlow)
	}
	if s.StepsFloor < 0 || s.StepsLongTermTarget < s.StepsFloor {
		return fmt.Errorf("steps targets must satisfy long_term >= floor >= 0, got floor=%g long_term=%g", s.StepsFloor, s.StepsLongTermTarget)
	}
	if s.StepsBaselineWindow <= 0 || s.StepsTrailingWindow <= 0 {
		return fmt.Errorf("steps windows must be positive")
	}
	for _, g := range ListGoals() {
		switch g.TargetType {
		case TargetMinimum, TargetMaximum, TargetExact:
		default:
			return fmt.Errorf("goal %s: unknown target type %q", g.SignalName, g.TargetType)
		}
		if g.Priority <= 0 {
			return fmt.Errorf("goal %s: priority must be positive", g.SignalName)
		}
		if g.WindowDays <= 0 {
			return fmt.Errorf("goal %s: window days must be positive", g.SignalName)
		}
	}
	return nil
}
