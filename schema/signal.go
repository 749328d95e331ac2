package schema

import "fmt"

// Aggregation kinds supported by the kernel. Anything else in the signal
// table is a configuration error caught at startup, never at request time.
const (
	AggSum  = "sum"
	AggAvg  = "avg"
	AggMax  = "max"
	AggMin  = "min"
	AggLast = "last"
)

const (
	SignalSteps         = "steps_total"
	SignalCaloriesBurn  = "total_calories_burned"
	SignalCaloriesTotal = "calories_total"
	SignalWeight        = "weight_kg"

	// SignalTrackingConsistency is derived from coverage, not extracted
	// from raw data.
	SignalTrackingConsistency = "tracking_consistency"
)

type SignalSource string

const (
	SourceAutomatic SignalSource = "automatic"
	SourceManual    SignalSource = "manual"
	SourceDerived   SignalSource = "derived"
)

// SignalConfig ties a signal name to its location inside raw_data and the
// reduction used to roll it up over a period.
type SignalConfig struct {
	Path        string
	Agg         string
	Unit        string
	DisplayName string
	Source      SignalSource
	// Direction is advisory metadata for the catalog endpoint.
	Direction string
}

var signalConfigs = map[string]SignalConfig{
	SignalSteps:         {Path: "steps_total", Agg: AggSum, Unit: "steps", DisplayName: "Steps", Source: SourceAutomatic, Direction: "higher_better"},
	SignalCaloriesBurn:  {Path: "total_calories_burned", Agg: AggSum, Unit: "kcal", DisplayName: "Calories Burned", Source: SourceAutomatic, Direction: "neutral"},
	SignalCaloriesTotal: {Path: "nutrition_summary.calories_total", Agg: AggSum, Unit: "kcal", DisplayName: "Calories Eaten", Source: SourceManual, Direction: "neutral"},
	"protein_grams":     {Path: "nutrition_summary.protein_grams", Agg: AggSum, Unit: "g", DisplayName: "Protein", Source: SourceManual, Direction: "higher_better"},
	SignalWeight:        {Path: "body_metrics.weight_kg", Agg: AggLast, Unit: "kg", DisplayName: "Weight", Source: SourceManual, Direction: "lower_better"},
	"body_fat_percentage": {
		Path: "body_metrics.body_fat_percentage", Agg: AggLast, Unit: "%", DisplayName: "Body Fat", Source: SourceAutomatic, Direction: "lower_better",
	},
	"avg_hr":                 {Path: "heart_rate_summary.avg_hr", Agg: AggAvg, Unit: "bpm", DisplayName: "Average Heart Rate", Source: SourceAutomatic, Direction: "neutral"},
	"max_hr":                 {Path: "heart_rate_summary.max_hr", Agg: AggMax, Unit: "bpm", DisplayName: "Max Heart Rate", Source: SourceAutomatic, Direction: "neutral"},
	"min_hr":                 {Path: "heart_rate_summary.min_hr", Agg: AggMin, Unit: "bpm", DisplayName: "Min Heart Rate", Source: SourceAutomatic, Direction: "neutral"},
	"resting_hr":             {Path: "heart_rate_summary.resting_hr", Agg: AggAvg, Unit: "bpm", DisplayName: "Resting Heart Rate", Source: SourceAutomatic, Direction: "lower_better"},
	"sleep_duration_minutes": {Path: "sleep_sessions.0.duration_minutes", Agg: AggAvg, Unit: "min", DisplayName: "Sleep Duration", Source: SourceAutomatic, Direction: "higher_better"},
	"blood_oxygen":           {Path: "oxygen_saturation_percentage", Agg: AggAvg, Unit: "%", DisplayName: "Blood Oxygen", Source: SourceAutomatic, Direction: "higher_better"},
}

// signalOrder fixes the presentation order of signals on a card; map
// iteration order would reshuffle envelopes between requests.
var signalOrder = []string{
	SignalSteps,
	SignalCaloriesBurn,
	SignalCaloriesTotal,
	"protein_grams",
	SignalWeight,
	"body_fat_percentage",
	"avg_hr",
	"max_hr",
	"min_hr",
	"resting_hr",
	"sleep_duration_minutes",
	"blood_oxygen",
}

// ManualSignals are the person-entered signals whose presence defines a
// "tracked" day. Steps and heart data are device-sensed and excluded.
var ManualSignals = []string{SignalCaloriesTotal, SignalWeight}

func GetSignalConfig(name string) (SignalConfig, bool) {
	cfg, ok := signalConfigs[name]
	return cfg, ok
}

func ListSignals() []string {
	out := make([]string, len(signalOrder))
	copy(out, signalOrder)
	return out
}

// ValidateSignalTable rejects unknown aggregation kinds. Called once at
// process start; a failure here is fatal.
func ValidateSignalTable() error {
	for name, cfg := range signalConfigs {
		switch cfg.Agg {
		case AggSum, AggAvg, AggMax, AggMin, AggLast:
		default:
			return fmt.Errorf("signal %s: unknown aggregation kind %q", name, cfg.Agg)
		}
		if cfg.Path == "" {
			return fmt.Errorf("signal %s: empty extraction path", name)
		}
	}
	for _, name := range signalOrder {
		if _, ok := signalConfigs[name]; !ok {
			return fmt.Errorf("signal order references unknown signal %s", name)
		}
	}
	return nil
}
