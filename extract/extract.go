// Package extract pulls numeric signal values out of raw device payloads.
// Every function is total: malformed or missing data yields absence, never
// a panic or an error.
package extract

import (
	"strconv"
	"strings"

	"github.com/healthkernel/healthkernel-api/schema"
)

// resolvePath walks a dot-path like "body_metrics.weight_kg" or
// "sleep_sessions.0.duration_minutes" through nested maps and arrays.
func resolvePath(data interface{}, path string) interface{} {
	current := data
	for _, part := range strings.Split(path, ".") {
		switch v := current.(type) {
		case map[string]interface{}:
			current = v[part]
		case schema.RawData:
			current = v[part]
		case []interface{}:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(v) {
				return nil
			}
			current = v[idx]
		default:
			return nil
		}
	}
	return current
}

// toFloat coerces decoded JSON scalars to float64. Booleans and
// non-numeric strings are absence, not zero.
func toFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Signal extracts one configured signal from a record. The boolean reports
// presence.
func Signal(record schema.DailyRecord, cfg schema.SignalConfig) (float64, bool) {
	if record.RawData == nil {
		return 0, false
	}
	return toFloat(resolvePath(record.RawData, cfg.Path))
}

// SignalByName extracts a signal by its table name. Unknown names are
// absence.
func SignalByName(record schema.DailyRecord, name string) (float64, bool) {
	cfg, ok := schema.GetSignalConfig(name)
	if !ok {
		return 0, false
	}
	return Signal(record, cfg)
}

// Observation is one dated signal value.
type Observation struct {
	Date  string
	Value float64
}

// Series extracts per-signal observation lists from rows. Rows are expected
// ordered by date; the order is preserved. Signals with no extractable
// values map to empty slices.
func Series(rows []schema.DailyRecord) map[string][]Observation {
	series := make(map[string][]Observation, len(schema.ListSignals()))
	for _, name := range schema.ListSignals() {
		series[name] = nil
	}
	for _, row := range rows {
		for _, name := range schema.ListSignals() {
			if v, ok := SignalByName(row, name); ok {
				series[name] = append(series[name], Observation{Date: row.Date, Value: v})
			}
		}
	}
	return series
}

// Values strips dates from an observation list.
func Values(obs []Observation) []float64 {
	if len(obs) == 0 {
		return nil
	}
	out := make([]float64, len(obs))
	for i, o := range obs {
		out[i] = o.Value
	}
	return out
}

// HasManualSignal reports whether a record carries any person-entered
// signal (logged calories or a weigh-in). Device-sensed signals do not
// count as tracking.
func HasManualSignal(record schema.DailyRecord) bool {
	for _, name := range schema.ManualSignals {
		if _, ok := SignalByName(record, name); ok {
			return true
		}
	}
	return false
}

// ManualDates returns the sorted-input dates on which rows carry a manual
// signal. Duplicate dates collapse.
func ManualDates(rows []schema.DailyRecord) map[string]bool {
	dates := make(map[string]bool)
	for _, row := range rows {
		if HasManualSignal(row) {
			dates[row.Date] = true
		}
	}
	return dates
}
