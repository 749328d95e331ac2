package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

type Status string

const (
	StatusRed    Status = "red"
	StatusYellow Status = "yellow"
	StatusGreen  Status = "green"
)

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

type TimeRange struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Timezone string    `json:"timezone"`
}

// CoverageVector describes how consistently manual signals are logged.
// DaysSinceLastManualEntry is nil when no manual entry exists in history.
type CoverageVector struct {
	ManualCoverageRecent     float64 `json:"manual_coverage_7d"`
	ManualCoverageExtended   float64 `json:"manual_coverage_30d"`
	DaysSinceLastManualEntry *int    `json:"days_since_last_manual_entry"`
	StreakManualDays         int     `json:"streak_manual_days"`
}

// Signal is one computed metric on a card. Pointer fields stay nil when the
// underlying data is absent; absence is part of the contract, not an error.
type Signal struct {
	Name              string          `json:"name"`
	RecordType        string          `json:"record_type"`
	Value             *float64        `json:"value"`
	Unit              string          `json:"unit,omitempty"`
	Aggregation       string          `json:"aggregation"`
	Baseline          *float64        `json:"baseline"`
	Delta             *float64        `json:"delta"`
	Target            *float64        `json:"target,omitempty"`
	TargetProgressPct *float64        `json:"target_progress_pct,omitempty"`
	Priority          *int            `json:"priority,omitempty"`
	Status            Status          `json:"status,omitempty"`
	Trend             Trend           `json:"trend,omitempty"`
	CoverageVector    *CoverageVector `json:"coverage_vector,omitempty"`
}

type EvidenceSource struct {
	RecordType string     `json:"record_type"`
	RowCount   int        `json:"row_count"`
	Earliest   *time.Time `json:"earliest"`
	Latest     *time.Time `json:"latest"`
}

type Evidence struct {
	Sources   []EvidenceSource `json:"sources"`
	TotalRows int              `json:"total_rows"`
}

type SignalCoverage struct {
	SignalName   string  `json:"signal_name"`
	Completeness float64 `json:"completeness"`
}

type Coverage struct {
	Signals        []SignalCoverage `json:"signals"`
	MissingSources []string         `json:"missing_sources"`
	PartialDays    []string         `json:"partial_days"`
}

type Drilldown struct {
	Label  string            `json:"label"`
	Type   string            `json:"type"`
	Params map[string]string `json:"params"`
}

// EvaluationResult is the output of one goal evaluator tier.
type EvaluationResult struct {
	Priority    int     `json:"priority"`
	Status      Status  `json:"status"`
	ProgressPct float64 `json:"progress"`
	Trend       Trend   `json:"trend"`
	Message     string  `json:"message"`
}

// PrioritySummary keeps evaluation results in ascending priority order and
// marshals to a JSON object keyed "P1", "P2", ... in that order.
type PrioritySummary struct {
	results []EvaluationResult
}

func NewPrioritySummary(results ...EvaluationResult) *PrioritySummary {
	s := &PrioritySummary{results: append([]EvaluationResult(nil), results...)}
	sort.SliceStable(s.results, func(i, j int) bool {
		return s.results[i].Priority < s.results[j].Priority
	})
	return s
}

// Results returns the evaluation results in presentation order.
func (s *PrioritySummary) Results() []EvaluationResult {
	if s == nil {
		return nil
	}
	return s.results
}

func (s *PrioritySummary) Get(priority int) (EvaluationResult, bool) {
	for _, r := range s.results {
		if r.Priority == priority {
			return r, true
		}
	}
	return EvaluationResult{}, false
}

func (s *PrioritySummary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range s.results {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:", fmt.Sprintf("P%d", r.Priority))
		entry, err := json.Marshal(struct {
			Status   Status  `json:"status"`
			Progress float64 `json:"progress"`
			Trend    Trend   `json:"trend"`
			Message  string  `json:"message"`
		}{r.Status, r.ProgressPct, r.Trend, r.Message})
		if err != nil {
			return nil, err
		}
		buf.Write(entry)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *PrioritySummary) UnmarshalJSON(data []byte) error {
	var raw map[string]struct {
		Status   Status  `json:"status"`
		Progress float64 `json:"progress"`
		Trend    Trend   `json:"trend"`
		Message  string  `json:"message"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.results = s.results[:0]
	for key, entry := range raw {
		var priority int
		if _, err := fmt.Sscanf(key, "P%d", &priority); err != nil {
			continue
		}
		s.results = append(s.results, EvaluationResult{
			Priority:    priority,
			Status:      entry.Status,
			ProgressPct: entry.Progress,
			Trend:       entry.Trend,
			Message:     entry.Message,
		})
	}
	sort.SliceStable(s.results, func(i, j int) bool {
		return s.results[i].Priority < s.results[j].Priority
	})
	return nil
}

// CardEnvelope is the top-level card response. It is always constructible:
// a period with zero data still yields a well-formed envelope with warnings.
type CardEnvelope struct {
	ID              string           `json:"id"`
	SchemaVersion   string           `json:"schema_version"`
	CardType        string           `json:"card_type"`
	Granularity     Granularity      `json:"granularity"`
	TimeRange       TimeRange        `json:"time_range"`
	GeneratedAt     time.Time        `json:"generated_at"`
	Summary         string           `json:"summary"`
	Signals         []Signal         `json:"signals"`
	Evidence        Evidence         `json:"evidence"`
	Coverage        Coverage         `json:"coverage"`
	Warnings        []string         `json:"warnings"`
	Drilldowns      []Drilldown      `json:"drilldowns"`
	PrioritySummary *PrioritySummary `json:"priority_summary,omitempty"`
}
