package kernel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/healthkernel/healthkernel-api/schema"
)

func TestAssemblePrioritySummaryOrdersByPriority(t *testing.T) {
	summary := AssemblePrioritySummary(
		schema.EvaluationResult{Priority: 3, Status: schema.StatusGreen},
		schema.EvaluationResult{Priority: 1, Status: schema.StatusYellow},
		schema.EvaluationResult{Priority: 2, Status: schema.StatusRed},
	)

	results := summary.Results()
	assert.Len(t, results, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{results[0].Priority, results[1].Priority, results[2].Priority})
}

func TestAssemblePrioritySummaryDropsPlaceholders(t *testing.T) {
	summary := AssemblePrioritySummary(
		schema.EvaluationResult{}, // zero-value placeholder
		schema.EvaluationResult{Priority: 2, Status: schema.StatusGreen},
	)
	assert.Len(t, summary.Results(), 1)
}

func TestAssemblePrioritySummaryEmptyIsNil(t *testing.T) {
	assert.Nil(t, AssemblePrioritySummary())
	assert.Nil(t, AssemblePrioritySummary(schema.EvaluationResult{}))
}

func TestPrioritySummaryJSONKeyOrder(t *testing.T) {
	summary := AssemblePrioritySummary(
		schema.EvaluationResult{Priority: 2, Status: schema.StatusYellow, ProgressPct: 42.5, Trend: schema.TrendUp, Message: "m2"},
		schema.EvaluationResult{Priority: 1, Status: schema.StatusGreen, ProgressPct: 90, Trend: schema.TrendFlat, Message: "m1"},
	)

	raw, err := json.Marshal(summary)
	assert.NoError(t, err)
	assert.True(t, len(raw) > 0)
	// "P1" must precede "P2" in the serialized object.
	s := string(raw)
	assert.Contains(t, s, `"P1"`)
	assert.Contains(t, s, `"P2"`)
	assert.Less(t, indexOf(s, `"P1"`), indexOf(s, `"P2"`))

	var decoded schema.PrioritySummary
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	p1, ok := decoded.Get(1)
	assert.True(t, ok)
	assert.Equal(t, schema.StatusGreen, p1.Status)
	assert.InDelta(t, 90, p1.ProgressPct, 1e-9)
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
