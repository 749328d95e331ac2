package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/healthkernel/healthkernel-api/extract"
	"github.com/healthkernel/healthkernel-api/schema"
)

func TestCoverageRatio(t *testing.T) {
	cases := []struct {
		actual   int
		expected int
		ratio    float64
	}{
		{0, 7, 0},
		{7, 7, 1},
		{3, 7, 3.0 / 7.0},
		{9, 7, 1}, // clamped
		{5, 0, 0},
	}
	for _, c := range cases {
		assert.InDelta(t, c.ratio, CoverageRatio(c.actual, c.expected), 1e-9)
	}
}

func TestDetectPartialDaysEmpty(t *testing.T) {
	assert.Nil(t, DetectPartialDays(nil))
	assert.Nil(t, DetectPartialDays(map[string]int{}))
}

func TestDetectPartialDaysUniformCountsNotFlagged(t *testing.T) {
	counts := map[string]int{
		"2026-02-10": 3,
		"2026-02-11": 3,
		"2026-02-12": 3,
	}
	assert.Nil(t, DetectPartialDays(counts))
}

func TestDetectPartialDaysSingleRowDaysNotFlagged(t *testing.T) {
	counts := map[string]int{
		"2026-02-10": 1,
		"2026-02-11": 1,
		"2026-02-12": 1,
	}
	assert.Nil(t, DetectPartialDays(counts))
}

func TestDetectPartialDaysBelowMedian(t *testing.T) {
	counts := map[string]int{
		"2026-02-10": 5,
		"2026-02-11": 5,
		"2026-02-12": 2,
		"2026-02-13": 5,
		"2026-02-14": 1,
	}
	assert.Equal(t, []string{"2026-02-12", "2026-02-14"}, DetectPartialDays(counts))
}

func TestComputeCoverage(t *testing.T) {
	rows := []schema.DailyRecord{
		{Date: "2026-02-10", RawData: schema.RawData{"steps_total": 5000.0}},
		{Date: "2026-02-11", RawData: schema.RawData{"steps_total": 6000.0}},
	}
	series := extract.Series(rows)

	cov := ComputeCoverage([]string{schema.SignalSteps, schema.SignalWeight}, series, rows, 7)

	assert.Len(t, cov.Signals, 2)
	assert.Equal(t, schema.SignalSteps, cov.Signals[0].SignalName)
	assert.InDelta(t, 2.0/7.0, cov.Signals[0].Completeness, 1e-9)
	assert.InDelta(t, 0, cov.Signals[1].Completeness, 1e-9)
	assert.Equal(t, []string{schema.SignalWeight}, cov.MissingSources)
	assert.Empty(t, cov.PartialDays)
}
