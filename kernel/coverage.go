package kernel

import (
	"sort"

	"github.com/healthkernel/healthkernel-api/extract"
	"github.com/healthkernel/healthkernel-api/schema"
)

// CoverageRatio is actual/expected clamped to [0,1]. A non-positive
// expectation is treated as zero coverage; degenerate zero-length periods
// are rejected upstream and never reach here in practice.
func CoverageRatio(actual, expected int) float64 {
	if expected <= 0 {
		return 0
	}
	return clamp(float64(actual)/float64(expected), 0, 1)
}

// DetectPartialDays flags days whose record count falls strictly below the
// median count across the period. A median of one or less means days are
// uniform single rows and nothing is flagged. Output is sorted.
func DetectPartialDays(dayCounts map[string]int) []string {
	if len(dayCounts) == 0 {
		return nil
	}
	counts := make([]int, 0, len(dayCounts))
	for _, c := range dayCounts {
		counts = append(counts, c)
	}
	sort.Ints(counts)

	var median float64
	mid := len(counts) / 2
	if len(counts)%2 == 0 {
		median = float64(counts[mid-1]+counts[mid]) / 2
	} else {
		median = float64(counts[mid])
	}
	if median <= 1 {
		return nil
	}

	var partial []string
	for day, c := range dayCounts {
		if float64(c) < median {
			partial = append(partial, day)
		}
	}
	sort.Strings(partial)
	return partial
}

// ComputeCoverage builds per-signal completeness, the missing-source set
// and the partial-day list for one period. periodDays is the number of
// days in the period and is positive by construction.
func ComputeCoverage(signals []string, series map[string][]extract.Observation, rows []schema.DailyRecord, periodDays int) schema.Coverage {
	coverage := schema.Coverage{
		Signals:        make([]schema.SignalCoverage, 0, len(signals)),
		MissingSources: []string{},
		PartialDays:    []string{},
	}

	for _, name := range signals {
		obs := series[name]
		coverage.Signals = append(coverage.Signals, schema.SignalCoverage{
			SignalName:   name,
			Completeness: CoverageRatio(len(obs), periodDays),
		})
		if len(obs) == 0 {
			coverage.MissingSources = append(coverage.MissingSources, name)
		}
	}

	dayCounts := make(map[string]int, len(rows))
	for _, row := range rows {
		dayCounts[row.Date]++
	}
	if partial := DetectPartialDays(dayCounts); partial != nil {
		coverage.PartialDays = partial
	}

	return coverage
}
