package kernel

import (
	"github.com/healthkernel/healthkernel-api/schema"
)

// AssemblePrioritySummary merges evaluator outputs into the ordered summary.
// Zero-priority placeholders are dropped; ordering is ascending priority.
// Pure aggregation, no computation of its own.
func AssemblePrioritySummary(results ...schema.EvaluationResult) *schema.PrioritySummary {
	kept := make([]schema.EvaluationResult, 0, len(results))
	for _, r := range results {
		if r.Priority <= 0 {
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) == 0 {
		return nil
	}
	return schema.NewPrioritySummary(kept...)
}
