// Package kernel holds the temporal aggregation and goal evaluation core.
// Everything here is pure computation over immutable inputs: no I/O, no
// shared state, and no failure paths for data-shape reasons. Absence of
// data is expressed with nil pointers and conservative statuses, never with
// errors.
package kernel

import (
	"time"

	"github.com/healthkernel/healthkernel-api/schema"
)

func parseDay(s string) (time.Time, bool) {
	d, err := time.Parse(schema.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func dayKey(d time.Time) string {
	return d.Format(schema.DateLayout)
}

func addDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// daysBetween counts whole civil days from a to b, negative when b
// precedes a. The count runs over calendar dates in each instant's own
// zone, so a DST transition inside the span does not shift it.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}
