// Package cards assembles card envelopes from raw telemetry. Builders fetch
// rows, extract signal series, run the kernel evaluators, and fill the
// envelope; every period yields a well-formed envelope, including one with
// zero data.
package cards

import (
	"errors"
	"time"

	"github.com/healthkernel/healthkernel-api/schema"
	"github.com/healthkernel/healthkernel-api/store"
)

const envelopeSchemaVersion = "1.0.0"

// historyFetchDays bounds the step/tracking history fetch when the
// tracking start is unknown or recent.
const historyFetchDays = 90

var ErrUnknownCardType = errors.New("unknown card type")

// Request identifies one card to build. Start and End are inclusive civil
// days at midnight in Loc.
type Request struct {
	CardType string
	Start    time.Time
	End      time.Time
	Loc      *time.Location
	DeviceID string
	Now      time.Time
}

// Builder builds card envelopes against narrow store interfaces so tests
// can substitute mocks.
type Builder struct {
	health   store.HealthData
	tracking store.TrackingStart
	settings schema.GoalSettings
}

func NewBuilder(health store.HealthData, tracking store.TrackingStart, settings schema.GoalSettings) *Builder {
	return &Builder{
		health:   health,
		tracking: tracking,
		settings: settings,
	}
}

// GranularityForCardType maps a card type to its granularity; ok is false
// for unknown types.
func GranularityForCardType(cardType string) (schema.Granularity, bool) {
	switch cardType {
	case schema.CardTypeDailySummary:
		return schema.GranularityDaily, true
	case schema.CardTypeWeeklyOverview:
		return schema.GranularityWeekly, true
	case schema.CardTypeMonthlyOverview:
		return schema.GranularityMonthly, true
	default:
		return "", false
	}
}

// DefaultRange returns the trailing period ending today for a card type:
// one day, seven days, or thirty days.
func DefaultRange(cardType string, now time.Time, loc *time.Location) (time.Time, time.Time, bool) {
	granularity, ok := GranularityForCardType(cardType)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end := civilDay(now, loc)
	var start time.Time
	switch granularity {
	case schema.GranularityWeekly:
		start = end.AddDate(0, 0, -6)
	case schema.GranularityMonthly:
		start = end.AddDate(0, 0, -29)
	default:
		start = end
	}
	return start, end, true
}

func civilDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

func dayKey(d time.Time) string {
	return d.Format(schema.DateLayout)
}

// dayKeys lists the civil dates of [start, end] inclusive, oldest first.
func dayKeys(start, end time.Time) []string {
	var keys []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		keys = append(keys, dayKey(d))
	}
	return keys
}
