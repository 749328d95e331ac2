package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/healthkernel/healthkernel-api/schema"
)

var locations map[string]*time.Location = map[string]*time.Location{}

func init() {
	for i := time.Duration(-12); i < 15; i++ {
		name := fmt.Sprintf("GMT%+d", i)
		locations[name] = time.FixedZone(name, int((i * time.Hour).Seconds()))
	}
}

// GetLocation returns a location for a GMT-X format timezone from a
// pre-defined locations map.
func GetLocation(timezone string) *time.Location {
	if tz, ok := locations[strings.ToUpper(timezone)]; ok {
		return tz
	}
	return nil
}

// ResolveLocation accepts both IANA names ("Asia/Taipei") and the legacy
// GMT-X device format. An empty or unknown timezone falls back to UTC so a
// card is always buildable.
func ResolveLocation(timezone string) *time.Location {
	if timezone == "" {
		return time.UTC
	}
	if tz := GetLocation(timezone); tz != nil {
		return tz
	}
	if tz, err := time.LoadLocation(timezone); err == nil {
		return tz
	}
	return time.UTC
}

// CivilDay truncates an instant to midnight of its civil day in loc.
func CivilDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DayKey formats an instant as its civil date in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(schema.DateLayout)
}

// ParseDay parses a YYYY-MM-DD civil date at midnight in loc.
func ParseDay(day string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(schema.DateLayout, day, loc)
}

// DayBounds returns the half-open UTC interval covering one civil day.
func DayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}
