package schema

import (
	"time"
)

const (
	HealthDailyCollection    = "health_daily"
	HealthIntradayCollection = "health_intraday"

	// DateLayout is the civil-date format used in record documents.
	DateLayout = "2006-01-02"

	SourceTypeDaily    = "daily"
	SourceTypeIntraday = "intraday"
)

// RawData is the per-day telemetry payload exactly as the device uploaded it.
// Values are decoded JSON: nested maps, arrays, numbers and strings.
type RawData map[string]interface{}

// DailyRecord is one device-day document from health_daily or
// health_intraday. Intraday rows share the shape but hold cumulative
// snapshots; the latest one stands in for an unfinalized day.
type DailyRecord struct {
	DeviceID      string    `json:"device_id" bson:"device_id"`
	Date          string    `json:"date" bson:"date"`
	CollectedAt   time.Time `json:"collected_at" bson:"collected_at"`
	ReceivedAt    time.Time `json:"received_at" bson:"received_at"`
	SourceType    string    `json:"source_type" bson:"source_type"`
	SchemaVersion int       `json:"schema_version" bson:"schema_version"`
	RawData       RawData   `json:"raw_data" bson:"raw_data"`
}

// Day parses the record's civil date. The second return value is false for
// malformed dates, which are treated as data-quality noise and skipped.
func (r DailyRecord) Day() (time.Time, bool) {
	d, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
