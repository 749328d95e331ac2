package store

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/healthkernel/healthkernel-api/schema"
)

// Aggregation-stage builders for the telemetry collections.

func matchManualSignalPresent() bson.M {
	return bson.M{
		"$match": bson.M{
			"source_type": schema.SourceTypeDaily,
			"$or": bson.A{
				bson.M{"raw_data.nutrition_summary.calories_total": bson.M{"$ne": nil}},
				bson.M{"raw_data.body_metrics.weight_kg": bson.M{"$ne": nil}},
			},
		},
	}
}

func matchDevice(deviceID string) bson.M {
	return bson.M{
		"$match": bson.M{"device_id": deviceID},
	}
}

func groupMinDate() bson.M {
	return bson.M{
		"$group": bson.M{
			"_id":  nil,
			"date": bson.M{"$min": "$date"},
		},
	}
}

// earliestManualPipeline resolves the first device-day with a logged
// calorie total or weigh-in.
func earliestManualPipeline(deviceID string) []bson.M {
	pipeline := []bson.M{matchManualSignalPresent()}
	if deviceID != "" {
		pipeline = append(pipeline, matchDevice(deviceID))
	}
	return append(pipeline, groupMinDate())
}
