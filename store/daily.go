package store

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/healthkernel/healthkernel-api/schema"
)

// FetchDailyRows fetches daily rows for [start, endExclusive) ordered by
// date. Dates are civil YYYY-MM-DD strings, so range filters compare
// lexicographically.
func (m *mongoDB) FetchDailyRows(start, endExclusive, deviceID, useIntradayForToday string) ([]schema.DailyRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HealthDailyCollection)

	filter := bson.M{
		"date":        bson.M{"$gte": start, "$lt": endExclusive},
		"source_type": schema.SourceTypeDaily,
	}
	if deviceID != "" {
		filter["device_id"] = deviceID
	}

	cursor, err := c.Find(ctx, filter, options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		return nil, err
	}

	var rows []schema.DailyRecord
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	if useIntradayForToday != "" && start <= useIntradayForToday && useIntradayForToday < endExclusive {
		intra, err := m.FetchIntradayLatest(useIntradayForToday, deviceID)
		if err != nil {
			return nil, err
		}
		if intra != nil {
			kept := rows[:0]
			for _, r := range rows {
				if r.Date != useIntradayForToday {
					kept = append(kept, r)
				}
			}
			rows = append(kept, *intra)
			sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
		}
	}

	return rows, nil
}

// FetchIntradayLatest fetches the latest cumulative snapshot for a date
// from the intraday collection. Nil when nothing matches - never an error
// for absence.
func (m *mongoDB) FetchIntradayLatest(date, deviceID string) (*schema.DailyRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HealthIntradayCollection)

	filter := bson.M{"date": date}
	if deviceID != "" {
		filter["device_id"] = deviceID
	}

	cursor, err := c.Find(ctx, filter,
		options.Find().SetSort(bson.M{"collected_at": -1}).SetLimit(1))
	if err != nil {
		return nil, err
	}

	var rows []schema.DailyRecord
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// EarliestManualDate finds the first date on which any manual signal was
// logged, using the aggregation pipeline from agg.go.
func (m *mongoDB) EarliestManualDate(deviceID string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.HealthDailyCollection)

	cursor, err := c.Aggregate(ctx, earliestManualPipeline(deviceID))
	if err != nil {
		return "", false, err
	}

	var results []struct {
		Date string `bson:"date"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return "", false, err
	}
	if len(results) == 0 || results[0].Date == "" {
		return "", false, nil
	}
	return results[0].Date, true, nil
}
