package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/healthkernel/healthkernel-api/schema"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// HealthStore - interface for telemetry db operations
type HealthStore interface {
	HealthData
	TrackingStart
	Closer
	Pinger
}

// HealthData - read access to raw per-day telemetry
type HealthData interface {
	// FetchDailyRows returns daily rows in [start, endExclusive) ordered
	// by date, optionally filtered by device. When useIntradayForToday is
	// a date inside the range, the latest intraday snapshot replaces (or
	// supplies) that day's row so today stays fresh before the daily blob
	// is finalized. An empty result is a valid result, never an error.
	FetchDailyRows(start, endExclusive, deviceID, useIntradayForToday string) ([]schema.DailyRecord, error)

	// FetchIntradayLatest returns the most recent intraday snapshot for a
	// date, or nil when none exists.
	FetchIntradayLatest(date, deviceID string) (*schema.DailyRecord, error)

	// EarliestManualDate returns the first date carrying any manual
	// signal, or ok=false when history has none.
	EarliestManualDate(deviceID string) (string, bool, error)
}

// TrackingStart - cached resolution of the coverage-window lower bound
type TrackingStart interface {
	TrackingStartDate(deviceID string) (string, bool, error)
	InvalidateTrackingStart()
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client        *mongo.Client
	database      string
	trackingCache *trackingStartCache
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewHealthStore - return telemetry db operations
func NewHealthStore(client *mongo.Client, database string, trackingStartOverride string) HealthStore {
	m := &mongoDB{
		client:   client,
		database: database,
	}
	m.trackingCache = newTrackingStartCache(m, trackingStartOverride)
	return m
}
