package store

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/healthkernel/healthkernel-api/schema"
)

// trackingStartCache is a read-through cache for tracking start dates,
// keyed by device. A device's value only moves when history older than
// the cached date arrives, which is rare; callers invalidate explicitly
// on that cold-cache event. A race between two concurrent first
// computations for the same device is benign: both resolve the same
// value from the same immutable history.
type trackingStartCache struct {
	mu       sync.RWMutex
	source   HealthData
	override string

	entries map[string]trackingStartEntry
}

type trackingStartEntry struct {
	value string
	found bool
}

func newTrackingStartCache(source HealthData, override string) *trackingStartCache {
	return &trackingStartCache{
		source:   source,
		override: override,
		entries:  map[string]trackingStartEntry{},
	}
}

// TrackingStartDate resolves the earlier of the configured override and
// the first manual-signal date, clamped to today. ok is false when
// neither exists.
func (m *mongoDB) TrackingStartDate(deviceID string) (string, bool, error) {
	return m.trackingCache.get(deviceID)
}

// InvalidateTrackingStart drops the cached value; the next read recomputes.
func (m *mongoDB) InvalidateTrackingStart() {
	m.trackingCache.invalidate()
}

func (c *trackingStartCache) get(deviceID string) (string, bool, error) {
	c.mu.RLock()
	entry, cached := c.entries[deviceID]
	c.mu.RUnlock()
	if cached {
		return entry.value, entry.found, nil
	}

	earliest, found, err := c.source.EarliestManualDate(deviceID)
	if err != nil {
		return "", false, err
	}

	value, ok := resolveTrackingStart(c.override, earliest, found, time.Now().UTC())

	c.mu.Lock()
	c.entries[deviceID] = trackingStartEntry{value: value, found: ok}
	c.mu.Unlock()

	if ok {
		log.WithField("prefix", mongoLogPrefix).
			WithField("device_id", deviceID).
			WithField("tracking_start", value).Info("resolved tracking start date")
	}
	return value, ok, nil
}

func (c *trackingStartCache) invalidate() {
	c.mu.Lock()
	c.entries = map[string]trackingStartEntry{}
	c.mu.Unlock()
	log.WithField("prefix", mongoLogPrefix).Info("tracking start cache invalidated")
}

// resolveTrackingStart picks the earlier of the override and the first
// observed manual date, and never returns a date after today.
func resolveTrackingStart(override, earliest string, found bool, now time.Time) (string, bool) {
	today := now.Format(schema.DateLayout)

	candidate := ""
	switch {
	case override != "" && found:
		candidate = override
		if earliest < candidate {
			candidate = earliest
		}
	case override != "":
		candidate = override
	case found:
		candidate = earliest
	default:
		return "", false
	}

	if candidate > today {
		candidate = today
	}
	return candidate, true
}
