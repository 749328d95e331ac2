package background

import (
	log "github.com/sirupsen/logrus"
)

// TrackingStartTaskName is the queue name of the cache refresh task.
const TrackingStartTaskName = "tracking_start.refresh"

// RefreshTrackingStart drops the cached tracking start date and resolves it
// again from history. Enqueued when backfilled rows may predate the cached
// value.
func (m *BackgroundManager) RefreshTrackingStart() error {
	m.health.InvalidateTrackingStart()

	value, found, err := m.health.TrackingStartDate("")
	if err != nil {
		return err
	}

	entry := log.WithField("prefix", "background")
	if found {
		entry.WithField("tracking_start", value).Info("tracking start refreshed")
	} else {
		entry.Info("tracking start refreshed: no manual history yet")
	}
	return nil
}
