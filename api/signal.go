package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthkernel/healthkernel-api/schema"
)

type signalCatalogEntry struct {
	Name        string                 `json:"name"`
	DisplayName string                 `json:"display_name"`
	Unit        string                 `json:"unit"`
	Aggregation string                 `json:"aggregation"`
	Source      schema.SignalSource    `json:"source"`
	Direction   string                 `json:"direction"`
	Goal        *schema.GoalDefinition `json:"goal,omitempty"`
}

// listSignals serves the static signal catalog together with the goal
// table and the evaluator defaults.
func (s *Server) listSignals(c *gin.Context) {
	entries := make([]signalCatalogEntry, 0, len(schema.ListSignals()))
	for _, name := range schema.ListSignals() {
		cfg, _ := schema.GetSignalConfig(name)
		entry := signalCatalogEntry{
			Name:        name,
			DisplayName: cfg.DisplayName,
			Unit:        cfg.Unit,
			Aggregation: cfg.Agg,
			Source:      cfg.Source,
			Direction:   cfg.Direction,
		}
		if goal, ok := schema.GetGoal(name); ok {
			g := goal
			entry.Goal = &g
		}
		entries = append(entries, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"signals": entries,
		"goals":   schema.ListGoals(),
		"settings": gin.H{
			"tracking_recent_window_days": s.settings.TrackingRecentWindowDays,
			"burn_modifier":               s.settings.BurnModifier,
			"deficit_target_per_day":      s.settings.DeficitTargetPerDay,
			"steps_floor":                 s.settings.StepsFloor,
			"steps_long_term_target":      s.settings.StepsLongTermTarget,
			"steps_ramp_fast":             s.settings.StepsRampFast,
			"steps_ramp_slow":             s.settings.StepsRampSlow,
		},
	})
}
