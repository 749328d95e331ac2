package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultGoalSettingsValid(t *testing.T) {
	assert.NoError(t, DefaultGoalSettings().Validate())
}

func TestGoalSettingsValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*GoalSettings)
	}{
		{"zero recent window", func(s *GoalSettings) { s.TrackingRecentWindowDays = 0 }},
		{"bad override date", func(s *GoalSettings) { s.TrackingStartOverride = "02/16/2026" }},
		{"zero burn modifier", func(s *GoalSettings) { s.BurnModifier = 0 }},
		{"burn modifier above one", func(s *GoalSettings) { s.BurnModifier = 1.5 }},
		{"negative deficit target", func(s *GoalSettings) { s.DeficitTargetPerDay = -10 }},
		{"min observed above week", func(s *GoalSettings) { s.CaloriesMinObserved = 8 }},
		{"slow ramp above fast", func(s *GoalSettings) { s.StepsRampSlow = 0.2 }},
		{"negative slow ramp", func(s *GoalSettings) { s.StepsRampSlow = -0.01; s.StepsRampFast = 0.01 }},
		{"floor above long term", func(s *GoalSettings) { s.StepsFloor = 9000 }},
		{"zero baseline window", func(s *GoalSettings) { s.StepsBaselineWindow = 0 }},
	}
	for _, c := range cases {
		settings := DefaultGoalSettings()
		c.mutate(&settings)
		assert.Error(t, settings.Validate(), c.name)
	}
}

func TestGoalSettingsValidOverride(t *testing.T) {
	settings := DefaultGoalSettings()
	settings.TrackingStartOverride = "2026-01-15"
	assert.NoError(t, settings.Validate())
}

func TestGoalTable(t *testing.T) {
	goals := ListGoals()
	assert.Len(t, goals, 3)

	// Priorities are unique and ascending in presentation order.
	seen := map[int]bool{}
	last := 0
	for _, g := range goals {
		assert.False(t, seen[g.Priority], "duplicate priority %d", g.Priority)
		seen[g.Priority] = true
		assert.Greater(t, g.Priority, last)
		last = g.Priority
	}

	tracking, ok := GetGoal(SignalTrackingConsistency)
	assert.True(t, ok)
	assert.Equal(t, TargetMinimum, tracking.TargetType)
	assert.Equal(t, 7, tracking.WindowDays)

	_, ok = GetGoal("avg_hr")
	assert.False(t, ok)
}

func TestValidateSignalTable(t *testing.T) {
	assert.NoError(t, ValidateSignalTable())

	for _, name := range ListSignals() {
		cfg, ok := GetSignalConfig(name)
		assert.True(t, ok, name)
		assert.NotEmpty(t, cfg.Path, name)
	}
}
