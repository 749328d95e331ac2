package schema

const (
	CardTypeDailySummary    = "daily_summary"
	CardTypeWeeklyOverview  = "weekly_overview"
	CardTypeMonthlyOverview = "monthly_overview"
)

// Preset is a named bundle of card types. Static configuration only.
type Preset struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	CardTypes   []string `json:"card_types"`
}

var presets = map[string]Preset{
	"daily_brief": {
		ID:          "daily_brief",
		Label:       "Daily Brief",
		Description: "Single-day summary card.",
		CardTypes:   []string{CardTypeDailySummary},
	},
	"weekly_health": {
		ID:          "weekly_health",
		Label:       "Weekly Health",
		Description: "7-day overview card.",
		CardTypes:   []string{CardTypeWeeklyOverview},
	},
	"monthly_overview": {
		ID:          "monthly_overview",
		Label:       "Monthly Overview",
		Description: "Full-month overview card.",
		CardTypes:   []string{CardTypeMonthlyOverview},
	},
}

var presetOrder = []string{"daily_brief", "weekly_health", "monthly_overview"}

func GetPreset(id string) (Preset, bool) {
	p, ok := presets[id]
	return p, ok
}

func ListPresets() []Preset {
	out := make([]Preset, 0, len(presetOrder))
	for _, id := range presetOrder {
		out = append(out, presets[id])
	}
	return out
}
