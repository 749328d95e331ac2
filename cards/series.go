package cards

import (
	"sort"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/healthkernel/healthkernel-api/extract"
	"github.com/healthkernel/healthkernel-api/kernel"
	"github.com/healthkernel/healthkernel-api/utils"
)

type localizerFunc func(id, fallback string, data map[string]interface{}) string

func localize(loc *i18n.Localizer) localizerFunc {
	return func(id, fallback string, data map[string]interface{}) string {
		return utils.Localize(loc, id, fallback, data)
	}
}

// lastPerDay collapses observations to one value per civil date, keeping
// the last row for each date. The store orders rows ascending, so the last
// row is the freshest snapshot of the day.
func lastPerDay(obs []extract.Observation) map[string]float64 {
	byDate := make(map[string]float64, len(obs))
	for _, o := range obs {
		byDate[o.Date] = o.Value
	}
	return byDate
}

// perDayValues reduces observations to one value per civil date with the
// signal's aggregation kind, returned oldest first.
func perDayValues(obs []extract.Observation, kind string) ([]string, []float64) {
	grouped := make(map[string][]float64)
	for _, o := range obs {
		grouped[o.Date] = append(grouped[o.Date], o.Value)
	}
	dates := make([]string, 0, len(grouped))
	for date := range grouped {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	values := make([]float64, 0, len(dates))
	for _, date := range dates {
		if v := kernel.Aggregate(grouped[date], kind); v != nil {
			values = append(values, *v)
		}
	}
	return dates, values
}
