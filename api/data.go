package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/healthkernel/healthkernel-api/extract"
	"github.com/healthkernel/healthkernel-api/schema"
	"github.com/healthkernel/healthkernel-api/utils"
)

// Freshness bands on the age of the newest intraday snapshot.
const (
	freshnessCurrentWithin = time.Hour
	freshnessRecentWithin  = 4 * time.Hour
	freshnessStaleWithin   = 12 * time.Hour
)

func freshnessLabel(age time.Duration) string {
	switch {
	case age <= freshnessCurrentWithin:
		return "current"
	case age <= freshnessRecentWithin:
		return "recent"
	case age <= freshnessStaleWithin:
		return "stale"
	default:
		return "very_stale"
	}
}

// getLatestData serves the newest intraday snapshot for a date together
// with freshness and day-progress heuristics.
func (s *Server) getLatestData(c *gin.Context) {
	deviceID := c.GetString("device_id")
	loc := s.requestLocation(c, deviceID)
	now := time.Now()

	date := c.Query("date")
	if date == "" {
		date = utils.DayKey(now, loc)
	} else if _, err := utils.ParseDay(date, loc); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	row, err := s.health.FetchIntradayLatest(date, deviceID)
	if shouldInterupt(err, c) {
		return
	}
	if row == nil {
		abortWithEncoding(c, http.StatusNotFound, errorNoData)
		return
	}

	// day progress is how far into the civil day the snapshot was taken,
	// so a 9 AM step count is judged as a morning number.
	collected := row.CollectedAt.In(loc)
	dayStart := utils.CivilDay(collected, loc)
	dayProgress := collected.Sub(dayStart).Hours() / 24

	c.JSON(http.StatusOK, gin.H{
		"date":         row.Date,
		"collected_at": row.CollectedAt,
		"freshness":    freshnessLabel(now.Sub(row.CollectedAt)),
		"day_progress": dayProgress,
		"raw_data":     row.RawData,
	})
}

type historyPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// getSignalHistory serves one signal's per-day values over a trailing
// window, the latest row standing for each date.
func (s *Server) getSignalHistory(c *gin.Context) {
	signalName := c.Query("signal")
	if _, ok := schema.GetSignalConfig(signalName); !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownSignal)
		return
	}

	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 30 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		days = parsed
	}

	deviceID := c.GetString("device_id")
	loc := s.requestLocation(c, deviceID)
	now := time.Now()
	today := utils.CivilDay(now, loc)
	start := today.AddDate(0, 0, -(days - 1))

	rows, err := s.health.FetchDailyRows(
		utils.DayKey(start, loc),
		utils.DayKey(today.AddDate(0, 0, 1), loc),
		deviceID,
		utils.DayKey(today, loc),
	)
	if shouldInterupt(err, c) {
		return
	}

	// last row per date wins
	byDate := map[string]float64{}
	for _, row := range rows {
		if v, ok := extract.SignalByName(row, signalName); ok {
			byDate[row.Date] = v
		}
	}

	points := make([]historyPoint, 0, len(byDate))
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := utils.DayKey(d, loc)
		if v, ok := byDate[key]; ok {
			points = append(points, historyPoint{Date: key, Value: v})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"signal": signalName,
		"days":   days,
		"points": points,
	})
}
