package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/healthkernel/healthkernel-api/schema"
)

func TestFreshnessLabel(t *testing.T) {
	assert.Equal(t, "current", freshnessLabel(30*time.Minute))
	assert.Equal(t, "recent", freshnessLabel(2*time.Hour))
	assert.Equal(t, "stale", freshnessLabel(6*time.Hour))
	assert.Equal(t, "very_stale", freshnessLabel(20*time.Hour))
}

func TestGetLatestData(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, health, _ := newCardServer(ctl)

	now := time.Now().UTC()
	row := &schema.DailyRecord{
		DeviceID:    "device-1",
		Date:        now.Format(schema.DateLayout),
		CollectedAt: now.Add(-30 * time.Minute),
		SourceType:  schema.SourceTypeIntraday,
		RawData:     schema.RawData{"steps_total": 4200.0},
	}
	health.EXPECT().FetchIntradayLatest(now.Format(schema.DateLayout), "device-1").Return(row, nil).Times(1)

	router := deviceRouter(s, func(r *gin.Engine) {
		r.GET("/data/latest", s.getLatestData)
	})

	req := httptest.NewRequest("GET", "/data/latest?tz=UTC", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var jResp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err)
	assert.Equal(t, "current", jResp["freshness"])
	assert.Equal(t, row.Date, jResp["date"])
	assert.NotNil(t, jResp["raw_data"])
}

func TestGetLatestDataMissing(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, health, _ := newCardServer(ctl)

	health.EXPECT().FetchIntradayLatest("2026-02-10", "device-1").Return(nil, nil).Times(1)

	router := deviceRouter(s, func(r *gin.Engine) {
		r.GET("/data/latest", s.getLatestData)
	})

	req := httptest.NewRequest("GET", "/data/latest?date=2026-02-10&tz=UTC", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var jResp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err)
	assert.Equal(t, int64(1107), jResp.Code)
}

func TestGetSignalHistory(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, health, _ := newCardServer(ctl)

	today := time.Now().UTC().Format(schema.DateLayout)
	rows := []schema.DailyRecord{
		{
			Date:       today,
			SourceType: schema.SourceTypeDaily,
			RawData:    schema.RawData{"steps_total": 7200.0},
		},
	}
	health.EXPECT().FetchDailyRows(gomock.Any(), gomock.Any(), "device-1", today).Return(rows, nil).Times(1)

	router := deviceRouter(s, func(r *gin.Engine) {
		r.GET("/data/history", s.getSignalHistory)
	})

	req := httptest.NewRequest("GET", "/data/history?signal=steps_total&days=7&tz=UTC", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var jResp struct {
		Signal string         `json:"signal"`
		Days   int            `json:"days"`
		Points []historyPoint `json:"points"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err)
	assert.Equal(t, "steps_total", jResp.Signal)
	assert.Equal(t, 7, jResp.Days)
	assert.Len(t, jResp.Points, 1)
	assert.Equal(t, today, jResp.Points[0].Date)
	assert.Equal(t, 7200.0, jResp.Points[0].Value)
}

func TestGetSignalHistoryBadParams(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, _, _ := newCardServer(ctl)

	router := deviceRouter(s, func(r *gin.Engine) {
		r.GET("/data/history", s.getSignalHistory)
	})

	for query, code := range map[string]int64{
		"signal=unknown_signal&tz=UTC":        1106,
		"signal=steps_total&days=0&tz=UTC":    1010,
		"signal=steps_total&days=99&tz=UTC":   1010,
		"signal=steps_total&days=abc&tz=UTC":  1010,
	} {
		req := httptest.NewRequest("GET", "/data/history?"+query, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, query)

		var jResp ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &jResp)
		assert.Nil(t, err, query)
		assert.Equal(t, code, jResp.Code, query)
	}
}

func TestInvalidateTrackingStart(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, health, _ := newCardServer(ctl)

	health.EXPECT().InvalidateTrackingStart().Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/tracking-start/invalidate", s.invalidateTrackingStart)

	req := httptest.NewRequest("POST", "/tracking-start/invalidate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
