package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/healthkernel/healthkernel-api/cards"
	"github.com/healthkernel/healthkernel-api/schema"
	"github.com/healthkernel/healthkernel-api/utils"
)

// maxCardRangeDays caps an explicit from/to range.
const maxCardRangeDays = 92

func (s *Server) getCard(c *gin.Context) {
	cardType := c.Param("card_type")
	if _, ok := cards.GranularityForCardType(cardType); !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownCardType)
		return
	}

	deviceID := c.GetString("device_id")
	loc := s.requestLocation(c, deviceID)
	now := time.Now()

	start, end, ok := s.cardRange(c, cardType, now, loc)
	if !ok {
		return
	}

	envelope, err := s.builder.Build(cards.Request{
		CardType: cardType,
		Start:    start,
		End:      end,
		Loc:      loc,
		DeviceID: deviceID,
		Now:      now,
	})
	if err == cards.ErrUnknownCardType {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownCardType)
		return
	} else if err != nil {
		log.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorQueryCard)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// requestLocation resolves the card timezone: explicit query parameter
// first, then the device's registered timezone, then UTC.
func (s *Server) requestLocation(c *gin.Context, deviceID string) *time.Location {
	tz := c.Query("tz")
	if tz == "" && deviceID != "" {
		if device, err := s.core.GetDevice(deviceID); err == nil {
			tz = device.Timezone
		}
	}
	return utils.ResolveLocation(tz)
}

// cardRange parses the from/to query pair, falling back to the card type's
// default trailing period. Boundary errors are rejected here and never
// reach the builder.
func (s *Server) cardRange(c *gin.Context, cardType string, now time.Time, loc *time.Location) (time.Time, time.Time, bool) {
	fromParam := c.Query("from")
	toParam := c.Query("to")

	if fromParam == "" && toParam == "" {
		start, end, _ := cards.DefaultRange(cardType, now, loc)
		return start, end, true
	}
	if fromParam == "" || toParam == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return time.Time{}, time.Time{}, false
	}

	start, err := utils.ParseDay(fromParam, loc)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return time.Time{}, time.Time{}, false
	}
	end, err := utils.ParseDay(toParam, loc)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) || end.Sub(start) > maxCardRangeDays*24*time.Hour {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// buildDefaultCard assembles one card over its default range; preset runs
// share this path.
func (s *Server) buildDefaultCard(cardType, deviceID string, now time.Time, loc *time.Location) (*schema.CardEnvelope, error) {
	start, end, ok := cards.DefaultRange(cardType, now, loc)
	if !ok {
		return nil, cards.ErrUnknownCardType
	}
	return s.builder.Build(cards.Request{
		CardType: cardType,
		Start:    start,
		End:      end,
		Loc:      loc,
		DeviceID: deviceID,
		Now:      now,
	})
}
