package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/healthkernel/healthkernel-api/schema"
)

func (s *Server) listPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"presets": schema.ListPresets(),
	})
}

func (s *Server) getPreset(c *gin.Context) {
	preset, ok := schema.GetPreset(c.Param("preset_id"))
	if !ok {
		abortWithEncoding(c, http.StatusNotFound, errorUnknownPreset)
		return
	}
	c.JSON(http.StatusOK, preset)
}

// runPreset builds every card of a preset over its default trailing range.
func (s *Server) runPreset(c *gin.Context) {
	preset, ok := schema.GetPreset(c.Param("preset_id"))
	if !ok {
		abortWithEncoding(c, http.StatusNotFound, errorUnknownPreset)
		return
	}

	deviceID := c.GetString("device_id")
	loc := s.requestLocation(c, deviceID)
	now := time.Now()

	envelopes := make([]*schema.CardEnvelope, 0, len(preset.CardTypes))
	for _, cardType := range preset.CardTypes {
		envelope, err := s.buildDefaultCard(cardType, deviceID, now, loc)
		if err != nil {
			log.Error(err)
			abortWithEncoding(c, http.StatusInternalServerError, errorQueryCard)
			return
		}
		envelopes = append(envelopes, envelope)
	}

	c.JSON(http.StatusOK, gin.H{
		"preset": preset,
		"cards":  envelopes,
	})
}
