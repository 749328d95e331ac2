package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
)

// invalidateTrackingStart drops the in-process tracking start cache and
// fans the invalidation out to worker processes over the task queue. Hit
// when history older than the cached date is backfilled.
func (s *Server) invalidateTrackingStart(c *gin.Context) {
	s.health.InvalidateTrackingStart()

	if s.backgroundEnqueuer != nil {
		if _, err := s.backgroundEnqueuer.SendTask(&tasks.Signature{
			Name: "tracking_start.refresh",
		}); err != nil {
			log.Error(err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
