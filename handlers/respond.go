package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"tripindia/errx"
	"tripindia/middleware"
)

// respondError writes {"error": message} with the status carried by err.
// Server errors are logged; the client only sees the safe message.
func respondError(c *gin.Context, logger zerolog.Logger, err error) {
	status := errx.StatusOf(err)
	if status >= 500 {
		logger.Error().Err(err).Str("req_id", middleware.GetRequestID(c)).Msg("request failed")
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": errx.MessageOf(err)})
}
