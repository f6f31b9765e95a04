package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const contactReply = "Thank you! We'll get back to you within 24 hours."

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Contact handles POST /contact. The submission is only logged; the reply
// is the same whatever the body holds.
func (h *Handler) Contact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug().Err(err).Msg("contact body not fully decoded")
	}

	h.metrics.ContactSubmitted.Inc()
	h.logger.Info().
		Str("submission_id", uuid.New().String()).
		Str("name", req.Name).
		Str("email", req.Email).
		Str("message", req.Message).
		Msg("contact form submission")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": contactReply,
	})
}
