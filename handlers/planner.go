package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripindia/services"
)

type plannerResponse struct {
	Success bool `json:"success"`
	*services.Plan
}

// Planner handles POST /planner.
func (h *Handler) Planner(c *gin.Context) {
	in, err := bindPlanInput(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	plan, err := h.planner.Plan(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.PureJSON(http.StatusOK, plannerResponse{Success: true, Plan: plan})
}
