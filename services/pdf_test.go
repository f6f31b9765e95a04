package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePlanPDF(t *testing.T) {
	planner, _ := setupPlannerTest()
	generatedAt := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	for _, dest := range []string{"ladakh", "goa", "Atlantis"} {
		t.Run(dest, func(t *testing.T) {
			plan, err := planner.Plan(context.Background(), PlanInput{
				Destination: dest,
				Budget:      1000,
				Days:        7,
				Style:       "luxury",
			})
			require.NoError(t, err)

			data, err := GeneratePlanPDF(plan, generatedAt)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
			assert.True(t, bytes.Contains(data, []byte("%%EOF")))
		})
	}
}
